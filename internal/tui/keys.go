package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search     key.Binding
	Back       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Favorite   key.Binding
	Unfavorite key.Binding
	SwitchList key.Binding
	ViewMode   key.Binding
	Theme      key.Binding
	Dismiss    key.Binding
	Browser    key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		FirstPage:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "add favorite")),
		Unfavorite: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove favorite")),
		SwitchList: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "movies/favorites")),
		ViewMode:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "card/list")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Dismiss:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "dismiss alert")),
		Browser:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open poster")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Favorite, k.SwitchList, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage},
		{k.Search, k.Back, k.Open, k.Browser},
		{k.Favorite, k.Unfavorite, k.SwitchList, k.Dismiss},
		{k.ViewMode, k.Theme, k.Reload, k.Help, k.Quit},
	}
}
