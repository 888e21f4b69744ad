package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sebastiantruijens/moviedeck/internal/model"
	"github.com/sebastiantruijens/moviedeck/internal/store"
)

// View renders the current UI
func (m Model) View() string {
	snap := m.store.Snapshot()
	var sb strings.Builder

	sb.WriteString(m.renderHeader(snap))
	sb.WriteString("\n\n")

	if snap.ModalOpen && snap.SelectedMovie != nil {
		sb.WriteString(m.styles.modal.Render(m.viewport.View()))
		sb.WriteString("\n")
		sb.WriteString(m.renderAlert(snap))
		sb.WriteString(m.styles.mutedText.Render("↑/↓: Scroll • f: Add favorite • o: Open poster • Esc: Back • q: Quit"))
		return m.frame(sb.String())
	}

	sb.WriteString(m.styles.input.Render(m.textInput.View()))
	sb.WriteString("  ")
	sb.WriteString(m.styles.mutedText.Render(fmt.Sprintf("[%s view]", snap.ViewMode)))
	sb.WriteString("\n")

	sb.WriteString(m.renderAlert(snap))
	if m.status != "" {
		sb.WriteString(m.styles.errorText.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	visible := m.store.Visible()
	switch {
	case snap.Loading && len(snap.Movies) == 0:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(m.styles.normalText.Render("Loading movies..."))

	case len(visible) == 0:
		sb.WriteString(m.styles.mutedText.Render(emptyMessage(snap)))

	case snap.ViewMode == model.ViewList:
		sb.WriteString(m.renderList(visible))

	default:
		sb.WriteString(m.renderCards(visible))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPager(snap))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return m.frame(sb.String())
}

func (m Model) frame(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(m.height).
		Render(content)
}

func (m Model) renderHeader(snap store.Snapshot) string {
	title := m.styles.title.Render("🎬 MovieDeck")

	movies := fmt.Sprintf("Movies (%d)", len(snap.Movies))
	favorites := fmt.Sprintf("Favorites (%d)", len(snap.Favorites))

	movieTab, favoriteTab := m.styles.activeTab.Render(movies), m.styles.tab.Render(favorites)
	if snap.CurrentPage == model.PageFavorite {
		movieTab, favoriteTab = m.styles.tab.Render(movies), m.styles.activeTab.Render(favorites)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", movieTab, favoriteTab)
}

func (m Model) renderAlert(snap store.Snapshot) string {
	if snap.Alert == nil {
		return ""
	}
	style, ok := m.styles.alerts[snap.Alert.Severity]
	if !ok {
		style = m.styles.alerts[model.SeverityInfo]
	}
	return style.Render(snap.Alert.Message) + "  " + m.styles.mutedText.Render("(a to dismiss)") + "\n"
}

func (m Model) renderList(movies []model.Movie) string {
	var listContent strings.Builder
	for i, movie := range movies {
		item := fmt.Sprintf("%s (%s)", movie.Title, releaseYear(movie.ReleaseDate))
		if m.store.IsFavorite(movie.ID) {
			item += " " + m.styles.favorite.Render("★")
		}
		if i == m.cursor {
			listContent.WriteString(m.styles.highlighted.Render("> ") + m.styles.highlighted.Render(item))
		} else {
			listContent.WriteString(m.styles.normalText.Render("  " + item))
		}
		if i < len(movies)-1 {
			listContent.WriteString("\n")
		}
	}
	return listContent.String()
}

func (m Model) renderCards(movies []model.Movie) string {
	columns := max(1, m.width/(cardWidth+4))

	var rows []string
	for start := 0; start < len(movies); start += columns {
		end := min(start+columns, len(movies))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(movies[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(movie model.Movie, selected bool) string {
	style := m.styles.card
	titleStyle := m.styles.subtitle
	if selected {
		style = m.styles.selectedCard
		titleStyle = m.styles.highlighted
	}

	title := truncate(movie.Title, cardWidth-2)
	meta := releaseYear(movie.ReleaseDate)
	if m.store.IsFavorite(movie.ID) {
		meta += " " + m.styles.favorite.Render("★")
	}

	return style.Render(titleStyle.Render(title) + "\n" + m.styles.mutedText.Render(meta))
}

func (m Model) renderPager(snap store.Snapshot) string {
	pages := m.store.PageCount()
	count := m.store.VisibleCount()

	pager := m.pager
	pager.TotalPages = pages
	pager.Page = snap.PaginationPage - 1

	info := fmt.Sprintf("Page %d/%d • %d movies • %d per page", snap.PaginationPage, pages, count, snap.PerPage)
	return pager.View() + "  " + m.styles.mutedText.Render(info)
}

// formatMovieDetails renders the detail modal content
func (m Model) formatMovieDetails(movie model.Movie) string {
	var sb strings.Builder

	sb.WriteString(m.styles.title.Render(movie.Title))
	if m.store.IsFavorite(movie.ID) {
		sb.WriteString(" " + m.styles.favorite.Render("★"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.subtitle.Render("Release Date:"))
	sb.WriteString(" ")
	sb.WriteString(m.styles.normalText.Render(orNA(movie.ReleaseDate)))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.subtitle.Render("Description:"))
	sb.WriteString("\n")

	maxWidth := m.viewport.Width - 4
	if maxWidth < 20 {
		maxWidth = 60
	}
	sb.WriteString(m.styles.normalText.Render(wrapText(orNA(movie.Description), maxWidth)))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.subtitle.Render("Poster:"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.normalText.Render(orNA(m.posterURL(movie.Image))))

	return sb.String()
}

func emptyMessage(snap store.Snapshot) string {
	switch {
	case snap.SearchKeyword != "":
		return fmt.Sprintf("No movies match %q", snap.SearchKeyword)
	case snap.CurrentPage == model.PageFavorite:
		return "No favorites yet. Press f on a movie to add it."
	default:
		return "No movies found."
	}
}

// releaseYear shortens a YYYY-MM-DD date to its year
func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return orNA(date)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// cells measures text in terminal columns; wide runes such as CJK take two
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

func truncate(s string, width int) string {
	if width < 2 {
		return s
	}
	return cells.Truncate(s, width, "…")
}

// wrapText wraps text to fit within a given number of terminal columns
func wrapText(text string, width int) string {
	if width < 2 {
		return text
	}

	var result strings.Builder
	var lineLength int

	for _, word := range strings.Fields(text) {
		// Break words longer than a whole line
		for cells.StringWidth(word) > width {
			if lineLength > 0 {
				result.WriteString("\n")
			}
			head := cells.Truncate(word, width-1, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			result.WriteString(head + "-\n")
			word = word[len(head):]
			lineLength = 0
		}

		wordWidth := cells.StringWidth(word)
		switch {
		case lineLength == 0:
		case lineLength+1+wordWidth > width:
			result.WriteString("\n")
			lineLength = 0
		default:
			result.WriteString(" ")
			lineLength++
		}

		result.WriteString(word)
		lineLength += wordWidth
	}

	return result.String()
}
