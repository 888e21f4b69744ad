package tui

import "github.com/google/uuid"

// moviesLoadedMsg reports the end of a catalog fetch; the movies
// themselves are already in the store
type moviesLoadedMsg struct {
	err error
}

type alertExpiredMsg struct {
	id uuid.UUID
}

// searchSettledMsg fires once typing pauses; seq ties it to the keystroke that scheduled it
type searchSettledMsg struct {
	seq int
}

type openBrowserMsg struct {
	err error
}
