package model

// Movie represents a single catalog entry as served by the movies API
type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ReleaseDate string `json:"release_date"`
	Description string `json:"description"`
}

// ViewMode selects how a movie list is rendered
type ViewMode string

const (
	ViewCard ViewMode = "card"
	ViewList ViewMode = "list"
)

// Valid reports whether m is a known view mode
func (m ViewMode) Valid() bool {
	return m == ViewCard || m == ViewList
}

// Page selects which collection is on screen: the catalog or the favorites.
// Not to be confused with the pagination page number.
type Page string

const (
	PageMenu     Page = "menu"
	PageFavorite Page = "favorite"
)

func (p Page) Valid() bool {
	return p == PageMenu || p == PageFavorite
}
