package store

import (
	"strings"

	"github.com/sebastiantruijens/moviedeck/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Breakpoint is a terminal size class
type Breakpoint int

const (
	BreakpointSmall Breakpoint = iota
	BreakpointMedium
	BreakpointLarge
	BreakpointExtraLarge
	BreakpointDefault
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointSmall:
		return "small"
	case BreakpointMedium:
		return "medium"
	case BreakpointLarge:
		return "large"
	case BreakpointExtraLarge:
		return "extra-large"
	default:
		return "default"
	}
}

// BreakpointForWidth maps a terminal width in columns to its size class
func BreakpointForWidth(width int) Breakpoint {
	switch {
	case width < 60:
		return BreakpointSmall
	case width < 90:
		return BreakpointMedium
	case width < 120:
		return BreakpointLarge
	case width < 160:
		return BreakpointExtraLarge
	default:
		return BreakpointDefault
	}
}

// PerPageForBreakpoint returns how many movies fit on one page for a size class
func PerPageForBreakpoint(bp Breakpoint) int {
	switch bp {
	case BreakpointSmall:
		return 4
	case BreakpointMedium:
		return 8
	case BreakpointLarge:
		return 12
	case BreakpointExtraLarge:
		return 16
	default:
		return 21
	}
}

// Filter keeps the movies whose title contains keyword, ignoring case.
// An empty keyword returns movies itself.
func Filter(movies []model.Movie, keyword string) []model.Movie {
	if keyword == "" {
		return movies
	}

	// Casers keep state, so each call gets its own
	folder := cases.Fold()
	needle := folder.String(norm.NFC.String(keyword))

	result := make([]model.Movie, 0, len(movies))
	for _, movie := range movies {
		title := folder.String(norm.NFC.String(movie.Title))
		if strings.Contains(title, needle) {
			result = append(result, movie)
		}
	}
	return result
}

// Paginate returns the 1-based page of movies holding perPage entries.
// Pages outside the list come back empty.
func Paginate(movies []model.Movie, page, perPage int) []model.Movie {
	if page < 1 || perPage < 1 {
		return []model.Movie{}
	}

	start := (page - 1) * perPage
	if start >= len(movies) {
		return []model.Movie{}
	}

	end := start + perPage
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// PageCount is the number of pages n entries span, never less than one
func PageCount(n, perPage int) int {
	if perPage < 1 || n <= 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}
