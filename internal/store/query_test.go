package store

import (
	"testing"

	"github.com/sebastiantruijens/moviedeck/internal/model"
	"github.com/stretchr/testify/assert"
)

func duneMovies() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Dune Part Two"},
		{ID: 3, Title: "Arrival"},
	}
}

func ids(movies []model.Movie) []int {
	out := make([]int, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func numberedMovies(n int) []model.Movie {
	movies := make([]model.Movie, n)
	for i := range movies {
		movies[i] = model.Movie{ID: i + 1, Title: "Movie"}
	}
	return movies
}

func TestFilterEmptyKeywordReturnsInput(t *testing.T) {
	movies := duneMovies()
	got := Filter(movies, "")

	assert.Equal(t, movies, got)
	// Same backing array, not a copy
	assert.Same(t, &movies[0], &got[0])
}

func TestFilterCaseInsensitive(t *testing.T) {
	movies := duneMovies()

	for _, keyword := range []string{"dune", "DUNE", "uNe", "part t"} {
		got := Filter(movies, keyword)
		for _, m := range got {
			assert.Contains(t, []int{1, 2}, m.ID, "keyword %q", keyword)
		}
	}

	assert.Equal(t, []int{1, 2}, ids(Filter(movies, "dune")))
	assert.Equal(t, []int{3}, ids(Filter(movies, "ARRIVAL")))
	assert.Empty(t, Filter(movies, "matrix"))
}

func TestFilterUnicodeFolding(t *testing.T) {
	movies := []model.Movie{
		{ID: 1, Title: "Amélie"},
		{ID: 2, Title: "Straße"},
	}

	assert.Equal(t, []int{1}, ids(Filter(movies, "AMÉLIE")))
	assert.Equal(t, []int{2}, ids(Filter(movies, "STRASSE")))
}

func TestPaginateScenario(t *testing.T) {
	result := Filter(duneMovies(), "dune")

	assert.Equal(t, []int{1}, ids(Paginate(result, 1, 1)))
	assert.Equal(t, []int{2}, ids(Paginate(result, 2, 1)))
	assert.Empty(t, Paginate(result, 3, 1))
}

func TestPaginateReconstructsInput(t *testing.T) {
	for _, total := range []int{0, 1, 7, 21, 22} {
		movies := numberedMovies(total)
		for perPage := 1; perPage <= 8; perPage++ {
			var rebuilt []model.Movie
			pages := PageCount(total, perPage)
			for page := 1; page <= pages; page++ {
				chunk := Paginate(movies, page, perPage)
				assert.LessOrEqual(t, len(chunk), perPage)
				rebuilt = append(rebuilt, chunk...)
			}
			assert.Equal(t, ids(movies), ids(rebuilt), "total=%d perPage=%d", total, perPage)
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	movies := numberedMovies(5)

	assert.NotPanics(t, func() {
		assert.Empty(t, Paginate(movies, 10, 4))
		assert.Empty(t, Paginate(movies, 0, 4))
		assert.Empty(t, Paginate(movies, -1, 4))
		assert.Empty(t, Paginate(movies, 1, 0))
		assert.Empty(t, Paginate(nil, 1, 4))
	})
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 4))
	assert.Equal(t, 1, PageCount(4, 4))
	assert.Equal(t, 2, PageCount(5, 4))
	assert.Equal(t, 1, PageCount(5, 0))
}

func TestPerPageForBreakpoint(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		want int
	}{
		{BreakpointSmall, 4},
		{BreakpointMedium, 8},
		{BreakpointLarge, 12},
		{BreakpointExtraLarge, 16},
		{BreakpointDefault, 21},
	}
	for _, tt := range tests {
		t.Run(tt.bp.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PerPageForBreakpoint(tt.bp))
		})
	}
}

func TestBreakpointForWidth(t *testing.T) {
	assert.Equal(t, BreakpointSmall, BreakpointForWidth(40))
	assert.Equal(t, BreakpointMedium, BreakpointForWidth(60))
	assert.Equal(t, BreakpointLarge, BreakpointForWidth(100))
	assert.Equal(t, BreakpointExtraLarge, BreakpointForWidth(159))
	assert.Equal(t, BreakpointDefault, BreakpointForWidth(200))
}
