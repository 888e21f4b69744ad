package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/sebastiantruijens/moviedeck/internal/model"
	"github.com/sebastiantruijens/moviedeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "a short line", width: 20, want: "a short line"},
		{name: "wraps on words", text: "the quick brown fox", width: 10, want: "the quick\nbrown fox"},
		{name: "collapses spaces", text: "  spaced    out  ", width: 20, want: "spaced out"},
		{name: "breaks long words", text: "abcdefghij", width: 4, want: "abc-\ndef-\nghij"},
		{name: "tiny width", text: "left alone", width: 1, want: "left alone"},
		{name: "empty", text: "", width: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}

func TestWrapTextLineWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range strings.Split(wrapText(text, 30), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 30)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Dune", truncate("Dune", 10))
	assert.Equal(t, "The Lord…", truncate("The Lord of the Rings", 9))
	assert.Equal(t, "Amél…", truncate("Amélie Poulain", 5))
}

func TestTruncateCountsCells(t *testing.T) {
	title := "千と千尋の神隠し"

	got := truncate(title, 9)
	assert.Equal(t, "千と千尋…", got)
	assert.LessOrEqual(t, cells.StringWidth(got), 9)

	assert.Equal(t, title, truncate(title, 16))
	assert.LessOrEqual(t, cells.StringWidth(truncate(title, cardWidth-2)), cardWidth-2)
}

func TestWrapTextWideRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
	}{
		{name: "single long word", text: "千と千尋の神隠し", width: 6},
		{name: "mixed words", text: "Spirited Away 千と千尋の神隠し is a 2001 film", width: 10},
		{name: "width smaller than a rune", text: "神隠し", width: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapText(tt.text, tt.width)
			for _, line := range strings.Split(wrapped, "\n") {
				// a lone wide rune plus the hyphen may exceed a two column line
				if tt.width > 2 {
					assert.LessOrEqual(t, cells.StringWidth(line), tt.width, "line %q", line)
				}
			}
			assert.Equal(t, strings.Join(strings.Fields(tt.text), ""), strings.NewReplacer("-\n", "", "\n", "", " ", "").Replace(wrapped))
		})
	}
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, "2021", releaseYear("2021-09-15"))
	assert.Equal(t, "N/A", releaseYear(""))
	assert.Equal(t, "N/A", releaseYear("  "))
}

func TestViewListShowsFavoriteMarker(t *testing.T) {
	m, _ := newTestModel(t, []model.Movie{
		{ID: 1, Title: "Dune", ReleaseDate: "2021-09-15"},
		{ID: 2, Title: "Arrival", ReleaseDate: "2016-11-11"},
	})

	m, _ = press(m, "v")
	m, _ = press(m, "f")

	view := m.View()
	assert.Contains(t, view, "Dune (2021) ★")
	assert.Contains(t, view, "Arrival (2016)")
	assert.Contains(t, view, "Favorites (1)")
	assert.Contains(t, view, "Added to favorites!")
}

func TestViewShowsSpinnerWhileLoading(t *testing.T) {
	m := New(context.Background(), Options{Store: store.New(&stubFetcher{}, discardLogger()), Logger: discardLogger()})
	assert.Contains(t, m.View(), "Loading movies...")
}
