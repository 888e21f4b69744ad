package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/sebastiantruijens/moviedeck/internal/model"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrInvalidViewMode = errors.New("invalid view mode")
	ErrInvalidPage     = errors.New("invalid page")
	ErrInvalidPerPage  = errors.New("per page must be positive")
	ErrLoadSuperseded  = errors.New("load superseded by a newer one")
)

const (
	msgFavoriteAdded     = "Added to favorites!"
	msgFavoriteDuplicate = "This movie is already in your favorites!"
	msgFavoriteRemoved   = "Removed from favorites!"
)

// Fetcher loads the full movie catalog
type Fetcher interface {
	FetchMovies(ctx context.Context) ([]model.Movie, error)
}

// Snapshot is a read-only copy of the application state
type Snapshot struct {
	Movies         []model.Movie
	Favorites      []model.Movie
	ViewMode       model.ViewMode
	CurrentPage    model.Page
	SearchKeyword  string
	PaginationPage int
	PerPage        int
	SelectedMovie  *model.Movie
	ModalOpen      bool
	Alert          *model.Alert
	// Loading is set while a fetch runs and until the first one finishes
	Loading        bool
	LastError      error
}

// Store is the single owner of the mutable application state. Every
// operation takes the lock for its whole duration, so a transition is
// either fully applied or not at all.
type Store struct {
	mu      sync.Mutex
	fetcher Fetcher
	logger  *slog.Logger

	movies    []model.Movie
	favorites []model.Movie

	viewMode    model.ViewMode
	currentPage model.Page
	keyword     string
	page        int
	perPage     int

	selected  *model.Movie
	modalOpen bool
	alert     *model.Alert

	inflight int
	loadGen  uint64
	fetched  bool
	lastErr  error
}

// New creates a store with an empty catalog showing the first page of the menu in card mode
func New(fetcher Fetcher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fetcher:     fetcher,
		logger:      logger.With("component", "store"),
		movies:      []model.Movie{},
		favorites:   []model.Movie{},
		viewMode:    model.ViewCard,
		currentPage: model.PageMenu,
		page:        1,
		perPage:     PerPageForBreakpoint(BreakpointDefault),
	}
}

// LoadMovies fetches the catalog and replaces the movie list on success.
// On failure, or when ctx ends before the fetch returns, the current list
// is kept and the error is returned. Only the most recently started load
// may apply; an older one finishing later returns ErrLoadSuperseded.
func (s *Store) LoadMovies(ctx context.Context) error {
	s.mu.Lock()
	s.inflight++
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	movies, err := s.fetcher.FetchMovies(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if gen != s.loadGen {
		s.logger.Debug("dropping superseded load", "generation", gen, "latest", s.loadGen)
		return ErrLoadSuperseded
	}
	s.fetched = true

	if err != nil {
		s.lastErr = err
		s.logger.Error("failed to load movies", "error", err)
		return err
	}

	if movies == nil {
		movies = []model.Movie{}
	}
	s.movies = movies
	s.lastErr = nil
	s.clampLocked()
	s.logger.Info("movies loaded", "count", len(movies))
	return nil
}

// AddToFavorite appends the movie to the favorites unless it is already there.
// The returned alert is a success on insert and a warning on a duplicate.
func (s *Store) AddToFavorite(id int) (*model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := findByID(s.movies, id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrMovieNotFound, id)
	}

	if _, exists := findByID(s.favorites, id); exists {
		return s.setAlertLocked(model.SeverityWarning, msgFavoriteDuplicate), nil
	}

	s.favorites = append(s.favorites, movie)
	s.clampLocked()
	return s.setAlertLocked(model.SeveritySuccess, msgFavoriteAdded), nil
}

// RemoveFromFavorite drops every favorite with the given id. Removing an
// id that is not a favorite changes nothing but still reports back.
func (s *Store) RemoveFromFavorite(id int) *model.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.Movie, 0, len(s.favorites))
	for _, movie := range s.favorites {
		if movie.ID != id {
			kept = append(kept, movie)
		}
	}
	s.favorites = kept
	s.clampLocked()
	return s.setAlertLocked(model.SeverityInfo, msgFavoriteRemoved)
}

// SelectMovie opens the detail modal for a movie
func (s *Store) SelectMovie(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := findByID(s.movies, id)
	if !ok {
		movie, ok = findByID(s.favorites, id)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrMovieNotFound, id)
	}

	s.selected = &movie
	s.modalOpen = true
	return nil
}

// OpenDetail is an alias for SelectMovie
func (s *Store) OpenDetail(id int) error {
	return s.SelectMovie(id)
}

func (s *Store) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.selected = nil
}

// SetSearchKeyword replaces the keyword. The page number is only clamped
// here; moving back to page one is left to the caller.
func (s *Store) SetSearchKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyword = keyword
	s.clampLocked()
}

// SetPage moves to page n, clamped to the pages the visible list spans
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = n
	s.clampLocked()
}

func (s *Store) SetViewMode(mode model.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
	return nil
}

// SetCurrentPage switches between the catalog and the favorites
func (s *Store) SetCurrentPage(page model.Page) error {
	if !page.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPage, page)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
	s.clampLocked()
	return nil
}

func (s *Store) SetPerPage(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPerPage, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perPage = n
	s.clampLocked()
	return nil
}

func (s *Store) DismissAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = nil
}

// ExpireAlert clears the alert only if it is still the one identified by id.
// It reports whether anything was cleared.
func (s *Store) ExpireAlert(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alert == nil || s.alert.ID != id {
		return false
	}
	s.alert = nil
	return true
}

// Snapshot copies the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Movies:         append([]model.Movie(nil), s.movies...),
		Favorites:      append([]model.Movie(nil), s.favorites...),
		ViewMode:       s.viewMode,
		CurrentPage:    s.currentPage,
		SearchKeyword:  s.keyword,
		PaginationPage: s.page,
		PerPage:        s.perPage,
		ModalOpen:      s.modalOpen,
		Loading:        s.inflight > 0 || !s.fetched,
		LastError:      s.lastErr,
	}
	if s.selected != nil {
		selected := *s.selected
		snap.SelectedMovie = &selected
	}
	if s.alert != nil {
		alert := *s.alert
		snap.Alert = &alert
	}
	return snap
}

// Visible returns the current page of the filtered current list
func (s *Store) Visible() []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := Paginate(s.filteredLocked(), s.page, s.perPage)
	return append([]model.Movie(nil), visible...)
}

// VisibleCount is the size of the filtered current list across all pages
func (s *Store) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filteredLocked())
}

func (s *Store) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PageCount(len(s.filteredLocked()), s.perPage)
}

func (s *Store) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := findByID(s.favorites, id)
	return ok
}

func (s *Store) currentListLocked() []model.Movie {
	if s.currentPage == model.PageFavorite {
		return s.favorites
	}
	return s.movies
}

func (s *Store) filteredLocked() []model.Movie {
	return Filter(s.currentListLocked(), s.keyword)
}

func (s *Store) clampLocked() {
	last := PageCount(len(s.filteredLocked()), s.perPage)
	if s.page > last {
		s.page = last
	}
	if s.page < 1 {
		s.page = 1
	}
}

func (s *Store) setAlertLocked(severity model.Severity, message string) *model.Alert {
	s.alert = model.NewAlert(severity, message)
	alert := *s.alert
	return &alert
}

func findByID(movies []model.Movie, id int) (model.Movie, bool) {
	for _, movie := range movies {
		if movie.ID == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}
