// Package stubserver serves the movies API from a local fixture so the
// viewer can run without the remote backend.
package stubserver

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sebastiantruijens/moviedeck/internal/model"
)

//go:embed fixtures/movies.json
var defaultFixture []byte

var ErrInvalidFixture = errors.New("invalid movie fixture")

const shutdownTimeout = 5 * time.Second

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type moviesResponse struct {
	Results []model.Movie `json:"results"`
}

type Server struct {
	engine  *gin.Engine
	movies  []model.Movie
	byID    map[int]model.Movie
	byImage map[string]model.Movie
	logger  *slog.Logger
}

// LoadFixture reads the movie list from path, or the embedded fixture when path is empty
func LoadFixture(path string) ([]model.Movie, error) {
	data := defaultFixture
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}

	var resp struct {
		Results *[]model.Movie `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrInvalidFixture)
	}

	seen := make(map[int]bool, len(*resp.Results))
	for _, m := range *resp.Results {
		if m.ID <= 0 {
			return nil, fmt.Errorf("%w: movie %q has no id", ErrInvalidFixture, m.Title)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidFixture, m.ID)
		}
		seen[m.ID] = true
	}
	return *resp.Results, nil
}

// New builds the router over movies
func New(movies []model.Movie, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:  gin.New(),
		movies:  movies,
		byID:    make(map[int]model.Movie, len(movies)),
		byImage: make(map[string]model.Movie, len(movies)),
		logger:  logger.With("component", "stubserver"),
	}
	for _, m := range movies {
		s.byID[m.ID] = m
		if m.Image != "" {
			s.byImage[m.Image] = m
		}
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.GET("/movies/", s.listMovies)
	api.GET("/movies/:id", s.getMovie)

	s.engine.GET("/posters/:image", s.getPoster)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("stub server listening", "addr", addr, "movies", len(s.movies))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down stub server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) listMovies(c *gin.Context) {
	movies := s.movies
	if movies == nil {
		movies = []model.Movie{}
	}
	c.JSON(http.StatusOK, moviesResponse{Results: movies})
}

func (s *Server) getMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid movie id", Code: http.StatusBadRequest})
		return
	}

	movie, ok := s.byID[id]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found", Code: http.StatusNotFound})
		return
	}
	c.JSON(http.StatusOK, moviesResponse{Results: []model.Movie{movie}})
}

// getPoster answers with a placeholder SVG carrying the movie title
func (s *Server) getPoster(c *gin.Context) {
	movie, ok := s.byImage[c.Param("image")]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "poster not found", Code: http.StatusNotFound})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(posterSVG(movie.Title)))
}

func posterSVG(title string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="450">`+
		`<rect width="100%%" height="100%%" fill="#141414"/>`+
		`<text x="50%%" y="50%%" fill="#F5F5F1" font-family="sans-serif" font-size="20" text-anchor="middle">%s</text>`+
		`</svg>`, html.EscapeString(title))
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
