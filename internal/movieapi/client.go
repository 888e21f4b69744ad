package movieapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sebastiantruijens/moviedeck/internal/model"
)

const (
	DefaultBaseURL = "https://webdev.alphacamp.io"

	moviesPath  = "/api/movies/"
	postersPath = "/posters/"
	userAgent   = "moviedeck/1.0"
)

var (
	ErrFetchFailed     = errors.New("failed to fetch movies")
	ErrInvalidResponse = errors.New("invalid movies response")
)

// movieDTO mirrors one entry of the results array
type movieDTO struct {
	ID          *int   `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ReleaseDate string `json:"release_date"`
	Description string `json:"description"`
}

type moviesResponse struct {
	Results *[]movieDTO `json:"results"`
}

// Client talks to the movies REST API
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a new API client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "movieapi"),
	}
}

// FetchMovies downloads the whole catalog in one call
func (c *Client) FetchMovies(ctx context.Context) ([]model.Movie, error) {
	indexURL := c.baseURL + moviesPath
	c.logger.Debug("fetching movies", "url", indexURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status code %d: %s", ErrFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload moviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrInvalidResponse)
	}

	movies := make([]model.Movie, 0, len(*payload.Results))
	for i, dto := range *payload.Results {
		if dto.ID == nil {
			return nil, fmt.Errorf("%w: result %d has no id", ErrInvalidResponse, i)
		}
		movies = append(movies, model.Movie{
			ID:          *dto.ID,
			Title:       strings.TrimSpace(dto.Title),
			Image:       dto.Image,
			ReleaseDate: dto.ReleaseDate,
			Description: CleanText(dto.Description),
		})
	}

	c.logger.Debug("fetched movies", "count", len(movies))
	return movies, nil
}

// PosterURL resolves a movie's relative image path against the poster root
func (c *Client) PosterURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return c.baseURL + postersPath + strings.TrimLeft(image, "/")
}
