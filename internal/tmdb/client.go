// Package tmdb is the catalog gateway: a client for The Movie Database API
// that translates third-party responses into the app's movie shapes.
//
// Base URL: https://api.themoviedb.org/3
// Authentication: api_key query parameter.
// Image base URL: https://image.tmdb.org/t/p/{size}{poster_path}
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// ImageBaseURL is the prefix for poster paths at width 500.
const ImageBaseURL = "https://image.tmdb.org/t/p/w500"

// Client is an HTTP client for the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a Client using the given api_key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-success response from the catalog API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb: upstream returned %d", e.StatusCode)
}

// APILanguage maps the app's language code to a TMDB language tag.
func APILanguage(code string) string {
	if code == "pt" {
		return "pt-BR"
	}
	return "en-US"
}

// Genre is a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a catalog movie in list responses, with genre names merged in.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
}

// MovieDetails is the response from GET /movie/{id}.
type MovieDetails struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	Tagline      string  `json:"tagline"`
	Genres       []Genre `json:"genres"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

type movieListResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

// Genres fetches the movie genre list in the given app language.
func (c *Client) Genres(ctx context.Context, language string) ([]Genre, error) {
	var resp genreListResponse
	params := url.Values{"language": {APILanguage(language)}}
	if err := c.get(ctx, "/genre/movie/list", params, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// Popular fetches one page of popular movies with genre names merged in.
func (c *Client) Popular(ctx context.Context, language string, page int) ([]Movie, error) {
	genres, err := c.Genres(ctx, language)
	if err != nil {
		return nil, err
	}

	var resp movieListResponse
	params := url.Values{
		"language": {APILanguage(language)},
		"page":     {fmt.Sprint(page)},
	}
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}

	return mergeGenres(resp.Results, genres), nil
}

// Search fetches the first page of movie search results with genre names merged in.
func (c *Client) Search(ctx context.Context, query, language string) ([]Movie, error) {
	genres, err := c.Genres(ctx, language)
	if err != nil {
		return nil, err
	}

	var resp movieListResponse
	params := url.Values{
		"language": {APILanguage(language)},
		"query":    {query},
		"page":     {"1"},
	}
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}

	return mergeGenres(resp.Results, genres), nil
}

// SearchFunc returns a search closure bound to a language, convenient for
// the debounced search runner.
func (c *Client) SearchFunc(language string) func(ctx context.Context, query string) ([]Movie, error) {
	return func(ctx context.Context, query string) ([]Movie, error) {
		return c.Search(ctx, query, language)
	}
}

// MovieDetails fetches full details for a single movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int64, language string) (*MovieDetails, error) {
	raw, err := c.MovieDetailsRaw(ctx, movieID, language)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// MovieDetailsRaw fetches movie details and returns the upstream body as-is.
// Used by the server proxy endpoint, which forwards the catalog payload
// without reshaping it.
func (c *Client) MovieDetailsRaw(ctx context.Context, movieID int64, language string) (json.RawMessage, error) {
	params := url.Values{"language": {APILanguage(language)}}
	body, err := c.getRaw(ctx, fmt.Sprintf("/movie/%d", movieID), params)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// mergeGenres attaches genre names to each movie by id lookup.
// Ids missing from the genre list are labelled "Unknown".
func mergeGenres(movies []Movie, genres []Genre) []Movie {
	byID := make(map[int]string, len(genres))
	for _, g := range genres {
		byID[g.ID] = g.Name
	}

	for i := range movies {
		merged := make([]Genre, 0, len(movies[i].GenreIDs))
		for _, id := range movies[i].GenreIDs {
			name, ok := byID[id]
			if !ok {
				name = "Unknown"
			}
			merged = append(merged, Genre{ID: id, Name: name})
		}
		movies[i].Genres = merged
	}

	return movies
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.getRaw(ctx, path, params)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
