// Package client is a typed HTTP client for the favmov API, used by the CLI
// front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/favmov/favmov-go/internal/model"
)

// Client calls the favmov API server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the given base URL. token may be empty for the
// public auth endpoints.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 response, which means the
// session token is missing, invalid or expired.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Register creates an account and returns the user with a session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (model.AuthData, error) {
	var out model.AuthData
	req := model.RegisterRequest{Name: name, Email: email, Password: password}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out)
	return out, err
}

// Login authenticates and returns the user with a session token.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthData, error) {
	var out model.AuthData
	req := model.LoginRequest{Email: email, Password: password}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out)
	return out, err
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (model.UserResponse, error) {
	var out struct {
		User model.UserResponse `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out.User, err
}

// Favorites lists the user's server-side favorites, newest first.
func (c *Client) Favorites(ctx context.Context) ([]model.Favorite, error) {
	var out struct {
		Favorites []model.Favorite `json:"favorites"`
	}
	err := c.do(ctx, http.MethodGet, "/api/movies/favorites", nil, &out)
	return out.Favorites, err
}

// AddFavorite stores a movie in the user's favorites.
func (c *Client) AddFavorite(ctx context.Context, req model.AddFavoriteRequest) (model.Favorite, error) {
	var out struct {
		Favorite model.Favorite `json:"favorite"`
	}
	err := c.do(ctx, http.MethodPost, "/api/movies/favorites", req, &out)
	return out.Favorite, err
}

// RemoveFavorite deletes a movie from the user's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, movieID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/movies/favorites/%d", movieID), nil, nil)
}

// CheckFavorite reports whether the movie is in the user's favorites.
func (c *Client) CheckFavorite(ctx context.Context, movieID int64) (bool, error) {
	var out struct {
		IsFavorite bool `json:"isFavorite"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/movies/favorites/%d", movieID), nil, &out)
	return out.IsFavorite, err
}

// MovieDetails fetches catalog details through the server proxy.
func (c *Client) MovieDetails(ctx context.Context, movieID int64, language string) (json.RawMessage, error) {
	var out json.RawMessage
	path := fmt.Sprintf("/api/movies/%d?language=%s", movieID, language)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// UpdatePhoto uploads a profile photo and returns the updated user.
func (c *Client) UpdatePhoto(ctx context.Context, path string) (model.UserResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.UserResponse{}, err
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filepath.Base(path))
	if err != nil {
		return model.UserResponse{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.UserResponse{}, err
	}
	if err := mw.Close(); err != nil {
		return model.UserResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/update-photo", &buf)
	if err != nil {
		return model.UserResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		User model.UserResponse `json:"user"`
	}
	if err := c.send(req, &out); err != nil {
		return model.UserResponse{}, err
	}
	return out.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
