package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("expected JSON content type")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"success","data":{"user":{"id":1,"name":"Alice","email":"alice@example.com"},"token":"tok-1"}}`))
	})

	mux.HandleFunc("GET /api/movies/favorites", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","message":"invalid token. Please log in again."}`))
			return
		}
		w.Write([]byte(`{"status":"success","data":{"favorites":[{"id":9,"userId":1,"movieId":550,"title":"Fight Club"}]}}`))
	})

	mux.HandleFunc("GET /api/movies/favorites/550", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"isFavorite":true}}`))
	})

	mux.HandleFunc("DELETE /api/movies/favorites/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"movie not found in favorites"}`))
	})

	return httptest.NewServer(mux)
}

func TestLogin(t *testing.T) {
	ts := newAPIServer(t)
	defer ts.Close()

	c := New(ts.URL, "")
	auth, err := c.Login(context.Background(), "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if auth.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1", auth.Token)
	}
	if auth.User.Email != "alice@example.com" {
		t.Errorf("user email = %q", auth.User.Email)
	}
}

func TestFavoritesSendsBearerToken(t *testing.T) {
	ts := newAPIServer(t)
	defer ts.Close()

	c := New(ts.URL, "tok-1")
	favorites, err := c.Favorites(context.Background())
	if err != nil {
		t.Fatalf("Favorites() unexpected error: %v", err)
	}
	if len(favorites) != 1 || favorites[0].MovieID != 550 {
		t.Errorf("unexpected favorites: %+v", favorites)
	}
}

func TestFavoritesUnauthorized(t *testing.T) {
	ts := newAPIServer(t)
	defer ts.Close()

	c := New(ts.URL, "stale-token")
	_, err := c.Favorites(context.Background())
	if err == nil {
		t.Fatal("expected error for stale token")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized() = false for %v", err)
	}
	if err.Error() != "invalid token. Please log in again." {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCheckFavorite(t *testing.T) {
	ts := newAPIServer(t)
	defer ts.Close()

	c := New(ts.URL, "tok-1")
	isFavorite, err := c.CheckFavorite(context.Background(), 550)
	if err != nil {
		t.Fatalf("CheckFavorite() unexpected error: %v", err)
	}
	if !isFavorite {
		t.Error("expected isFavorite = true")
	}
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	ts := newAPIServer(t)
	defer ts.Close()

	c := New(ts.URL, "tok-1")
	err := c.RemoveFavorite(context.Background(), 42)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if IsUnauthorized(err) {
		t.Error("404 must not be reported as unauthorized")
	}
}
