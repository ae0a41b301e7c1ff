package store

import (
	"path/filepath"
	"sync"
)

const favoritesFile = "favorites.json"

// CachedMovie is a locally cached favorite, kept for offline display. The
// server's favorites table stays authoritative; this cache mirrors it after
// each successful call.
type CachedMovie struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath"`
	Overview   string `json:"overview"`
}

// FavoritesCache persists the local favorites list.
type FavoritesCache struct {
	mu     sync.Mutex
	path   string
	movies []CachedMovie
}

// OpenFavorites loads the favorites cache from dir, if any.
func OpenFavorites(dir string) (*FavoritesCache, error) {
	c := &FavoritesCache{path: filepath.Join(dir, favoritesFile)}
	if err := load(c.path, &c.movies); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns a copy of the cached favorites.
func (c *FavoritesCache) List() []CachedMovie {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CachedMovie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Add appends a movie to the cache. Adding an already cached movie is a no-op.
func (c *FavoritesCache) Add(movie CachedMovie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.movies {
		if m.ID == movie.ID {
			return nil
		}
	}
	c.movies = append(c.movies, movie)
	return save(c.path, c.movies)
}

// Remove drops a movie from the cache by id.
func (c *FavoritesCache) Remove(movieID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.movies[:0]
	for _, m := range c.movies {
		if m.ID != movieID {
			kept = append(kept, m)
		}
	}
	c.movies = kept
	return save(c.path, c.movies)
}

// IsFavorite reports whether the movie is in the cache.
func (c *FavoritesCache) IsFavorite(movieID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.movies {
		if m.ID == movieID {
			return true
		}
	}
	return false
}

// Replace overwrites the whole cache, used after listing the server's
// favorites.
func (c *FavoritesCache) Replace(movies []CachedMovie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies = movies
	return save(c.path, c.movies)
}
