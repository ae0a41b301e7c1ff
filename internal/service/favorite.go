package service

import (
	"context"
	"errors"

	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/repository"
)

var (
	ErrDuplicateFavorite = errors.New("movie already in favorites")
	ErrFavoriteNotFound  = errors.New("movie not found in favorites")
	ErrMovieIDRequired   = errors.New("movieId is required")
	ErrTitleRequired     = errors.New("title is required")
)

// FavoriteStore is the persistence surface the favorites service needs.
// *repository.FavoriteRepository is the production implementation.
type FavoriteStore interface {
	Create(ctx context.Context, fav *model.Favorite) error
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	Exists(ctx context.Context, userID, movieID int64) (bool, error)
	Delete(ctx context.Context, userID, movieID int64) error
}

// FavoriteService handles favorite movie business logic.
type FavoriteService struct {
	repo FavoriteStore
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo FavoriteStore) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// List returns all favorites for a user, newest first.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	return favorites, nil
}

// Add stores a movie in the user's favorites.
func (s *FavoriteService) Add(ctx context.Context, userID int64, req model.AddFavoriteRequest) (model.Favorite, error) {
	if req.MovieID == 0 {
		return model.Favorite{}, ErrMovieIDRequired
	}
	if req.Title == "" {
		return model.Favorite{}, ErrTitleRequired
	}

	fav := model.Favorite{
		UserID:     userID,
		MovieID:    req.MovieID,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		Overview:   req.Overview,
	}

	if err := s.repo.Create(ctx, &fav); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return model.Favorite{}, ErrDuplicateFavorite
		}
		return model.Favorite{}, err
	}

	return fav, nil
}

// Remove deletes a movie from the user's favorites.
func (s *FavoriteService) Remove(ctx context.Context, userID, movieID int64) error {
	err := s.repo.Delete(ctx, userID, movieID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

// IsFavorite reports whether the user has favorited the movie.
// Absence is not an error; it simply returns false.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, movieID int64) (bool, error) {
	return s.repo.Exists(ctx, userID, movieID)
}
