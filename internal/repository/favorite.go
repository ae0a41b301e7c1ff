package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/favmov/favmov-go/internal/model"
)

var (
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository handles favorite movie persistence operations.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a new favorite and sets the generated ID on the struct.
// The (user_id, movie_id) unique key is the only duplicate guard; a race
// between two identical inserts resolves via the constraint error.
func (r *FavoriteRepository) Create(ctx context.Context, fav *model.Favorite) error {
	query := `INSERT INTO user_movies (user_id, movie_id, title, poster_path, overview)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		fav.UserID, fav.MovieID, fav.Title, fav.PosterPath, fav.Overview,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateFavorite
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	fav.ID = id
	return nil
}

// ListByUser retrieves all favorites for a user, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	query := `SELECT id, user_id, movie_id, title, poster_path, overview, created_at
		FROM user_movies WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.MovieID, &f.Title,
			&f.PosterPath, &f.Overview, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// GetByMovieID retrieves a user's favorite by movie ID.
func (r *FavoriteRepository) GetByMovieID(ctx context.Context, userID, movieID int64) (*model.Favorite, error) {
	query := `SELECT id, user_id, movie_id, title, poster_path, overview, created_at
		FROM user_movies WHERE user_id = ? AND movie_id = ?`

	fav := &model.Favorite{}
	err := r.db.QueryRowContext(ctx, query, userID, movieID).Scan(
		&fav.ID, &fav.UserID, &fav.MovieID, &fav.Title,
		&fav.PosterPath, &fav.Overview, &fav.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	return fav, nil
}

// Exists reports whether the user has favorited the given movie.
func (r *FavoriteRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	query := `SELECT 1 FROM user_movies WHERE user_id = ? AND movie_id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID, movieID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a user's favorite by movie ID.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, movieID int64) error {
	query := `DELETE FROM user_movies WHERE user_id = ? AND movie_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
