package model

import "time"

// Favorite represents a user's favorite movie row in the database.
// (UserID, MovieID) is unique: a user can favorite a movie at most once.
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	MovieID    int64     `json:"movieId"`
	Title      string    `json:"title"`
	PosterPath string    `json:"posterPath"`
	Overview   string    `json:"overview"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AddFavoriteRequest represents a request to add a movie to favorites.
type AddFavoriteRequest struct {
	MovieID    int64  `json:"movieId"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath"`
	Overview   string `json:"overview"`
}
