package handler

import (
	"context"

	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/repository"
)

// In-memory stores backing the test routers, returning the repository's
// sentinel errors so the full error translation chain runs under test.

type memUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	s.nextID++
	user.ID = s.nextID
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) UpdatePhotoURL(_ context.Context, id int64, photoURL string) error {
	for _, u := range s.users {
		if u.ID == id {
			u.PhotoURL = &photoURL
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type memFavoriteStore struct {
	favorites []model.Favorite
	nextID    int64
}

func (s *memFavoriteStore) Create(_ context.Context, fav *model.Favorite) error {
	for _, f := range s.favorites {
		if f.UserID == fav.UserID && f.MovieID == fav.MovieID {
			return repository.ErrDuplicateFavorite
		}
	}
	s.nextID++
	fav.ID = s.nextID
	s.favorites = append([]model.Favorite{*fav}, s.favorites...)
	return nil
}

func (s *memFavoriteStore) ListByUser(_ context.Context, userID int64) ([]model.Favorite, error) {
	var out []model.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *memFavoriteStore) Exists(_ context.Context, userID, movieID int64) (bool, error) {
	for _, f := range s.favorites {
		if f.UserID == userID && f.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memFavoriteStore) Delete(_ context.Context, userID, movieID int64) error {
	for i, f := range s.favorites {
		if f.UserID == userID && f.MovieID == movieID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return repository.ErrFavoriteNotFound
}
