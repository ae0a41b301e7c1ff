package repository

import "testing"

func TestNewFavoriteRepository(t *testing.T) {
	repo := NewFavoriteRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil FavoriteRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestFavoriteSentinelErrors(t *testing.T) {
	if ErrFavoriteNotFound.Error() != "favorite not found" {
		t.Fatalf("unexpected error message: %s", ErrFavoriteNotFound.Error())
	}
	if ErrDuplicateFavorite.Error() != "favorite already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateFavorite.Error())
	}
}
