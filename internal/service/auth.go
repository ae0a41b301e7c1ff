package service

import (
	"context"
	"errors"
	"time"

	"github.com/favmov/favmov-go/internal/crypto"
	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface the auth service needs.
// *repository.UserRepository is the production implementation.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePhotoURL(ctx context.Context, id int64, photoURL string) error
}

// AuthService handles registration, login and profile business logic.
type AuthService struct {
	repo      UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns the user with a session token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthData, error) {
	if req.Name == "" {
		return model.AuthData{}, ErrNameRequired
	}
	if req.Email == "" {
		return model.AuthData{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthData{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthData{}, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthData{}, ErrEmailTaken
		}
		return model.AuthData{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthData{}, err
	}

	return model.AuthData{User: user.Response(), Token: token}, nil
}

// Login authenticates a user and returns the user with a session token.
// Unknown email and wrong password produce the same error so the response
// carries no account-enumeration signal.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthData, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthData{}, ErrInvalidCredentials
		}
		return model.AuthData{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.Password) {
		return model.AuthData{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthData{}, err
	}

	return model.AuthData{User: user.Response(), Token: token}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.Response(), nil
}

// UpdatePhoto sets the user's profile photo URL and returns the updated user.
func (s *AuthService) UpdatePhoto(ctx context.Context, userID int64, photoURL string) (model.UserResponse, error) {
	if err := s.repo.UpdatePhotoURL(ctx, userID, photoURL); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return s.GetUser(ctx, userID)
}
