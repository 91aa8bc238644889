package service

import (
	"context"
	"errors"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService - Constructor with DI
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	logger.Debug("UserService.Register", map[string]interface{}{"username": req.Username})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Check-then-act; the unique index on users(username) closes the race.
	count, err := s.repo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if count != 0 {
		return nil, user.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
		Role:     user.RoleUser,
	}

	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

// Login verifies credentials and issues a session token.
// The token is also stored on the user row so logout can revoke it.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	logger.Debug("UserService.Login", map[string]interface{}{"username": req.Username})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(req.Password, u.Password) {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(u.Username, u.Role.String())
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetToken(ctx, u.Username, &token); err != nil {
		return nil, err
	}

	return &user.TokenResponse{
		Username: u.Username,
		Name:     u.Name,
		Token:    token,
	}, nil
}

// Get returns the caller's profile.
func (s *userService) Get(ctx context.Context, username string) (*user.UserResponse, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

// Update applies a partial profile update.
func (s *userService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (*user.UserResponse, error) {
	logger.Debug("UserService.Update", map[string]interface{}{"username": username})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

// Logout clears the stored token, revoking the active session.
func (s *userService) Logout(ctx context.Context, username string) (string, error) {
	logger.Debug("UserService.Logout", map[string]interface{}{"username": username})

	if err := s.repo.SetToken(ctx, username, nil); err != nil {
		return "", err
	}

	return username, nil
}

// VerifyToken validates the JWT and checks it is still the token stored
// on the user row. A mismatch means the session was logged out.
func (s *userService) VerifyToken(ctx context.Context, token string) (string, string, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return "", "", user.ErrInvalidToken
	}

	u, err := s.repo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return "", "", user.ErrInvalidToken
	}

	if u.Token == nil || *u.Token != token {
		return "", "", user.ErrInvalidToken
	}

	return u.Username, u.Role.String(), nil
}
