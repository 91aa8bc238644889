package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// fakeUserRepo is an in-memory user.Repository keyed by username.
type fakeUserRepo struct {
	nextID int64
	users  map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (int64, error) {
	if _, ok := r.users[u.Username]; ok {
		return 0, user.ErrUsernameTaken
	}
	r.nextID++
	u.ID = r.nextID
	stored := *u
	r.users[u.Username] = &stored
	return u.ID, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) CountByUsername(_ context.Context, username string) (int, error) {
	if _, ok := r.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	stored, ok := r.users[u.Username]
	if !ok {
		return user.ErrUserNotFound
	}
	stored.Name = u.Name
	stored.Password = u.Password
	return nil
}

func (r *fakeUserRepo) SetToken(_ context.Context, username string, token *string) error {
	stored, ok := r.users[username]
	if !ok {
		return user.ErrUserNotFound
	}
	stored.Token = token
	return nil
}

func newTestService() (user.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour)), repo
}

func registerRequest() user.RegisterRequest {
	return user.RegisterRequest{
		Username: "alice",
		Password: "hunter22",
		Name:     "Alice",
	}
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "Alice", resp.Name)

		stored := repo.users["alice"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "hunter22", stored.Password)
		assert.Equal(t, user.RoleUser, stored.Role)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, err = svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, user.ErrUsernameTaken)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(ctx, user.RegisterRequest{Username: "alice"})
		assert.Error(t, err)
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues and stores a token", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		resp, err := svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)

		assert.Equal(t, "alice", resp.Username)
		assert.NotEmpty(t, resp.Token)

		stored := repo.users["alice"]
		require.NotNil(t, stored.Token)
		assert.Equal(t, resp.Token, *stored.Token)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, err = svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown user fails the same way as a wrong password", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Login(ctx, user.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestUserServiceVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves an active session", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		login, err := svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)

		username, role, err := svc.VerifyToken(ctx, login.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "user", role)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		login, err := svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)

		username, err := svc.Logout(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
		assert.Nil(t, repo.users["alice"].Token)

		// The JWT itself is still within its expiry; the stored-token
		// check is what rejects it.
		_, _, err = svc.VerifyToken(ctx, login.Token)
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("a fresh login supersedes the previous token", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		first, err := svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)

		// Force a distinct token regardless of issue-time resolution.
		rotated := first.Token + "x"
		repo.users["alice"].Token = &rotated

		_, _, err = svc.VerifyToken(ctx, first.Token)
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, _, err := svc.VerifyToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, user.ErrInvalidToken)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	before := repo.users["alice"].Password

	name := "Alice Cooper"
	password := "new-password"
	resp, err := svc.Update(ctx, "alice", user.UpdateUserRequest{Name: &name, Password: &password})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", resp.Name)
	assert.NotEqual(t, before, repo.users["alice"].Password)

	// The new password works for login.
	_, err = svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "new-password"})
	assert.NoError(t, err)
}
