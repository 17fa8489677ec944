package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/repository"
)

type fakeAuthRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		byEmail: make(map[string]domain.User),
	}
}

func (f *fakeAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("hashes the password and stores the user", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := NewAuthService(repo)

		created, err := svc.Signup(context.Background(), domain.User{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "password1",
			Role:     domain.RoleParticipant,
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.NotEqual(t, "password1", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		svc := NewAuthService(newFakeAuthRepo())

		_, err := svc.Signup(context.Background(), domain.User{
			Email:    "alice@example.com",
			Password: "password1",
			Role:     domain.Role("ADMIN"),
		})

		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := NewAuthService(repo)

		user := domain.User{
			Email:    "alice@example.com",
			Password: "password1",
			Role:     domain.RoleParticipant,
		}
		_, err := svc.Signup(context.Background(), user)
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), user)

		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password1",
		Role:     domain.RoleParticipant,
	})
	require.NoError(t, err)

	t.Run("returns the user on valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "alice@example.com", "password1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "bob@example.com", "password1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
