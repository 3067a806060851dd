package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakeAuthUserRepo struct {
	createFunc      func(ctx context.Context, user domain.User) (domain.User, error)
	findByEmailFunc func(ctx context.Context, email string) (domain.User, error)
}

func (f *fakeAuthUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, user)
	}
	return user, nil
}

func (f *fakeAuthUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if f.findByEmailFunc != nil {
		return f.findByEmailFunc(ctx, email)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func TestSignup_HashesPassword(t *testing.T) {
	var stored domain.User
	repo := &fakeAuthUserRepo{
		createFunc: func(_ context.Context, user domain.User) (domain.User, error) {
			stored = user
			user.ID = 1
			return user, nil
		},
	}
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "plaintext1",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	assert.NotEqual(t, "plaintext1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &fakeAuthUserRepo{
		createFunc: func(_ context.Context, _ domain.User) (domain.User, error) {
			return domain.User{}, repository.ErrUserEmailExists
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "taken@example.com", Password: "plaintext1"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestLogin_Succeeds(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAuthUserRepo{
		findByEmailFunc: func(_ context.Context, _ string) (domain.User, error) {
			return domain.User{ID: 7, Email: "ada@example.com", Password: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), "ada@example.com", "correct-horse1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAuthUserRepo{
		findByEmailFunc: func(_ context.Context, _ string) (domain.User, error) {
			return domain.User{ID: 7, Password: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeAuthUserRepo{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
