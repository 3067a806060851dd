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

type fakeUserRepo struct {
	findByIDFunc      func(ctx context.Context, id uint) (domain.User, error)
	findAllFunc       func(ctx context.Context, skip, limit int) ([]domain.User, error)
	findSummariesFunc func(ctx context.Context, ids []uint) ([]domain.UserSummary, error)
	searchFunc        func(ctx context.Context, term string, skip, limit int) ([]domain.User, error)
	updateFunc        func(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error)
	deactivateFunc    func(ctx context.Context, id uint) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(ctx, id)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context, skip, limit int) ([]domain.User, error) {
	if f.findAllFunc != nil {
		return f.findAllFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindSummaries(ctx context.Context, ids []uint) ([]domain.UserSummary, error) {
	if f.findSummariesFunc != nil {
		return f.findSummariesFunc(ctx, ids)
	}
	summaries := make([]domain.UserSummary, 0, len(ids))
	for _, id := range ids {
		summaries = append(summaries, domain.UserSummary{ID: id})
	}
	return summaries, nil
}

func (f *fakeUserRepo) Search(ctx context.Context, term string, skip, limit int) ([]domain.User, error) {
	if f.searchFunc != nil {
		return f.searchFunc(ctx, term, skip, limit)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, update)
	}
	return domain.User{ID: id}, nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id uint) error {
	if f.deactivateFunc != nil {
		return f.deactivateFunc(ctx, id)
	}
	return nil
}

func TestUpdateUser_NotSelf(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.UpdateUser(context.Background(), 1, 2, domain.UserUpdate{})
	assert.ErrorIs(t, err, ErrNotSelf)
}

func TestUpdateUser_HashesNewPassword(t *testing.T) {
	var applied domain.UserUpdate
	repo := &fakeUserRepo{
		updateFunc: func(_ context.Context, id uint, update domain.UserUpdate) (domain.User, error) {
			applied = update
			return domain.User{ID: id}, nil
		},
	}
	svc := NewUserService(repo)

	password := "new-password1"
	_, err := svc.UpdateUser(context.Background(), 1, 1, domain.UserUpdate{Password: &password})
	require.NoError(t, err)

	require.NotNil(t, applied.Password)
	assert.NotEqual(t, password, *applied.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*applied.Password), []byte(password)))
}

func TestDeleteUser_NotSelf(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	err := svc.DeleteUser(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotSelf)
}

func TestDeleteUser_Self(t *testing.T) {
	deactivated := uint(0)
	repo := &fakeUserRepo{
		deactivateFunc: func(_ context.Context, id uint) error {
			deactivated = id
			return nil
		},
	}
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), deactivated)
}
