package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound

	// ErrNotSelf rejects writes against another user's account.
	ErrNotSelf = errors.New("can only modify your own account")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindAll(ctx context.Context, skip, limit int) ([]domain.User, error)
	FindSummaries(ctx context.Context, ids []uint) ([]domain.UserSummary, error)
	Search(ctx context.Context, term string, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error)
	Deactivate(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) SearchUsers(ctx context.Context, term string, skip, limit int) ([]domain.User, error) {
	users, err := s.repo.Search(ctx, term, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, callerID, id uint, update domain.UserUpdate) (domain.User, error) {
	if callerID != id {
		return domain.User{}, ErrNotSelf
	}

	if update.Password != nil {
		hashedPassword, err := hashPassword(*update.Password)
		if err != nil {
			return domain.User{}, err
		}
		update.Password = &hashedPassword
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteUser deactivates the account. The flag is terminal; reads skip
// inactive rows from then on and the email is freed for re-registration.
func (s *UserService) DeleteUser(ctx context.Context, callerID, id uint) error {
	if callerID != id {
		return ErrNotSelf
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return nil
}
