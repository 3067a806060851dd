package service

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var ErrShoppingItemNameTaken = repository.ErrShoppingItemNameTaken

type ShoppingRepository interface {
	Create(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error)
	FindListByEventID(ctx context.Context, eventID uint) (domain.ShoppingList, error)
}

type ShoppingEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type ShoppingService struct {
	repo      ShoppingRepository
	eventRepo ShoppingEventRepository
}

func NewShoppingService(repo ShoppingRepository, eventRepo ShoppingEventRepository) *ShoppingService {
	return &ShoppingService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *ShoppingService) requireParticipant(ctx context.Context, callerID, eventID uint) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if !event.IsParticipant(callerID) {
		return ErrNotEventParticipant
	}

	return nil
}

func (s *ShoppingService) AddItem(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error) {
	if err := s.requireParticipant(ctx, item.UserID, item.EventID); err != nil {
		return domain.ShoppingItem{}, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.ShoppingItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ShoppingService) GetEventList(ctx context.Context, callerID, eventID uint) (domain.ShoppingList, error) {
	if err := s.requireParticipant(ctx, callerID, eventID); err != nil {
		return domain.ShoppingList{}, err
	}

	list, err := s.repo.FindListByEventID(ctx, eventID)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("s.repo.FindListByEventID -> %w", err)
	}

	return list, nil
}
