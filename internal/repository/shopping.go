package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var ErrShoppingItemNameTaken = dao.ErrShoppingItemNameTaken

type ShoppingDAO interface {
	Insert(ctx context.Context, item dao.ShoppingItem) (dao.ShoppingItem, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.ShoppingItem, error)
}

type ShoppingRepository struct {
	dao ShoppingDAO
}

func NewShoppingRepository(dao ShoppingDAO) *ShoppingRepository {
	return &ShoppingRepository{
		dao: dao,
	}
}

func (r *ShoppingRepository) daoToDomain(i dao.ShoppingItem) domain.ShoppingItem {
	return domain.ShoppingItem{
		ID:          i.ID,
		EventID:     i.EventID,
		UserID:      i.UserID,
		Name:        i.Name,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		ArrivalTime: i.ArrivalTime,
		Notes:       i.Notes,
		IsBrought:   i.IsBrought,
		IsActive:    i.IsActive,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ShoppingRepository) Create(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error) {
	created, err := r.dao.Insert(ctx, dao.ShoppingItem{
		EventID:     item.EventID,
		UserID:      item.UserID,
		Name:        item.Name,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		ArrivalTime: item.ArrivalTime,
		Notes:       item.Notes,
	})
	if err != nil {
		return domain.ShoppingItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// FindListByEventID assembles the event's shopping list with its
// brought/pending tallies.
func (r *ShoppingRepository) FindListByEventID(ctx context.Context, eventID uint) (domain.ShoppingList, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	list := domain.ShoppingList{
		EventID: eventID,
		Items:   make([]domain.ShoppingItem, 0, len(found)),
	}
	for _, i := range found {
		item := r.daoToDomain(i)
		list.Items = append(list.Items, item)
		list.TotalItems++
		if item.IsBrought {
			list.BroughtItems++
		} else {
			list.PendingItems++
		}
	}

	return list, nil
}
