package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakeShoppingRepo struct {
	createFunc   func(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error)
	findListFunc func(ctx context.Context, eventID uint) (domain.ShoppingList, error)
}

func (f *fakeShoppingRepo) Create(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, item)
	}
	item.ID = 1
	return item, nil
}

func (f *fakeShoppingRepo) FindListByEventID(ctx context.Context, eventID uint) (domain.ShoppingList, error) {
	if f.findListFunc != nil {
		return f.findListFunc(ctx, eventID)
	}
	return domain.ShoppingList{EventID: eventID}, nil
}

func newShoppingService(repo *fakeShoppingRepo) *ShoppingService {
	eventRepo := &fakePollEventRepo{
		event: domain.Event{ID: 2, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
	}
	return NewShoppingService(repo, eventRepo)
}

func TestAddItem_NonParticipantRejected(t *testing.T) {
	svc := newShoppingService(&fakeShoppingRepo{})

	_, err := svc.AddItem(context.Background(), domain.ShoppingItem{EventID: 2, UserID: 9, Name: "Napkins"})
	assert.ErrorIs(t, err, ErrNotEventParticipant)
}

func TestAddItem_DuplicateName(t *testing.T) {
	repo := &fakeShoppingRepo{
		createFunc: func(_ context.Context, _ domain.ShoppingItem) (domain.ShoppingItem, error) {
			return domain.ShoppingItem{}, repository.ErrShoppingItemNameTaken
		},
	}
	svc := newShoppingService(repo)

	_, err := svc.AddItem(context.Background(), domain.ShoppingItem{EventID: 2, UserID: 5, Name: "Napkins"})
	assert.ErrorIs(t, err, ErrShoppingItemNameTaken)
}

func TestGetEventList(t *testing.T) {
	repo := &fakeShoppingRepo{
		findListFunc: func(_ context.Context, eventID uint) (domain.ShoppingList, error) {
			return domain.ShoppingList{
				EventID:      eventID,
				TotalItems:   3,
				BroughtItems: 1,
				PendingItems: 2,
			}, nil
		},
	}
	svc := newShoppingService(repo)

	list, err := svc.GetEventList(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalItems)
	assert.Equal(t, 2, list.PendingItems)
}
