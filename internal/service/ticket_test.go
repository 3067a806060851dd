package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakeTicketRepo struct {
	createTypeFunc       func(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	findTypeByIDFunc     func(ctx context.Context, id uint) (domain.TicketType, error)
	countByTypeBuyerFunc func(ctx context.Context, ticketTypeID, buyerID uint) (int, error)
	purchaseFunc         func(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
}

func (f *fakeTicketRepo) CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	if f.createTypeFunc != nil {
		return f.createTypeFunc(ctx, ticketType)
	}
	ticketType.ID = 1
	return ticketType, nil
}

func (f *fakeTicketRepo) FindTypeByID(ctx context.Context, id uint) (domain.TicketType, error) {
	if f.findTypeByIDFunc != nil {
		return f.findTypeByIDFunc(ctx, id)
	}
	return domain.TicketType{}, repository.ErrTicketTypeNotFound
}

func (f *fakeTicketRepo) FindTypesByEventID(_ context.Context, _ uint) ([]domain.TicketType, error) {
	return nil, nil
}

func (f *fakeTicketRepo) CountValidByTypeAndBuyer(ctx context.Context, ticketTypeID, buyerID uint) (int, error) {
	if f.countByTypeBuyerFunc != nil {
		return f.countByTypeBuyerFunc(ctx, ticketTypeID, buyerID)
	}
	return 0, nil
}

func (f *fakeTicketRepo) Purchase(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if f.purchaseFunc != nil {
		return f.purchaseFunc(ctx, ticket)
	}
	ticket.ID = 1
	return ticket, nil
}

func (f *fakeTicketRepo) FindByBuyerID(_ context.Context, _ uint) ([]domain.Ticket, error) {
	return nil, nil
}

type fakeTicketEventRepo struct {
	event domain.Event
}

func (f *fakeTicketEventRepo) FindByID(_ context.Context, _ uint) (domain.Event, error) {
	return f.event, nil
}

func newTicketService(repo *fakeTicketRepo) *TicketService {
	eventRepo := &fakeTicketEventRepo{
		event: domain.Event{ID: 2, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
	}
	return NewTicketService(repo, eventRepo)
}

func TestCreateTicketType_NonOrganizerRejected(t *testing.T) {
	svc := newTicketService(&fakeTicketRepo{})

	_, err := svc.CreateTicketType(context.Background(), domain.TicketType{EventID: 2, Name: "VIP"}, 5)
	assert.ErrorIs(t, err, ErrNotEventOrganizer)
}

func TestPurchase_Succeeds(t *testing.T) {
	var stored domain.Ticket
	repo := &fakeTicketRepo{
		findTypeByIDFunc: func(_ context.Context, id uint) (domain.TicketType, error) {
			return domain.TicketType{ID: id, EventID: 2, Quantity: 10, SoldCount: 3, MaxPerPerson: 2}, nil
		},
		purchaseFunc: func(_ context.Context, ticket domain.Ticket) (domain.Ticket, error) {
			stored = ticket
			ticket.ID = 1
			return ticket, nil
		},
	}
	svc := newTicketService(repo)

	ticket, err := svc.Purchase(context.Background(), 5, 1, domain.BuyerInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	assert.True(t, ticket.IsValid)
	assert.Equal(t, uint(2), stored.EventID)
	assert.True(t, strings.HasPrefix(stored.TicketNumber, "TKT-"+time.Now().Format("20060102")+"-"))
	assert.Len(t, stored.TicketNumber, len("TKT-20060102-")+8)
}

func TestPurchase_SoldOut(t *testing.T) {
	repo := &fakeTicketRepo{
		findTypeByIDFunc: func(_ context.Context, id uint) (domain.TicketType, error) {
			return domain.TicketType{ID: id, EventID: 2, Quantity: 5, SoldCount: 5, MaxPerPerson: 2}, nil
		},
	}
	svc := newTicketService(repo)

	_, err := svc.Purchase(context.Background(), 5, 1, domain.BuyerInfo{})
	assert.ErrorIs(t, err, ErrTicketsSoldOut)
}

func TestPurchase_LimitReached(t *testing.T) {
	repo := &fakeTicketRepo{
		findTypeByIDFunc: func(_ context.Context, id uint) (domain.TicketType, error) {
			return domain.TicketType{ID: id, EventID: 2, Quantity: 10, SoldCount: 3, MaxPerPerson: 2}, nil
		},
		countByTypeBuyerFunc: func(_ context.Context, _, _ uint) (int, error) {
			return 2, nil
		},
	}
	svc := newTicketService(repo)

	_, err := svc.Purchase(context.Background(), 5, 1, domain.BuyerInfo{})
	assert.ErrorIs(t, err, ErrTicketLimitReached)
}

func TestPurchase_ConcurrentLoserGetsSoldOut(t *testing.T) {
	// Inventory looks available at read time but the guarded update in
	// storage loses the race.
	repo := &fakeTicketRepo{
		findTypeByIDFunc: func(_ context.Context, id uint) (domain.TicketType, error) {
			return domain.TicketType{ID: id, EventID: 2, Quantity: 5, SoldCount: 4, MaxPerPerson: 2}, nil
		},
		purchaseFunc: func(_ context.Context, _ domain.Ticket) (domain.Ticket, error) {
			return domain.Ticket{}, repository.ErrTicketsSoldOut
		},
	}
	svc := newTicketService(repo)

	_, err := svc.Purchase(context.Background(), 5, 1, domain.BuyerInfo{})
	assert.ErrorIs(t, err, ErrTicketsSoldOut)
}

func TestListUserTickets_NotSelf(t *testing.T) {
	svc := newTicketService(&fakeTicketRepo{})

	_, err := svc.ListUserTickets(context.Background(), 5, 6)
	assert.ErrorIs(t, err, ErrNotSelf)
}
