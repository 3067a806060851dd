package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var (
	ErrTicketTypeNotFound = dao.ErrTicketTypeNotFound
	ErrTicketsSoldOut     = dao.ErrTicketsSoldOut
)

type TicketDAO interface {
	InsertType(ctx context.Context, ticketType dao.TicketType) (dao.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (dao.TicketType, error)
	FindTypesByEventID(ctx context.Context, eventID uint) ([]dao.TicketType, error)
	CountValidByTypeAndBuyer(ctx context.Context, ticketTypeID, buyerID uint) (int64, error)
	InsertPurchase(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindByBuyerID(ctx context.Context, buyerID uint) ([]dao.Ticket, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) typeDaoToDomain(t dao.TicketType) domain.TicketType {
	return domain.TicketType{
		ID:           t.ID,
		EventID:      t.EventID,
		Name:         t.Name,
		Description:  t.Description,
		Price:        t.Price,
		Quantity:     t.Quantity,
		MaxPerPerson: t.MaxPerPerson,
		SoldCount:    t.SoldCount,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TicketRepository) ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:           t.ID,
		TicketTypeID: t.TicketTypeID,
		EventID:      t.EventID,
		BuyerID:      t.BuyerID,
		BuyerInfo: domain.BuyerInfo{
			FirstName: t.BuyerInfo.FirstName,
			LastName:  t.BuyerInfo.LastName,
			Email:     t.BuyerInfo.Email,
			Address:   t.BuyerInfo.Address,
			Phone:     t.BuyerInfo.Phone,
		},
		TicketNumber: t.TicketNumber,
		PurchaseDate: t.PurchaseDate,
		IsValid:      t.IsValid,
		CheckedIn:    t.CheckedIn,
		CheckedInAt:  t.CheckedInAt,
	}
}

func (r *TicketRepository) CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	created, err := r.dao.InsertType(ctx, dao.TicketType{
		EventID:      ticketType.EventID,
		Name:         ticketType.Name,
		Description:  ticketType.Description,
		Price:        ticketType.Price,
		Quantity:     ticketType.Quantity,
		MaxPerPerson: ticketType.MaxPerPerson,
	})
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.InsertType -> %w", err)
	}

	return r.typeDaoToDomain(created), nil
}

func (r *TicketRepository) FindTypeByID(ctx context.Context, id uint) (domain.TicketType, error) {
	found, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}

	return r.typeDaoToDomain(found), nil
}

func (r *TicketRepository) FindTypesByEventID(ctx context.Context, eventID uint) ([]domain.TicketType, error) {
	found, err := r.dao.FindTypesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTypesByEventID -> %w", err)
	}

	ticketTypes := make([]domain.TicketType, 0, len(found))
	for _, t := range found {
		ticketTypes = append(ticketTypes, r.typeDaoToDomain(t))
	}

	return ticketTypes, nil
}

func (r *TicketRepository) CountValidByTypeAndBuyer(ctx context.Context, ticketTypeID, buyerID uint) (int, error) {
	count, err := r.dao.CountValidByTypeAndBuyer(ctx, ticketTypeID, buyerID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountValidByTypeAndBuyer -> %w", err)
	}

	return int(count), nil
}

// Purchase claims inventory and stores the ticket atomically. A sold-out
// type surfaces as ErrTicketsSoldOut.
func (r *TicketRepository) Purchase(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.InsertPurchase(ctx, dao.Ticket{
		TicketTypeID: ticket.TicketTypeID,
		EventID:      ticket.EventID,
		BuyerID:      ticket.BuyerID,
		BuyerInfo: dao.BuyerInfo{
			FirstName: ticket.BuyerInfo.FirstName,
			LastName:  ticket.BuyerInfo.LastName,
			Email:     ticket.BuyerInfo.Email,
			Address:   ticket.BuyerInfo.Address,
			Phone:     ticket.BuyerInfo.Phone,
		},
		TicketNumber: ticket.TicketNumber,
		PurchaseDate: ticket.PurchaseDate,
		IsValid:      true,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.InsertPurchase -> %w", err)
	}

	return r.ticketDaoToDomain(created), nil
}

func (r *TicketRepository) FindByBuyerID(ctx context.Context, buyerID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByBuyerID -> %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(found))
	for _, t := range found {
		tickets = append(tickets, r.ticketDaoToDomain(t))
	}

	return tickets, nil
}
