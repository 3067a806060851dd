package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrTicketTypeNotFound = repository.ErrTicketTypeNotFound
	ErrTicketsSoldOut     = repository.ErrTicketsSoldOut

	ErrTicketLimitReached = errors.New("purchase limit reached for this ticket type")
)

type TicketRepository interface {
	CreateType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (domain.TicketType, error)
	FindTypesByEventID(ctx context.Context, eventID uint) ([]domain.TicketType, error)
	CountValidByTypeAndBuyer(ctx context.Context, ticketTypeID, buyerID uint) (int, error)
	Purchase(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindByBuyerID(ctx context.Context, buyerID uint) ([]domain.Ticket, error)
}

type TicketEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type TicketService struct {
	repo      TicketRepository
	eventRepo TicketEventRepository
}

func NewTicketService(repo TicketRepository, eventRepo TicketEventRepository) *TicketService {
	return &TicketService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// newTicketNumber builds a unique human-scannable reference like
// TKT-20260901-1A2B3C4D.
func newTicketNumber(now time.Time) string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return fmt.Sprintf("TKT-%s-%s", now.Format("20060102"), fragment)
}

func (s *TicketService) CreateTicketType(ctx context.Context, ticketType domain.TicketType, callerID uint) (domain.TicketType, error) {
	event, err := s.eventRepo.FindByID(ctx, ticketType.EventID)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if !event.IsOrganizer(callerID) {
		return domain.TicketType{}, ErrNotEventOrganizer
	}

	created, err := s.repo.CreateType(ctx, ticketType)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("s.repo.CreateType -> %w", err)
	}

	return created, nil
}

func (s *TicketService) ListEventTicketTypes(ctx context.Context, eventID uint) ([]domain.TicketType, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	ticketTypes, err := s.repo.FindTypesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTypesByEventID -> %w", err)
	}

	return ticketTypes, nil
}

// Purchase checks the buyer's per-person cap, then lets the storage
// layer claim inventory atomically. The pre-check on sold_count here is
// advisory only; the guarded update is what makes oversell impossible.
func (s *TicketService) Purchase(ctx context.Context, buyerID, ticketTypeID uint, buyerInfo domain.BuyerInfo) (domain.Ticket, error) {
	ticketType, err := s.repo.FindTypeByID(ctx, ticketTypeID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	if ticketType.AvailableCount() == 0 {
		return domain.Ticket{}, ErrTicketsSoldOut
	}

	held, err := s.repo.CountValidByTypeAndBuyer(ctx, ticketTypeID, buyerID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.CountValidByTypeAndBuyer -> %w", err)
	}
	if held >= ticketType.MaxPerPerson {
		return domain.Ticket{}, ErrTicketLimitReached
	}

	now := time.Now()
	ticket, err := s.repo.Purchase(ctx, domain.Ticket{
		TicketTypeID: ticketTypeID,
		EventID:      ticketType.EventID,
		BuyerID:      buyerID,
		BuyerInfo:    buyerInfo,
		TicketNumber: newTicketNumber(now),
		PurchaseDate: now,
		IsValid:      true,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Purchase -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) ListUserTickets(ctx context.Context, callerID, userID uint) ([]domain.Ticket, error) {
	if callerID != userID {
		return nil, ErrNotSelf
	}

	tickets, err := s.repo.FindByBuyerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByBuyerID -> %w", err)
	}

	return tickets, nil
}
