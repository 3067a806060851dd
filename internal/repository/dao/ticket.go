package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrTicketsSoldOut     = errors.New("no tickets available for this type")
)

type TicketType struct {
	ID uint `gorm:"primaryKey"`

	EventID      uint   `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Description  string
	Price        float64 `gorm:"not null"`
	Quantity     int     `gorm:"not null"`
	MaxPerPerson int     `gorm:"not null;default:1"`
	SoldCount    int     `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type BuyerInfo struct {
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Address   string
	Phone     string
}

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	TicketTypeID uint      `gorm:"not null;index"`
	EventID      uint      `gorm:"not null;index"`
	BuyerID      uint      `gorm:"not null;index"`
	BuyerInfo    BuyerInfo `gorm:"embedded;embeddedPrefix:buyer_"`
	TicketNumber string    `gorm:"unique;not null"`
	PurchaseDate time.Time `gorm:"not null"`
	IsValid      bool      `gorm:"not null;default:true"`
	CheckedIn    bool      `gorm:"not null;default:false"`
	CheckedInAt  *time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) InsertType(ctx context.Context, ticketType TicketType) (TicketType, error) {
	ticketType.IsActive = true
	ticketType.SoldCount = 0

	result := d.db.WithContext(ctx).Create(&ticketType)
	if result.Error != nil {
		return TicketType{}, result.Error
	}

	return ticketType, nil
}

func (d *TicketDAO) FindTypeByID(ctx context.Context, id uint) (TicketType, error) {
	var ticketType TicketType

	result := d.db.WithContext(ctx).First(&ticketType, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketType{}, ErrTicketTypeNotFound
		}

		return TicketType{}, result.Error
	}

	return ticketType, nil
}

func (d *TicketDAO) FindTypesByEventID(ctx context.Context, eventID uint) ([]TicketType, error) {
	var ticketTypes []TicketType

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at").
		Find(&ticketTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return ticketTypes, nil
}

func (d *TicketDAO) CountValidByTypeAndBuyer(ctx context.Context, ticketTypeID, buyerID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("ticket_type_id = ? AND buyer_id = ? AND is_valid = ?", ticketTypeID, buyerID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// InsertPurchase claims one unit of inventory with a guarded increment
// (sold_count < quantity) and inserts the ticket in the same
// transaction. Concurrent purchases near the boundary cannot oversell:
// the loser's guarded update hits zero rows and the whole transaction
// rolls back with ErrTicketsSoldOut.
func (d *TicketDAO) InsertPurchase(ctx context.Context, ticket Ticket) (Ticket, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&TicketType{}).
			Where("id = ? AND is_active = ? AND sold_count < quantity", ticket.TicketTypeID, true).
			Updates(map[string]interface{}{
				"sold_count": gorm.Expr("sold_count + 1"),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTicketsSoldOut
		}

		return tx.Create(&ticket).Error
	})
	if err != nil {
		return Ticket{}, err
	}

	return ticket, nil
}

func (d *TicketDAO) FindByBuyerID(ctx context.Context, buyerID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("buyer_id = ? AND is_valid = ?", buyerID, true).
		Order("purchase_date").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}
