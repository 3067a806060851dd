package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrShoppingItemNameTaken = errors.New("shopping item name already used for this event")

type ShoppingItem struct {
	ID uint `gorm:"primaryKey"`

	EventID     uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null"`
	Name        string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Unit        string
	ArrivalTime string
	Notes       string
	IsBrought   bool `gorm:"not null;default:false"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ShoppingDAO struct {
	db *gorm.DB
}

func NewShoppingDAO(db *gorm.DB) *ShoppingDAO {
	return &ShoppingDAO{
		db: db,
	}
}

// Insert rejects a second active item with the same name on the event.
func (d *ShoppingDAO) Insert(ctx context.Context, item ShoppingItem) (ShoppingItem, error) {
	item.IsActive = true
	item.IsBrought = false

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ShoppingItem{}).
			Where("event_id = ? AND name = ? AND is_active = ?", item.EventID, item.Name, true).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrShoppingItemNameTaken
		}

		return tx.Create(&item).Error
	})
	if err != nil {
		return ShoppingItem{}, err
	}

	return item, nil
}

func (d *ShoppingDAO) FindByEventID(ctx context.Context, eventID uint) ([]ShoppingItem, error) {
	var items []ShoppingItem

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}
