package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	Description string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`
	CoverPhoto  string
	Privacy     string `gorm:"not null;default:public"`
	GroupID     *uint  `gorm:"index"`
	CreatorID   uint   `gorm:"not null;index"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	OrganizerIDs []uint `gorm:"-"`
	MemberIDs    []uint `gorm:"-"`
}

type EventOrganizer struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;uniqueIndex:uni_event_organizer"`
	UserID  uint `gorm:"not null;uniqueIndex:uni_event_organizer"`
}

type EventMember struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;uniqueIndex:uni_event_member"`
	UserID  uint `gorm:"not null;uniqueIndex:uni_event_member"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event, organizerIDs, memberIDs []uint) (Event, error) {
	event.IsActive = true

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return replaceEventRoles(tx, event.ID, organizerIDs, memberIDs)
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindByID(ctx, event.ID)
}

func replaceEventRoles(tx *gorm.DB, eventID uint, organizerIDs, memberIDs []uint) error {
	if organizerIDs != nil {
		if err := tx.Where("event_id = ?", eventID).Delete(&EventOrganizer{}).Error; err != nil {
			return err
		}
		for _, userID := range organizerIDs {
			row := EventOrganizer{EventID: eventID, UserID: userID}
			if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
	}

	if memberIDs != nil {
		if err := tx.Where("event_id = ?", eventID).Delete(&EventMember{}).Error; err != nil {
			return err
		}
		for _, userID := range memberIDs {
			row := EventMember{EventID: eventID, UserID: userID}
			if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func (d *EventDAO) loadRoles(ctx context.Context, event *Event) error {
	err := d.db.WithContext(ctx).
		Model(&EventOrganizer{}).
		Where("event_id = ?", event.ID).
		Order("user_id").
		Pluck("user_id", &event.OrganizerIDs).Error
	if err != nil {
		return err
	}

	return d.db.WithContext(ctx).
		Model(&EventMember{}).
		Where("event_id = ?", event.ID).
		Order("user_id").
		Pluck("user_id", &event.MemberIDs).Error
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	if err := d.loadRoles(ctx, &event); err != nil {
		return Event{}, err
	}

	return event, nil
}

// FindAll lists active events. With publicOnly set only public events are
// returned; otherwise public events plus those the user participates in.
func (d *EventDAO) FindAll(ctx context.Context, userID uint, publicOnly bool, skip, limit int) ([]Event, error) {
	query := d.db.WithContext(ctx).Where("is_active = ?", true)

	if publicOnly {
		query = query.Where("privacy = ?", "public")
	} else {
		query = query.Where(
			`privacy = ? OR creator_id = ?
			OR id IN (SELECT event_id FROM event_organizers WHERE user_id = ?)
			OR id IN (SELECT event_id FROM event_members WHERE user_id = ?)`,
			"public", userID, userID, userID)
	}

	var events []Event
	result := query.Order("start_date").Offset(skip).Limit(limit).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range events {
		if err := d.loadRoles(ctx, &events[i]); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// FindByUserID lists active events the user created, organizes or attends.
func (d *EventDAO) FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			`creator_id = ?
			OR id IN (SELECT event_id FROM event_organizers WHERE user_id = ?)
			OR id IN (SELECT event_id FROM event_members WHERE user_id = ?)`,
			userID, userID, userID).
		Order("start_date").
		Offset(skip).
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range events {
		if err := d.loadRoles(ctx, &events[i]); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, id uint, values map[string]interface{}, organizerIDs, memberIDs []uint) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values["updated_at"] = time.Now()

		result := tx.Model(&Event{}).
			Where("id = ? AND is_active = ?", id, true).
			Updates(values)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return replaceEventRoles(tx, id, organizerIDs, memberIDs)
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindByID(ctx, id)
}

func (d *EventDAO) Deactivate(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// AddMember inserts the membership row if absent and touches updated_at.
func (d *EventDAO) AddMember(ctx context.Context, eventID, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := EventMember{EventID: eventID, UserID: userID}
		if err := tx.Where(row).FirstOrCreate(&row).Error; err != nil {
			return err
		}

		return tx.Model(&Event{}).
			Where("id = ?", eventID).
			Update("updated_at", time.Now()).Error
	})
}

func (d *EventDAO) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("group_id = ? AND is_active = ?", groupID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
