package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrDiscussionNotFound = errors.New("discussion not found")
	ErrMessageNotFound    = errors.New("message not found")
)

type Discussion struct {
	ID uint `gorm:"primaryKey"`

	Title          string `gorm:"not null"`
	Description    string
	DiscussionType string `gorm:"not null;index:idx_discussions_link"`
	LinkedID       uint   `gorm:"not null;index:idx_discussions_link"`
	CreatorID      uint   `gorm:"not null"`
	IsPinned       bool   `gorm:"not null;default:false"`
	MessageCount   int    `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Message struct {
	ID uint `gorm:"primaryKey"`

	DiscussionID    uint  `gorm:"not null;index"`
	ParentMessageID *uint `gorm:"index"`
	AuthorID        uint  `gorm:"not null"`
	Content         string `gorm:"not null"`
	IsEdited        bool   `gorm:"not null;default:false"`
	ReplyCount      int    `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DiscussionDAO struct {
	db *gorm.DB
}

func NewDiscussionDAO(db *gorm.DB) *DiscussionDAO {
	return &DiscussionDAO{
		db: db,
	}
}

func (d *DiscussionDAO) Insert(ctx context.Context, discussion Discussion) (Discussion, error) {
	discussion.IsActive = true
	discussion.MessageCount = 0

	result := d.db.WithContext(ctx).Create(&discussion)
	if result.Error != nil {
		return Discussion{}, result.Error
	}

	return discussion, nil
}

func (d *DiscussionDAO) FindByID(ctx context.Context, id uint) (Discussion, error) {
	var discussion Discussion

	result := d.db.WithContext(ctx).First(&discussion, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discussion{}, ErrDiscussionNotFound
		}

		return Discussion{}, result.Error
	}

	return discussion, nil
}

// FindAll lists active discussions, optionally filtered to one linked
// group/event, pinned threads first then most recently touched.
func (d *DiscussionDAO) FindAll(ctx context.Context, discussionType string, linkedID uint, skip, limit int) ([]Discussion, error) {
	query := d.db.WithContext(ctx).Where("is_active = ?", true)

	if discussionType != "" && linkedID != 0 {
		query = query.Where("discussion_type = ? AND linked_id = ?", discussionType, linkedID)
	}

	var discussions []Discussion
	result := query.
		Order("is_pinned DESC").
		Order("updated_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&discussions)
	if result.Error != nil {
		return nil, result.Error
	}

	return discussions, nil
}

func (d *DiscussionDAO) FindMessageByID(ctx context.Context, id uint) (Message, error) {
	var message Message

	result := d.db.WithContext(ctx).First(&message, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Message{}, ErrMessageNotFound
		}

		return Message{}, result.Error
	}

	return message, nil
}

func (d *DiscussionDAO) FindLastMessages(ctx context.Context, discussionID uint, limit int) ([]Message, error) {
	var messages []Message

	result := d.db.WithContext(ctx).
		Where("discussion_id = ? AND is_active = ?", discussionID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// InsertMessage stores the message and bumps the discussion's message
// count (and the parent's reply count for replies) in one transaction,
// so the counters can never drift from the inserted rows.
func (d *DiscussionDAO) InsertMessage(ctx context.Context, message Message) (Message, error) {
	message.IsActive = true
	message.ReplyCount = 0

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		err := tx.Model(&Discussion{}).
			Where("id = ?", message.DiscussionID).
			Updates(map[string]interface{}{
				"message_count": gorm.Expr("message_count + 1"),
				"updated_at":    time.Now(),
			}).Error
		if err != nil {
			return err
		}

		if message.ParentMessageID != nil {
			err = tx.Model(&Message{}).
				Where("id = ?", *message.ParentMessageID).
				Update("reply_count", gorm.Expr("reply_count + 1")).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Message{}, err
	}

	return message, nil
}
