package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrVoteNotFound     = errors.New("vote not found")
)

type Poll struct {
	ID uint `gorm:"primaryKey"`

	EventID            uint   `gorm:"not null;index"`
	CreatorID          uint   `gorm:"not null"`
	Title              string `gorm:"not null"`
	Description        string
	IsAnonymous        bool `gorm:"not null;default:false"`
	AllowMultipleVotes bool `gorm:"not null;default:false"`
	TotalResponses     int  `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Questions []Question `gorm:"foreignKey:PollID"`
}

type Question struct {
	ID uint `gorm:"primaryKey"`

	PollID uint   `gorm:"not null;index"`
	Text   string `gorm:"not null"`

	Answers []Answer `gorm:"foreignKey:QuestionID"`
}

type Answer struct {
	ID uint `gorm:"primaryKey"`

	QuestionID    uint   `gorm:"not null;index"`
	Text          string `gorm:"not null"`
	ResponseCount int    `gorm:"not null;default:0"`
}

type Vote struct {
	ID uint `gorm:"primaryKey"`

	PollID     uint   `gorm:"not null;index"`
	QuestionID uint   `gorm:"not null"`
	UserID     uint   `gorm:"not null;index"`
	Answer     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type PollDAO struct {
	db *gorm.DB
}

func NewPollDAO(db *gorm.DB) *PollDAO {
	return &PollDAO{
		db: db,
	}
}

// Insert stores the poll with its question and answer rows in one
// transaction. Answer rows start at zero responses.
func (d *PollDAO) Insert(ctx context.Context, poll Poll) (Poll, error) {
	poll.IsActive = true
	poll.TotalResponses = 0

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&poll).Error
	})
	if err != nil {
		return Poll{}, err
	}

	return d.FindByID(ctx, poll.ID)
}

func (d *PollDAO) FindByID(ctx context.Context, id uint) (Poll, error) {
	var poll Poll

	result := d.db.WithContext(ctx).
		Preload("Questions.Answers").
		Preload("Questions").
		First(&poll, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Poll{}, ErrPollNotFound
		}

		return Poll{}, result.Error
	}

	return poll, nil
}

func (d *PollDAO) FindByEventID(ctx context.Context, eventID uint) ([]Poll, error) {
	var polls []Poll

	result := d.db.WithContext(ctx).
		Preload("Questions.Answers").
		Preload("Questions").
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at").
		Find(&polls)
	if result.Error != nil {
		return nil, result.Error
	}

	return polls, nil
}

func (d *PollDAO) FindVote(ctx context.Context, pollID, userID uint) (Vote, error) {
	var vote Vote

	result := d.db.WithContext(ctx).
		First(&vote, "poll_id = ? AND user_id = ?", pollID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Vote{}, ErrVoteNotFound
		}

		return Vote{}, result.Error
	}

	return vote, nil
}

// InsertVote records the vote and bumps the chosen answer's counter and
// the poll's total in one transaction.
func (d *PollDAO) InsertVote(ctx context.Context, vote Vote) (Vote, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		err := tx.Model(&Answer{}).
			Where("question_id = ? AND text = ?", vote.QuestionID, vote.Answer).
			Update("response_count", gorm.Expr("response_count + 1")).Error
		if err != nil {
			return err
		}

		return tx.Model(&Poll{}).
			Where("id = ?", vote.PollID).
			Updates(map[string]interface{}{
				"total_responses": gorm.Expr("total_responses + 1"),
				"updated_at":      time.Now(),
			}).Error
	})
	if err != nil {
		return Vote{}, err
	}

	return vote, nil
}
