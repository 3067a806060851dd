package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrAlbumNotFound  = errors.New("album not found")
	ErrAlbumNameTaken = errors.New("album name already used for this event")
	ErrPhotoNotFound  = errors.New("photo not found")
)

type Album struct {
	ID uint `gorm:"primaryKey"`

	EventID     uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	CreatorID   uint `gorm:"not null"`
	PhotoCount  int  `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Photo struct {
	ID uint `gorm:"primaryKey"`

	AlbumID      uint   `gorm:"not null;index"`
	EventID      uint   `gorm:"not null;index"`
	AuthorID     uint   `gorm:"not null"`
	Caption      string
	ImageURL     string `gorm:"not null"`
	LikeCount    int    `gorm:"not null;default:0"`
	CommentCount int    `gorm:"not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Comment struct {
	ID uint `gorm:"primaryKey"`

	PhotoID  uint   `gorm:"not null;index"`
	AuthorID uint   `gorm:"not null"`
	Content  string `gorm:"not null"`
	IsEdited bool   `gorm:"not null;default:false"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AlbumDAO struct {
	db *gorm.DB
}

func NewAlbumDAO(db *gorm.DB) *AlbumDAO {
	return &AlbumDAO{
		db: db,
	}
}

// Insert rejects a second active album with the same name on the event.
// The name check and the insert share a transaction.
func (d *AlbumDAO) Insert(ctx context.Context, album Album) (Album, error) {
	album.IsActive = true
	album.PhotoCount = 0

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Album{}).
			Where("event_id = ? AND name = ? AND is_active = ?", album.EventID, album.Name, true).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlbumNameTaken
		}

		return tx.Create(&album).Error
	})
	if err != nil {
		return Album{}, err
	}

	return album, nil
}

func (d *AlbumDAO) FindByID(ctx context.Context, id uint) (Album, error) {
	var album Album

	result := d.db.WithContext(ctx).First(&album, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Album{}, ErrAlbumNotFound
		}

		return Album{}, result.Error
	}

	return album, nil
}

func (d *AlbumDAO) FindByEventID(ctx context.Context, eventID uint) ([]Album, error) {
	var albums []Album

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at").
		Find(&albums)
	if result.Error != nil {
		return nil, result.Error
	}

	return albums, nil
}

// InsertPhoto stores the photo and bumps the album's photo count in one
// transaction.
func (d *AlbumDAO) InsertPhoto(ctx context.Context, photo Photo) (Photo, error) {
	photo.IsActive = true

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}

		return tx.Model(&Album{}).
			Where("id = ?", photo.AlbumID).
			Updates(map[string]interface{}{
				"photo_count": gorm.Expr("photo_count + 1"),
				"updated_at":  time.Now(),
			}).Error
	})
	if err != nil {
		return Photo{}, err
	}

	return photo, nil
}

func (d *AlbumDAO) FindPhotoByID(ctx context.Context, id uint) (Photo, error) {
	var photo Photo

	result := d.db.WithContext(ctx).First(&photo, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Photo{}, ErrPhotoNotFound
		}

		return Photo{}, result.Error
	}

	return photo, nil
}

// InsertComment stores the comment and bumps the photo's comment count
// in one transaction.
func (d *AlbumDAO) InsertComment(ctx context.Context, comment Comment) (Comment, error) {
	comment.IsActive = true

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		return tx.Model(&Photo{}).
			Where("id = ?", comment.PhotoID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return Comment{}, err
	}

	return comment, nil
}
