package domain

import "time"

type Album struct {
	ID          uint      `json:"id"`
	EventID     uint      `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatorID   uint      `json:"creator_id"`
	PhotoCount  int       `json:"photo_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Photo struct {
	ID           uint      `json:"id"`
	AlbumID      uint      `json:"album_id"`
	EventID      uint      `json:"event_id"`
	AuthorID     uint      `json:"author_id"`
	Caption      string    `json:"caption,omitempty"`
	ImageURL     string    `json:"image_url"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Comment struct {
	ID        uint      `json:"id"`
	PhotoID   uint      `json:"photo_id"`
	AuthorID  uint      `json:"author_id"`
	Content   string    `json:"content"`
	IsEdited  bool      `json:"is_edited"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
