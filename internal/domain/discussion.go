package domain

import "time"

// DiscussionType tags which kind of resource a discussion hangs off.
// Discussions carry no privacy of their own; access is delegated to the
// linked group or event.
type DiscussionType string

const (
	DiscussionTypeGroup DiscussionType = "group"
	DiscussionTypeEvent DiscussionType = "event"
)

func (t DiscussionType) Valid() bool {
	switch t {
	case DiscussionTypeGroup, DiscussionTypeEvent:
		return true
	}

	return false
}

type Discussion struct {
	ID             uint           `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	DiscussionType DiscussionType `json:"discussion_type"`
	LinkedID       uint           `json:"linked_id"`
	CreatorID      uint           `json:"creator_id"`
	IsPinned       bool           `json:"is_pinned"`
	MessageCount   int            `json:"message_count"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type Message struct {
	ID              uint      `json:"id"`
	DiscussionID    uint      `json:"discussion_id"`
	ParentMessageID *uint     `json:"parent_message_id,omitempty"`
	AuthorID        uint      `json:"author_id"`
	Content         string    `json:"content"`
	IsEdited        bool      `json:"is_edited"`
	ReplyCount      int       `json:"reply_count"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DiscussionDetail struct {
	Discussion
	LastMessages  []Message    `json:"last_messages"`
	AuthorDetails *UserSummary `json:"author_details,omitempty"`
}
