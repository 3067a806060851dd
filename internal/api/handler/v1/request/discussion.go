package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gatherly/gatherly-api/internal/domain"
)

var errInvalidDiscussionType = errors.New("discussion_type must be group or event")

type CreateDiscussionRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DiscussionType string `json:"discussion_type"`
	LinkedID       uint   `json:"linked_id"`
	IsPinned       bool   `json:"is_pinned,omitempty"`
}

func (req *CreateDiscussionRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.DiscussionType, validation.Required),
		validation.Field(&req.LinkedID, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.DiscussionType(req.DiscussionType).Valid() {
		return errInvalidDiscussionType
	}

	return nil
}

func (req *CreateDiscussionRequest) ToDiscussion(creatorID uint) domain.Discussion {
	return domain.Discussion{
		Title:          req.Title,
		Description:    req.Description,
		DiscussionType: domain.DiscussionType(req.DiscussionType),
		LinkedID:       req.LinkedID,
		CreatorID:      creatorID,
		IsPinned:       req.IsPinned,
	}
}

type PostMessageRequest struct {
	Content         string `json:"content"`
	ParentMessageID *uint  `json:"parent_message_id,omitempty"`
}

func (req *PostMessageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 5000)),
	)
}
