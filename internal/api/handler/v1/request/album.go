package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateAlbumRequest struct {
	EventID     uint   `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (req *CreateAlbumRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (req *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 2000)),
	)
}
