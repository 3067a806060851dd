package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gatherly/gatherly-api/internal/domain"
)

var (
	errInvalidPrivacy   = errors.New("privacy must be public or private")
	errEndBeforeStart   = errors.New("end_date must not precede start_date")
	errInvalidGroupType = errors.New("type must be public, private or secret")
)

type CreateEventRequest struct {
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Location     string    `json:"location"`
	CoverPhoto   string    `json:"cover_photo,omitempty"`
	Privacy      string    `json:"privacy"`
	GroupID      *uint     `json:"group_id,omitempty"`
	AutoInvite   bool      `json:"auto_invite,omitempty"`
	OrganizerIDs []uint    `json:"organizers,omitempty"`
	MemberIDs    []uint    `json:"members,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Privacy, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.EventPrivacy(req.Privacy).Valid() {
		return errInvalidPrivacy
	}
	if req.EndDate.Before(req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}

func (req *CreateEventRequest) ToEvent(creatorID uint) domain.Event {
	return domain.Event{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Location:     req.Location,
		CoverPhoto:   req.CoverPhoto,
		Privacy:      domain.EventPrivacy(req.Privacy),
		GroupID:      req.GroupID,
		CreatorID:    creatorID,
		OrganizerIDs: req.OrganizerIDs,
		MemberIDs:    req.MemberIDs,
	}
}

// UpdateEventRequest is the partial update body; it also backs the
// second-step configure endpoint.
type UpdateEventRequest struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Location     *string    `json:"location,omitempty"`
	CoverPhoto   *string    `json:"cover_photo,omitempty"`
	Privacy      *string    `json:"privacy,omitempty"`
	OrganizerIDs []uint     `json:"organizers,omitempty"`
	MemberIDs    []uint     `json:"members,omitempty"`
}

func (req *UpdateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.NilOrNotEmpty),
	)
	if err != nil {
		return err
	}

	if req.Privacy != nil && !domain.EventPrivacy(*req.Privacy).Valid() {
		return errInvalidPrivacy
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}

func (req *UpdateEventRequest) ToUpdate() domain.EventUpdate {
	update := domain.EventUpdate{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Location:     req.Location,
		CoverPhoto:   req.CoverPhoto,
		OrganizerIDs: req.OrganizerIDs,
		MemberIDs:    req.MemberIDs,
	}
	if req.Privacy != nil {
		privacy := domain.EventPrivacy(*req.Privacy)
		update.Privacy = &privacy
	}

	return update
}
