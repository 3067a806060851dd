package domain

import "time"

type EventPrivacy string

const (
	EventPrivacyPublic  EventPrivacy = "public"
	EventPrivacyPrivate EventPrivacy = "private"
)

func (p EventPrivacy) Valid() bool {
	switch p {
	case EventPrivacyPublic, EventPrivacyPrivate:
		return true
	}

	return false
}

type Event struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	Location     string       `json:"location"`
	CoverPhoto   string       `json:"cover_photo,omitempty"`
	Privacy      EventPrivacy `json:"privacy"`
	GroupID      *uint        `json:"group_id,omitempty"`
	CreatorID    uint         `json:"creator_id"`
	OrganizerIDs []uint       `json:"organizers"`
	MemberIDs    []uint       `json:"members"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// IsOrganizer reports whether userID created the event or appears in
// its organizer list.
func (e *Event) IsOrganizer(userID uint) bool {
	if e.CreatorID == userID {
		return true
	}
	for _, id := range e.OrganizerIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func (e *Event) IsMember(userID uint) bool {
	for _, id := range e.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// IsParticipant is the baseline access right: member, organizer or creator.
func (e *Event) IsParticipant(userID uint) bool {
	return e.IsOrganizer(userID) || e.IsMember(userID)
}

// VisibleTo applies the privacy rule for read access.
func (e *Event) VisibleTo(userID uint) bool {
	switch e.Privacy {
	case EventPrivacyPublic:
		return true
	case EventPrivacyPrivate:
		return e.IsParticipant(userID)
	}

	return false
}

// EventDetail is the expanded read view with resolved participants.
type EventDetail struct {
	Event
	OrganizerDetails []UserSummary `json:"organizer_details"`
	MemberDetails    []UserSummary `json:"member_details"`
	ParticipantCount int           `json:"participant_count"`
}

// EventUpdate carries the optional fields of a partial event update.
type EventUpdate struct {
	Name         *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     *string
	CoverPhoto   *string
	Privacy      *EventPrivacy
	OrganizerIDs []uint
	MemberIDs    []uint
}
