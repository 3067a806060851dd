package domain

import "time"

type GroupType string

const (
	GroupTypePublic  GroupType = "public"
	GroupTypePrivate GroupType = "private"
	GroupTypeSecret  GroupType = "secret"
)

func (t GroupType) Valid() bool {
	switch t {
	case GroupTypePublic, GroupTypePrivate, GroupTypeSecret:
		return true
	}

	return false
}

type Group struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Icon              string    `json:"icon,omitempty"`
	CoverPhoto        string    `json:"cover_photo,omitempty"`
	Type              GroupType `json:"type"`
	AllowMemberPosts  bool      `json:"allow_member_posts"`
	AllowMemberEvents bool      `json:"allow_member_events"`
	CreatorID         uint      `json:"creator_id"`
	AdminIDs          []uint    `json:"admin_ids"`
	MemberIDs         []uint    `json:"member_ids"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (g *Group) IsAdmin(userID uint) bool {
	if g.CreatorID == userID {
		return true
	}
	for _, id := range g.AdminIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func (g *Group) IsMember(userID uint) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// VisibleTo applies the group privacy rule for read access. Private
// groups are listed but their content stays restricted to members.
func (g *Group) VisibleTo(userID uint) bool {
	switch g.Type {
	case GroupTypePublic, GroupTypePrivate:
		return true
	case GroupTypeSecret:
		return g.IsAdmin(userID) || g.IsMember(userID)
	}

	return false
}

type GroupDetail struct {
	Group
	AdminDetails  []UserSummary `json:"admin_details"`
	MemberDetails []UserSummary `json:"member_details"`
	MemberCount   int           `json:"member_count"`
	EventCount    int           `json:"event_count"`
}

type GroupUpdate struct {
	Name              *string
	Description       *string
	Icon              *string
	CoverPhoto        *string
	Type              *GroupType
	AllowMemberPosts  *bool
	AllowMemberEvents *bool
}
