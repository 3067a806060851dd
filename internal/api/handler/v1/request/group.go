package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gatherly/gatherly-api/internal/domain"
)

type CreateGroupRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Icon              string `json:"icon,omitempty"`
	CoverPhoto        string `json:"cover_photo,omitempty"`
	Type              string `json:"type"`
	AllowMemberPosts  *bool  `json:"allow_member_posts,omitempty"`
	AllowMemberEvents *bool  `json:"allow_member_events,omitempty"`
	AdminIDs          []uint `json:"admin_ids,omitempty"`
	MemberIDs         []uint `json:"member_ids,omitempty"`
}

func (req *CreateGroupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Type, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.GroupType(req.Type).Valid() {
		return errInvalidGroupType
	}

	return nil
}

func (req *CreateGroupRequest) ToGroup(creatorID uint) domain.Group {
	group := domain.Group{
		Name:              req.Name,
		Description:       req.Description,
		Icon:              req.Icon,
		CoverPhoto:        req.CoverPhoto,
		Type:              domain.GroupType(req.Type),
		AllowMemberPosts:  true,
		AllowMemberEvents: true,
		CreatorID:         creatorID,
		AdminIDs:          req.AdminIDs,
		MemberIDs:         req.MemberIDs,
	}
	if req.AllowMemberPosts != nil {
		group.AllowMemberPosts = *req.AllowMemberPosts
	}
	if req.AllowMemberEvents != nil {
		group.AllowMemberEvents = *req.AllowMemberEvents
	}

	return group
}

type UpdateGroupRequest struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	Icon              *string `json:"icon,omitempty"`
	CoverPhoto        *string `json:"cover_photo,omitempty"`
	Type              *string `json:"type,omitempty"`
	AllowMemberPosts  *bool   `json:"allow_member_posts,omitempty"`
	AllowMemberEvents *bool   `json:"allow_member_events,omitempty"`
}

func (req *UpdateGroupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	if req.Type != nil && !domain.GroupType(*req.Type).Valid() {
		return errInvalidGroupType
	}

	return nil
}

func (req *UpdateGroupRequest) ToUpdate() domain.GroupUpdate {
	update := domain.GroupUpdate{
		Name:              req.Name,
		Description:       req.Description,
		Icon:              req.Icon,
		CoverPhoto:        req.CoverPhoto,
		AllowMemberPosts:  req.AllowMemberPosts,
		AllowMemberEvents: req.AllowMemberEvents,
	}
	if req.Type != nil {
		groupType := domain.GroupType(*req.Type)
		update.Type = &groupType
	}

	return update
}
