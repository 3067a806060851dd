package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var ErrGroupNotFound = dao.ErrGroupNotFound

type GroupDAO interface {
	Insert(ctx context.Context, group dao.Group, adminIDs []uint) (dao.Group, error)
	FindByID(ctx context.Context, id uint) (dao.Group, error)
	FindAll(ctx context.Context, types []string, skip, limit int) ([]dao.Group, error)
	FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]dao.Group, error)
	Update(ctx context.Context, id uint, values map[string]interface{}) (dao.Group, error)
	Deactivate(ctx context.Context, id uint) error
	AddMember(ctx context.Context, groupID, userID uint) error
	AddAdmin(ctx context.Context, groupID, userID uint) error
	RemoveUser(ctx context.Context, groupID, userID uint) error
}

type GroupRepository struct {
	dao GroupDAO
}

func NewGroupRepository(dao GroupDAO) *GroupRepository {
	return &GroupRepository{
		dao: dao,
	}
}

func (r *GroupRepository) domainToDao(g domain.Group) dao.Group {
	return dao.Group{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		Icon:              g.Icon,
		CoverPhoto:        g.CoverPhoto,
		Type:              string(g.Type),
		AllowMemberPosts:  g.AllowMemberPosts,
		AllowMemberEvents: g.AllowMemberEvents,
		CreatorID:         g.CreatorID,
		IsActive:          g.IsActive,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (r *GroupRepository) daoToDomain(g dao.Group) domain.Group {
	return domain.Group{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		Icon:              g.Icon,
		CoverPhoto:        g.CoverPhoto,
		Type:              domain.GroupType(g.Type),
		AllowMemberPosts:  g.AllowMemberPosts,
		AllowMemberEvents: g.AllowMemberEvents,
		CreatorID:         g.CreatorID,
		AdminIDs:          g.AdminIDs,
		MemberIDs:         g.MemberIDs,
		IsActive:          g.IsActive,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (r *GroupRepository) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(group), group.AdminIDs)
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (domain.Group, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GroupRepository) FindAll(ctx context.Context, types []domain.GroupType, skip, limit int) ([]domain.Group, error) {
	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	found, err := r.dao.FindAll(ctx, typeNames, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	groups := make([]domain.Group, 0, len(found))
	for _, g := range found {
		groups = append(groups, r.daoToDomain(g))
	}

	return groups, nil
}

func (r *GroupRepository) FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]domain.Group, error) {
	found, err := r.dao.FindByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	groups := make([]domain.Group, 0, len(found))
	for _, g := range found {
		groups = append(groups, r.daoToDomain(g))
	}

	return groups, nil
}

func (r *GroupRepository) Update(ctx context.Context, id uint, update domain.GroupUpdate) (domain.Group, error) {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Icon != nil {
		values["icon"] = *update.Icon
	}
	if update.CoverPhoto != nil {
		values["cover_photo"] = *update.CoverPhoto
	}
	if update.Type != nil {
		values["type"] = string(*update.Type)
	}
	if update.AllowMemberPosts != nil {
		values["allow_member_posts"] = *update.AllowMemberPosts
	}
	if update.AllowMemberEvents != nil {
		values["allow_member_events"] = *update.AllowMemberEvents
	}

	updated, err := r.dao.Update(ctx, id, values)
	if err != nil {
		return domain.Group{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GroupRepository) Deactivate(ctx context.Context, id uint) error {
	if err := r.dao.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	if err := r.dao.AddMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("r.dao.AddMember -> %w", err)
	}

	return nil
}

func (r *GroupRepository) AddAdmin(ctx context.Context, groupID, userID uint) error {
	if err := r.dao.AddAdmin(ctx, groupID, userID); err != nil {
		return fmt.Errorf("r.dao.AddAdmin -> %w", err)
	}

	return nil
}

func (r *GroupRepository) RemoveUser(ctx context.Context, groupID, userID uint) error {
	if err := r.dao.RemoveUser(ctx, groupID, userID); err != nil {
		return fmt.Errorf("r.dao.RemoveUser -> %w", err)
	}

	return nil
}
