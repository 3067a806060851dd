package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrGroupNotFound = repository.ErrGroupNotFound

	ErrNotGroupAdmin         = errors.New("only group admins can perform this action")
	ErrNotGroupMember        = errors.New("user is not a member of this group")
	ErrSecretGroup           = errors.New("this group is secret")
	ErrCannotJoinSecretGroup = errors.New("cannot join a secret group without an invitation")
	ErrAlreadyGroupMember    = errors.New("user is already a member of this group")
	ErrAlreadyGroupAdmin     = errors.New("user is already an admin of this group")
	ErrSoleAdmin             = errors.New("the sole admin cannot leave the group")
)

type GroupRepository interface {
	Create(ctx context.Context, group domain.Group) (domain.Group, error)
	FindByID(ctx context.Context, id uint) (domain.Group, error)
	FindAll(ctx context.Context, types []domain.GroupType, skip, limit int) ([]domain.Group, error)
	FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]domain.Group, error)
	Update(ctx context.Context, id uint, update domain.GroupUpdate) (domain.Group, error)
	Deactivate(ctx context.Context, id uint) error
	AddMember(ctx context.Context, groupID, userID uint) error
	AddAdmin(ctx context.Context, groupID, userID uint) error
	RemoveUser(ctx context.Context, groupID, userID uint) error
}

type GroupUserRepository interface {
	FindSummaries(ctx context.Context, ids []uint) ([]domain.UserSummary, error)
}

type GroupEventRepository interface {
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}

type GroupService struct {
	repo      GroupRepository
	userRepo  GroupUserRepository
	eventRepo GroupEventRepository
}

func NewGroupService(repo GroupRepository, userRepo GroupUserRepository, eventRepo GroupEventRepository) *GroupService {
	return &GroupService{
		repo:      repo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

// CreateGroup stores the group with the creator forced into the admin list.
func (s *GroupService) CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error) {
	if !containsID(group.AdminIDs, group.CreatorID) {
		group.AdminIDs = append(group.AdminIDs, group.CreatorID)
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetGroup returns the detail view. Secret groups answer 403-style for
// outsiders rather than revealing their existence via a 404.
func (s *GroupService) GetGroup(ctx context.Context, callerID, id uint) (domain.GroupDetail, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.VisibleTo(callerID) {
		return domain.GroupDetail{}, ErrSecretGroup
	}

	admins, err := s.userRepo.FindSummaries(ctx, group.AdminIDs)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("s.userRepo.FindSummaries -> %w", err)
	}

	members, err := s.userRepo.FindSummaries(ctx, group.MemberIDs)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("s.userRepo.FindSummaries -> %w", err)
	}

	eventCount, err := s.eventRepo.CountByGroupID(ctx, id)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("s.eventRepo.CountByGroupID -> %w", err)
	}

	return domain.GroupDetail{
		Group:         group,
		AdminDetails:  admins,
		MemberDetails: members,
		MemberCount:   len(group.MemberIDs),
		EventCount:    int(eventCount),
	}, nil
}

// ListGroups lists groups of the requested type. Without a filter,
// secret groups stay hidden.
func (s *GroupService) ListGroups(ctx context.Context, groupType *domain.GroupType, skip, limit int) ([]domain.Group, error) {
	types := []domain.GroupType{domain.GroupTypePublic, domain.GroupTypePrivate}
	if groupType != nil {
		types = []domain.GroupType{*groupType}
	}

	groups, err := s.repo.FindAll(ctx, types, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return groups, nil
}

func (s *GroupService) ListUserGroups(ctx context.Context, userID uint, skip, limit int) ([]domain.Group, error) {
	groups, err := s.repo.FindByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return groups, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, callerID, id uint, update domain.GroupUpdate) (domain.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.IsAdmin(callerID) {
		return domain.Group{}, ErrNotGroupAdmin
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, callerID, id uint) error {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.IsAdmin(callerID) {
		return ErrNotGroupAdmin
	}

	if err = s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return nil
}

// JoinGroup self-enrolls the caller. Secret groups never accept
// self-joins.
func (s *GroupService) JoinGroup(ctx context.Context, callerID, id uint) (domain.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if group.Type == domain.GroupTypeSecret {
		return domain.Group{}, ErrCannotJoinSecretGroup
	}
	if group.IsAdmin(callerID) || group.IsMember(callerID) {
		return domain.Group{}, ErrAlreadyGroupMember
	}

	if err = s.repo.AddMember(ctx, id, callerID); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.AddMember -> %w", err)
	}

	joined, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return joined, nil
}

// LeaveGroup removes the caller from both role lists. The last admin
// stays put so the group is never orphaned.
func (s *GroupService) LeaveGroup(ctx context.Context, callerID, id uint) error {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.IsAdmin(callerID) && !group.IsMember(callerID) {
		return ErrNotGroupMember
	}
	if group.IsAdmin(callerID) && len(group.AdminIDs) <= 1 {
		return ErrSoleAdmin
	}

	if err = s.repo.RemoveUser(ctx, id, callerID); err != nil {
		return fmt.Errorf("s.repo.RemoveUser -> %w", err)
	}

	return nil
}

// PromoteUser raises a member to admin. The target keeps their member
// row; admin status is additive.
func (s *GroupService) PromoteUser(ctx context.Context, callerID, id, userID uint) (domain.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !group.IsAdmin(callerID) {
		return domain.Group{}, ErrNotGroupAdmin
	}
	if !group.IsMember(userID) {
		return domain.Group{}, ErrNotGroupMember
	}
	if group.IsAdmin(userID) {
		return domain.Group{}, ErrAlreadyGroupAdmin
	}

	if err = s.repo.AddAdmin(ctx, id, userID); err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.AddAdmin -> %w", err)
	}

	promoted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return promoted, nil
}
