package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakeGroupRepo struct {
	createFunc     func(ctx context.Context, group domain.Group) (domain.Group, error)
	findByIDFunc   func(ctx context.Context, id uint) (domain.Group, error)
	addMemberFunc  func(ctx context.Context, groupID, userID uint) error
	addAdminFunc   func(ctx context.Context, groupID, userID uint) error
	removeUserFunc func(ctx context.Context, groupID, userID uint) error
}

func (f *fakeGroupRepo) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, group)
	}
	group.ID = 1
	return group, nil
}

func (f *fakeGroupRepo) FindByID(ctx context.Context, id uint) (domain.Group, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(ctx, id)
	}
	return domain.Group{}, repository.ErrGroupNotFound
}

func (f *fakeGroupRepo) FindAll(_ context.Context, _ []domain.GroupType, _, _ int) ([]domain.Group, error) {
	return nil, nil
}

func (f *fakeGroupRepo) FindByUserID(_ context.Context, _ uint, _, _ int) ([]domain.Group, error) {
	return nil, nil
}

func (f *fakeGroupRepo) Update(_ context.Context, id uint, _ domain.GroupUpdate) (domain.Group, error) {
	return domain.Group{ID: id}, nil
}

func (f *fakeGroupRepo) Deactivate(_ context.Context, _ uint) error {
	return nil
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, groupID, userID uint) error {
	if f.addMemberFunc != nil {
		return f.addMemberFunc(ctx, groupID, userID)
	}
	return nil
}

func (f *fakeGroupRepo) AddAdmin(ctx context.Context, groupID, userID uint) error {
	if f.addAdminFunc != nil {
		return f.addAdminFunc(ctx, groupID, userID)
	}
	return nil
}

func (f *fakeGroupRepo) RemoveUser(ctx context.Context, groupID, userID uint) error {
	if f.removeUserFunc != nil {
		return f.removeUserFunc(ctx, groupID, userID)
	}
	return nil
}

type fakeGroupUserRepo struct{}

func (f *fakeGroupUserRepo) FindSummaries(_ context.Context, ids []uint) ([]domain.UserSummary, error) {
	summaries := make([]domain.UserSummary, 0, len(ids))
	for _, id := range ids {
		summaries = append(summaries, domain.UserSummary{ID: id})
	}
	return summaries, nil
}

type fakeGroupEventRepo struct {
	count int64
}

func (f *fakeGroupEventRepo) CountByGroupID(_ context.Context, _ uint) (int64, error) {
	return f.count, nil
}

func newGroupService(repo *fakeGroupRepo) *GroupService {
	return NewGroupService(repo, &fakeGroupUserRepo{}, &fakeGroupEventRepo{count: 2})
}

func TestCreateGroup_CreatorBecomesAdmin(t *testing.T) {
	var stored domain.Group
	repo := &fakeGroupRepo{
		createFunc: func(_ context.Context, group domain.Group) (domain.Group, error) {
			stored = group
			return group, nil
		},
	}
	svc := newGroupService(repo)

	_, err := svc.CreateGroup(context.Background(), domain.Group{
		Name:      "Hiking club",
		Type:      domain.GroupTypePublic,
		CreatorID: 4,
	})
	require.NoError(t, err)
	assert.Contains(t, stored.AdminIDs, uint(4))
}

func TestGetGroup_SecretHiddenFromOutsiders(t *testing.T) {
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{
				ID:        id,
				Type:      domain.GroupTypeSecret,
				CreatorID: 1,
				AdminIDs:  []uint{1},
				MemberIDs: []uint{2},
			}, nil
		},
	}
	svc := newGroupService(repo)

	_, err := svc.GetGroup(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrSecretGroup)

	detail, err := svc.GetGroup(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.MemberCount)
	assert.Equal(t, 2, detail.EventCount)
}

func TestJoinGroup_SecretRejected(t *testing.T) {
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypeSecret, CreatorID: 1}, nil
		},
	}
	svc := newGroupService(repo)

	_, err := svc.JoinGroup(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrCannotJoinSecretGroup)
}

func TestJoinGroup_AlreadyMember(t *testing.T) {
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypePublic, CreatorID: 1, MemberIDs: []uint{5}}, nil
		},
	}
	svc := newGroupService(repo)

	_, err := svc.JoinGroup(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrAlreadyGroupMember)
}

func TestLeaveGroup_SoleAdminRejected(t *testing.T) {
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypePublic, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{2}}, nil
		},
	}
	svc := newGroupService(repo)

	err := svc.LeaveGroup(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSoleAdmin)
}

func TestLeaveGroup_MemberLeaves(t *testing.T) {
	removed := uint(0)
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypePublic, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{2}}, nil
		},
		removeUserFunc: func(_ context.Context, _, userID uint) error {
			removed = userID
			return nil
		},
	}
	svc := newGroupService(repo)

	err := svc.LeaveGroup(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), removed)
}

func TestLeaveGroup_NotMember(t *testing.T) {
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypePublic, CreatorID: 1, AdminIDs: []uint{1}}, nil
		},
	}
	svc := newGroupService(repo)

	err := svc.LeaveGroup(context.Background(), 9, 1)
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestPromoteUser(t *testing.T) {
	group := domain.Group{
		ID:        1,
		Type:      domain.GroupTypePublic,
		CreatorID: 1,
		AdminIDs:  []uint{1, 3},
		MemberIDs: []uint{2, 3},
	}
	repo := &fakeGroupRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Group, error) {
			return group, nil
		},
	}
	svc := newGroupService(repo)

	_, err := svc.PromoteUser(context.Background(), 2, 1, 2)
	assert.ErrorIs(t, err, ErrNotGroupAdmin, "non-admin cannot promote")

	_, err = svc.PromoteUser(context.Background(), 1, 1, 9)
	assert.ErrorIs(t, err, ErrNotGroupMember, "target must be a member")

	_, err = svc.PromoteUser(context.Background(), 1, 1, 3)
	assert.ErrorIs(t, err, ErrAlreadyGroupAdmin)

	_, err = svc.PromoteUser(context.Background(), 1, 1, 2)
	assert.NoError(t, err)
}
