package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakeDiscussionRepo struct {
	createFunc           func(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error)
	findByIDFunc         func(ctx context.Context, id uint) (domain.Discussion, error)
	findMessageByIDFunc  func(ctx context.Context, id uint) (domain.Message, error)
	findLastMessagesFunc func(ctx context.Context, discussionID uint, limit int) ([]domain.Message, error)
	createMessageFunc    func(ctx context.Context, message domain.Message) (domain.Message, error)
}

func (f *fakeDiscussionRepo) Create(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, discussion)
	}
	discussion.ID = 1
	return discussion, nil
}

func (f *fakeDiscussionRepo) FindByID(ctx context.Context, id uint) (domain.Discussion, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(ctx, id)
	}
	return domain.Discussion{}, repository.ErrDiscussionNotFound
}

func (f *fakeDiscussionRepo) FindAll(_ context.Context, _ domain.DiscussionType, _ uint, _, _ int) ([]domain.Discussion, error) {
	return nil, nil
}

func (f *fakeDiscussionRepo) FindMessageByID(ctx context.Context, id uint) (domain.Message, error) {
	if f.findMessageByIDFunc != nil {
		return f.findMessageByIDFunc(ctx, id)
	}
	return domain.Message{}, repository.ErrMessageNotFound
}

func (f *fakeDiscussionRepo) FindLastMessages(ctx context.Context, discussionID uint, limit int) ([]domain.Message, error) {
	if f.findLastMessagesFunc != nil {
		return f.findLastMessagesFunc(ctx, discussionID, limit)
	}
	return nil, nil
}

func (f *fakeDiscussionRepo) CreateMessage(ctx context.Context, message domain.Message) (domain.Message, error) {
	if f.createMessageFunc != nil {
		return f.createMessageFunc(ctx, message)
	}
	message.ID = 1
	return message, nil
}

func newDiscussionService(repo *fakeDiscussionRepo) *DiscussionService {
	eventRepo := &fakePollEventRepo{
		event: domain.Event{ID: 2, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
	}
	groupRepo := &fakeEventGroupRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Group, error) {
			return domain.Group{ID: id, Type: domain.GroupTypePrivate, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{5}}, nil
		},
	}
	return NewDiscussionService(repo, eventRepo, groupRepo, &fakeGroupUserRepo{})
}

func TestCreateDiscussion_GroupOutsiderRejected(t *testing.T) {
	svc := newDiscussionService(&fakeDiscussionRepo{})

	_, err := svc.CreateDiscussion(context.Background(), domain.Discussion{
		Title:          "Planning",
		DiscussionType: domain.DiscussionTypeGroup,
		LinkedID:       3,
		CreatorID:      9,
	})
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestCreateDiscussion_EventParticipantAllowed(t *testing.T) {
	svc := newDiscussionService(&fakeDiscussionRepo{})

	created, err := svc.CreateDiscussion(context.Background(), domain.Discussion{
		Title:          "Carpool",
		DiscussionType: domain.DiscussionTypeEvent,
		LinkedID:       2,
		CreatorID:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

func newDiscussionServiceWith(repo *fakeDiscussionRepo, event domain.Event, group domain.Group) *DiscussionService {
	eventRepo := &fakePollEventRepo{event: event}
	groupRepo := &fakeEventGroupRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Group, error) {
			return group, nil
		},
	}
	return NewDiscussionService(repo, eventRepo, groupRepo, &fakeGroupUserRepo{})
}

func TestGetDiscussion_PublicEventOpenToNonParticipants(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeEvent, LinkedID: 2, CreatorID: 1}, nil
		},
	}
	svc := newDiscussionServiceWith(repo,
		domain.Event{ID: 2, Privacy: domain.EventPrivacyPublic, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
		domain.Group{},
	)

	detail, err := svc.GetDiscussion(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), detail.Discussion.ID)
}

func TestGetDiscussion_PublicGroupOpenToNonMembers(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeGroup, LinkedID: 3, CreatorID: 1}, nil
		},
	}
	svc := newDiscussionServiceWith(repo,
		domain.Event{},
		domain.Group{ID: 3, Type: domain.GroupTypePublic, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{5}},
	)

	_, err := svc.GetDiscussion(context.Background(), 9, 1)
	assert.NoError(t, err)
}

func TestGetDiscussion_SecretGroupOutsiderRejected(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeGroup, LinkedID: 3, CreatorID: 1}, nil
		},
	}
	svc := newDiscussionServiceWith(repo,
		domain.Event{},
		domain.Group{ID: 3, Type: domain.GroupTypeSecret, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{5}},
	)

	_, err := svc.GetDiscussion(context.Background(), 9, 1)
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestGetDiscussion_PrivateEventOutsiderRejected(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeEvent, LinkedID: 2, CreatorID: 1}, nil
		},
	}
	svc := newDiscussionServiceWith(repo,
		domain.Event{ID: 2, Privacy: domain.EventPrivacyPrivate, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
		domain.Group{},
	)

	_, err := svc.GetDiscussion(context.Background(), 9, 1)
	assert.ErrorIs(t, err, ErrNotEventParticipant)
}

func TestPostMessage_PublicGroupNonMemberAllowed(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeGroup, LinkedID: 3}, nil
		},
	}
	svc := newDiscussionServiceWith(repo,
		domain.Event{},
		domain.Group{ID: 3, Type: domain.GroupTypePublic, CreatorID: 1, AdminIDs: []uint{1}, MemberIDs: []uint{5}},
	)

	created, err := svc.PostMessage(context.Background(), domain.Message{
		DiscussionID: 1,
		AuthorID:     9,
		Content:      "welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

func TestGetDiscussion_ResolvesAuthor(t *testing.T) {
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeEvent, LinkedID: 2, CreatorID: 1}, nil
		},
		findLastMessagesFunc: func(_ context.Context, _ uint, limit int) ([]domain.Message, error) {
			assert.Equal(t, 10, limit)
			return []domain.Message{{ID: 3, Content: "hi"}}, nil
		},
	}
	svc := newDiscussionService(repo)

	detail, err := svc.GetDiscussion(context.Background(), 5, 1)
	require.NoError(t, err)
	require.NotNil(t, detail.AuthorDetails)
	assert.Equal(t, uint(1), detail.AuthorDetails.ID)
	assert.Len(t, detail.LastMessages, 1)
}

func TestPostMessage_ParentFromOtherDiscussion(t *testing.T) {
	parentID := uint(77)
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeEvent, LinkedID: 2}, nil
		},
		findMessageByIDFunc: func(_ context.Context, id uint) (domain.Message, error) {
			return domain.Message{ID: id, DiscussionID: 999}, nil
		},
	}
	svc := newDiscussionService(repo)

	_, err := svc.PostMessage(context.Background(), domain.Message{
		DiscussionID:    1,
		ParentMessageID: &parentID,
		AuthorID:        5,
		Content:         "reply",
	})
	assert.ErrorIs(t, err, ErrParentMessageMismatch)
}

func TestPostMessage_ReplySucceeds(t *testing.T) {
	parentID := uint(77)
	repo := &fakeDiscussionRepo{
		findByIDFunc: func(_ context.Context, id uint) (domain.Discussion, error) {
			return domain.Discussion{ID: id, DiscussionType: domain.DiscussionTypeEvent, LinkedID: 2}, nil
		},
		findMessageByIDFunc: func(_ context.Context, id uint) (domain.Message, error) {
			return domain.Message{ID: id, DiscussionID: 1}, nil
		},
	}
	svc := newDiscussionService(repo)

	created, err := svc.PostMessage(context.Background(), domain.Message{
		DiscussionID:    1,
		ParentMessageID: &parentID,
		AuthorID:        5,
		Content:         "reply",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}
