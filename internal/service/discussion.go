package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrDiscussionNotFound = repository.ErrDiscussionNotFound
	ErrMessageNotFound    = repository.ErrMessageNotFound

	// ErrParentMessageMismatch rejects replies that point at a message
	// from another discussion.
	ErrParentMessageMismatch = errors.New("parent message belongs to another discussion")
)

const lastMessagesLimit = 10

type DiscussionRepository interface {
	Create(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error)
	FindByID(ctx context.Context, id uint) (domain.Discussion, error)
	FindAll(ctx context.Context, discussionType domain.DiscussionType, linkedID uint, skip, limit int) ([]domain.Discussion, error)
	FindMessageByID(ctx context.Context, id uint) (domain.Message, error)
	FindLastMessages(ctx context.Context, discussionID uint, limit int) ([]domain.Message, error)
	CreateMessage(ctx context.Context, message domain.Message) (domain.Message, error)
}

type DiscussionEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type DiscussionGroupRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Group, error)
}

type DiscussionService struct {
	repo      DiscussionRepository
	eventRepo DiscussionEventRepository
	groupRepo DiscussionGroupRepository
	userRepo  GroupUserRepository
}

func NewDiscussionService(
	repo DiscussionRepository,
	eventRepo DiscussionEventRepository,
	groupRepo DiscussionGroupRepository,
	userRepo GroupUserRepository,
) *DiscussionService {
	return &DiscussionService{
		repo:      repo,
		eventRepo: eventRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// checkMembership gates discussion creation: group discussions require
// membership, event discussions require participation.
func (s *DiscussionService) checkMembership(ctx context.Context, callerID uint, discussionType domain.DiscussionType, linkedID uint) error {
	switch discussionType {
	case domain.DiscussionTypeGroup:
		group, err := s.groupRepo.FindByID(ctx, linkedID)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return ErrGroupNotFound
			}

			return fmt.Errorf("s.groupRepo.FindByID -> %w", err)
		}
		if !group.IsAdmin(callerID) && !group.IsMember(callerID) {
			return ErrNotGroupMember
		}
	case domain.DiscussionTypeEvent:
		event, err := s.eventRepo.FindByID(ctx, linkedID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrEventNotFound
			}

			return fmt.Errorf("s.eventRepo.FindByID -> %w", err)
		}
		if !event.IsParticipant(callerID) {
			return ErrNotEventParticipant
		}
	}

	return nil
}

// checkVisibility gates reads and messaging. Discussions carry no
// privacy of their own, so access follows the linked resource: only
// secret groups and private events keep theirs restricted to members.
func (s *DiscussionService) checkVisibility(ctx context.Context, callerID uint, discussionType domain.DiscussionType, linkedID uint) error {
	switch discussionType {
	case domain.DiscussionTypeGroup:
		group, err := s.groupRepo.FindByID(ctx, linkedID)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return ErrGroupNotFound
			}

			return fmt.Errorf("s.groupRepo.FindByID -> %w", err)
		}
		if group.Type == domain.GroupTypeSecret && !group.IsAdmin(callerID) && !group.IsMember(callerID) {
			return ErrNotGroupMember
		}
	case domain.DiscussionTypeEvent:
		event, err := s.eventRepo.FindByID(ctx, linkedID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrEventNotFound
			}

			return fmt.Errorf("s.eventRepo.FindByID -> %w", err)
		}
		if event.Privacy == domain.EventPrivacyPrivate && !event.IsParticipant(callerID) {
			return ErrNotEventParticipant
		}
	}

	return nil
}

func (s *DiscussionService) CreateDiscussion(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error) {
	err := s.checkMembership(ctx, discussion.CreatorID, discussion.DiscussionType, discussion.LinkedID)
	if err != nil {
		return domain.Discussion{}, err
	}

	created, err := s.repo.Create(ctx, discussion)
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DiscussionService) GetDiscussion(ctx context.Context, callerID, id uint) (domain.DiscussionDetail, error) {
	discussion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DiscussionDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.checkVisibility(ctx, callerID, discussion.DiscussionType, discussion.LinkedID); err != nil {
		return domain.DiscussionDetail{}, err
	}

	messages, err := s.repo.FindLastMessages(ctx, id, lastMessagesLimit)
	if err != nil {
		return domain.DiscussionDetail{}, fmt.Errorf("s.repo.FindLastMessages -> %w", err)
	}

	detail := domain.DiscussionDetail{
		Discussion:   discussion,
		LastMessages: messages,
	}

	authors, err := s.userRepo.FindSummaries(ctx, []uint{discussion.CreatorID})
	if err != nil {
		return domain.DiscussionDetail{}, fmt.Errorf("s.userRepo.FindSummaries -> %w", err)
	}
	if len(authors) > 0 {
		detail.AuthorDetails = &authors[0]
	}

	return detail, nil
}

func (s *DiscussionService) ListDiscussions(ctx context.Context, callerID uint, discussionType domain.DiscussionType, linkedID uint, skip, limit int) ([]domain.Discussion, error) {
	if discussionType != "" && linkedID != 0 {
		if err := s.checkVisibility(ctx, callerID, discussionType, linkedID); err != nil {
			return nil, err
		}
	}

	discussions, err := s.repo.FindAll(ctx, discussionType, linkedID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return discussions, nil
}

// PostMessage appends a message, or a reply when ParentMessageID is set.
// The parent must be an active message of the same discussion.
func (s *DiscussionService) PostMessage(ctx context.Context, message domain.Message) (domain.Message, error) {
	discussion, err := s.repo.FindByID(ctx, message.DiscussionID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.checkVisibility(ctx, message.AuthorID, discussion.DiscussionType, discussion.LinkedID); err != nil {
		return domain.Message{}, err
	}

	if message.ParentMessageID != nil {
		parent, err := s.repo.FindMessageByID(ctx, *message.ParentMessageID)
		if err != nil {
			return domain.Message{}, fmt.Errorf("s.repo.FindMessageByID -> %w", err)
		}
		if parent.DiscussionID != message.DiscussionID {
			return domain.Message{}, ErrParentMessageMismatch
		}
	}

	created, err := s.repo.CreateMessage(ctx, message)
	if err != nil {
		return domain.Message{}, fmt.Errorf("s.repo.CreateMessage -> %w", err)
	}

	return created, nil
}
