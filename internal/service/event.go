package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound

	ErrNotEventOrganizer      = errors.New("only organizers can perform this action")
	ErrNotEventParticipant    = errors.New("only event participants can perform this action")
	ErrPrivateEvent           = errors.New("this event is private")
	ErrCannotJoinPrivateEvent = errors.New("cannot join a private event without an invitation")
	ErrAlreadyEventMember     = errors.New("user is already a member of this event")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context, userID uint, publicOnly bool, skip, limit int) ([]domain.Event, error)
	FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]domain.Event, error)
	Update(ctx context.Context, id uint, update domain.EventUpdate) (domain.Event, error)
	Deactivate(ctx context.Context, id uint) error
	AddMember(ctx context.Context, eventID, userID uint) error
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}

type EventUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindSummaries(ctx context.Context, ids []uint) ([]domain.UserSummary, error)
}

type EventGroupRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Group, error)
}

type EventService struct {
	repo      EventRepository
	userRepo  EventUserRepository
	groupRepo EventGroupRepository
}

func NewEventService(repo EventRepository, userRepo EventUserRepository, groupRepo EventGroupRepository) *EventService {
	return &EventService{
		repo:      repo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// checkUsersExist verifies every referenced user is active.
func (s *EventService) checkUsersExist(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		if _, err := s.userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrUserNotFound
			}

			return fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}
	}

	return nil
}

// CreateEvent stores the event with the creator forced into the
// organizer list. With a group and autoInvite set, the group's members
// are pulled into the event's member list.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, autoInvite bool) (domain.Event, error) {
	if !containsID(event.OrganizerIDs, event.CreatorID) {
		event.OrganizerIDs = append(event.OrganizerIDs, event.CreatorID)
	}

	if event.GroupID != nil {
		group, err := s.groupRepo.FindByID(ctx, *event.GroupID)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return domain.Event{}, ErrGroupNotFound
			}

			return domain.Event{}, fmt.Errorf("s.groupRepo.FindByID -> %w", err)
		}

		if autoInvite {
			for _, id := range group.MemberIDs {
				if !containsID(event.MemberIDs, id) && !containsID(event.OrganizerIDs, id) {
					event.MemberIDs = append(event.MemberIDs, id)
				}
			}
		}
	}

	if err := s.checkUsersExist(ctx, event.OrganizerIDs); err != nil {
		return domain.Event{}, err
	}
	if err := s.checkUsersExist(ctx, event.MemberIDs); err != nil {
		return domain.Event{}, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, callerID, id uint) (domain.EventDetail, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.VisibleTo(callerID) {
		return domain.EventDetail{}, ErrPrivateEvent
	}

	return s.buildDetail(ctx, event)
}

func (s *EventService) buildDetail(ctx context.Context, event domain.Event) (domain.EventDetail, error) {
	organizers, err := s.userRepo.FindSummaries(ctx, event.OrganizerIDs)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.userRepo.FindSummaries -> %w", err)
	}

	members, err := s.userRepo.FindSummaries(ctx, event.MemberIDs)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.userRepo.FindSummaries -> %w", err)
	}

	return domain.EventDetail{
		Event:            event,
		OrganizerDetails: organizers,
		MemberDetails:    members,
		ParticipantCount: len(organizers) + len(members),
	}, nil
}

func (s *EventService) ListEvents(ctx context.Context, callerID uint, publicOnly bool, skip, limit int) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx, callerID, publicOnly, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListUserEvents(ctx context.Context, userID uint, skip, limit int) ([]domain.Event, error) {
	events, err := s.repo.FindByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, callerID, id uint, update domain.EventUpdate) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.IsOrganizer(callerID) {
		return domain.Event{}, ErrNotEventOrganizer
	}

	if update.OrganizerIDs != nil {
		// Creator stays an organizer no matter what the update says.
		if !containsID(update.OrganizerIDs, event.CreatorID) {
			update.OrganizerIDs = append(update.OrganizerIDs, event.CreatorID)
		}
		if err = s.checkUsersExist(ctx, update.OrganizerIDs); err != nil {
			return domain.Event{}, err
		}
	}
	if update.MemberIDs != nil {
		if err = s.checkUsersExist(ctx, update.MemberIDs); err != nil {
			return domain.Event{}, err
		}
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, callerID, id uint) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.IsOrganizer(callerID) {
		return ErrNotEventOrganizer
	}

	if err = s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Deactivate -> %w", err)
	}

	return nil
}

// JoinEvent self-enrolls the caller. Private events require an
// invitation through the organizer flows instead.
func (s *EventService) JoinEvent(ctx context.Context, callerID, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.Privacy != domain.EventPrivacyPublic {
		return domain.Event{}, ErrCannotJoinPrivateEvent
	}
	if event.IsParticipant(callerID) {
		return domain.Event{}, ErrAlreadyEventMember
	}

	if err = s.repo.AddMember(ctx, id, callerID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.AddMember -> %w", err)
	}

	joined, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return joined, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
