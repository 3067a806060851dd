package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event, organizerIDs, memberIDs []uint) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context, userID uint, publicOnly bool, skip, limit int) ([]dao.Event, error)
	FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]dao.Event, error)
	Update(ctx context.Context, id uint, values map[string]interface{}, organizerIDs, memberIDs []uint) (dao.Event, error)
	Deactivate(ctx context.Context, id uint) error
	AddMember(ctx context.Context, eventID, userID uint) error
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		CoverPhoto:  e.CoverPhoto,
		Privacy:     string(e.Privacy),
		GroupID:     e.GroupID,
		CreatorID:   e.CreatorID,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Location:     e.Location,
		CoverPhoto:   e.CoverPhoto,
		Privacy:      domain.EventPrivacy(e.Privacy),
		GroupID:      e.GroupID,
		CreatorID:    e.CreatorID,
		OrganizerIDs: e.OrganizerIDs,
		MemberIDs:    e.MemberIDs,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event), event.OrganizerIDs, event.MemberIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context, userID uint, publicOnly bool, skip, limit int) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, userID, publicOnly, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindByUserID(ctx context.Context, userID uint, skip, limit int) ([]domain.Event, error) {
	found, err := r.dao.FindByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, id uint, update domain.EventUpdate) (domain.Event, error) {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.StartDate != nil {
		values["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		values["end_date"] = *update.EndDate
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.CoverPhoto != nil {
		values["cover_photo"] = *update.CoverPhoto
	}
	if update.Privacy != nil {
		values["privacy"] = string(*update.Privacy)
	}

	updated, err := r.dao.Update(ctx, id, values, update.OrganizerIDs, update.MemberIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Deactivate(ctx context.Context, id uint) error {
	if err := r.dao.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return nil
}

func (r *EventRepository) AddMember(ctx context.Context, eventID, userID uint) error {
	if err := r.dao.AddMember(ctx, eventID, userID); err != nil {
		return fmt.Errorf("r.dao.AddMember -> %w", err)
	}

	return nil
}

func (r *EventRepository) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	count, err := r.dao.CountByGroupID(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByGroupID -> %w", err)
	}

	return count, nil
}
