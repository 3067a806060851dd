package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var (
	ErrDiscussionNotFound = dao.ErrDiscussionNotFound
	ErrMessageNotFound    = dao.ErrMessageNotFound
)

type DiscussionDAO interface {
	Insert(ctx context.Context, discussion dao.Discussion) (dao.Discussion, error)
	FindByID(ctx context.Context, id uint) (dao.Discussion, error)
	FindAll(ctx context.Context, discussionType string, linkedID uint, skip, limit int) ([]dao.Discussion, error)
	FindMessageByID(ctx context.Context, id uint) (dao.Message, error)
	FindLastMessages(ctx context.Context, discussionID uint, limit int) ([]dao.Message, error)
	InsertMessage(ctx context.Context, message dao.Message) (dao.Message, error)
}

type DiscussionRepository struct {
	dao DiscussionDAO
}

func NewDiscussionRepository(dao DiscussionDAO) *DiscussionRepository {
	return &DiscussionRepository{
		dao: dao,
	}
}

func (r *DiscussionRepository) domainToDao(d domain.Discussion) dao.Discussion {
	return dao.Discussion{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		DiscussionType: string(d.DiscussionType),
		LinkedID:       d.LinkedID,
		CreatorID:      d.CreatorID,
		IsPinned:       d.IsPinned,
		MessageCount:   d.MessageCount,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *DiscussionRepository) daoToDomain(d dao.Discussion) domain.Discussion {
	return domain.Discussion{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		DiscussionType: domain.DiscussionType(d.DiscussionType),
		LinkedID:       d.LinkedID,
		CreatorID:      d.CreatorID,
		IsPinned:       d.IsPinned,
		MessageCount:   d.MessageCount,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *DiscussionRepository) messageDomainToDao(m domain.Message) dao.Message {
	return dao.Message{
		ID:              m.ID,
		DiscussionID:    m.DiscussionID,
		ParentMessageID: m.ParentMessageID,
		AuthorID:        m.AuthorID,
		Content:         m.Content,
		IsEdited:        m.IsEdited,
		ReplyCount:      m.ReplyCount,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *DiscussionRepository) messageDaoToDomain(m dao.Message) domain.Message {
	return domain.Message{
		ID:              m.ID,
		DiscussionID:    m.DiscussionID,
		ParentMessageID: m.ParentMessageID,
		AuthorID:        m.AuthorID,
		Content:         m.Content,
		IsEdited:        m.IsEdited,
		ReplyCount:      m.ReplyCount,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *DiscussionRepository) Create(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(discussion))
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DiscussionRepository) FindByID(ctx context.Context, id uint) (domain.Discussion, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DiscussionRepository) FindAll(ctx context.Context, discussionType domain.DiscussionType, linkedID uint, skip, limit int) ([]domain.Discussion, error) {
	found, err := r.dao.FindAll(ctx, string(discussionType), linkedID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	discussions := make([]domain.Discussion, 0, len(found))
	for _, d := range found {
		discussions = append(discussions, r.daoToDomain(d))
	}

	return discussions, nil
}

func (r *DiscussionRepository) FindMessageByID(ctx context.Context, id uint) (domain.Message, error) {
	found, err := r.dao.FindMessageByID(ctx, id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("r.dao.FindMessageByID -> %w", err)
	}

	return r.messageDaoToDomain(found), nil
}

func (r *DiscussionRepository) FindLastMessages(ctx context.Context, discussionID uint, limit int) ([]domain.Message, error) {
	found, err := r.dao.FindLastMessages(ctx, discussionID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLastMessages -> %w", err)
	}

	messages := make([]domain.Message, 0, len(found))
	for _, m := range found {
		messages = append(messages, r.messageDaoToDomain(m))
	}

	return messages, nil
}

func (r *DiscussionRepository) CreateMessage(ctx context.Context, message domain.Message) (domain.Message, error) {
	created, err := r.dao.InsertMessage(ctx, r.messageDomainToDao(message))
	if err != nil {
		return domain.Message{}, fmt.Errorf("r.dao.InsertMessage -> %w", err)
	}

	return r.messageDaoToDomain(created), nil
}
