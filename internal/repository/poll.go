package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository/dao"
)

var (
	ErrPollNotFound = dao.ErrPollNotFound
	ErrVoteNotFound = dao.ErrVoteNotFound
)

type PollDAO interface {
	Insert(ctx context.Context, poll dao.Poll) (dao.Poll, error)
	FindByID(ctx context.Context, id uint) (dao.Poll, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Poll, error)
	FindVote(ctx context.Context, pollID, userID uint) (dao.Vote, error)
	InsertVote(ctx context.Context, vote dao.Vote) (dao.Vote, error)
}

type PollRepository struct {
	dao PollDAO
}

func NewPollRepository(dao PollDAO) *PollRepository {
	return &PollRepository{
		dao: dao,
	}
}

func (r *PollRepository) domainToDao(p domain.Poll) dao.Poll {
	questions := make([]dao.Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		answers := make([]dao.Answer, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, dao.Answer{Text: a.Text})
		}
		questions = append(questions, dao.Question{Text: q.Text, Answers: answers})
	}

	return dao.Poll{
		EventID:            p.EventID,
		CreatorID:          p.CreatorID,
		Title:              p.Title,
		Description:        p.Description,
		IsAnonymous:        p.IsAnonymous,
		AllowMultipleVotes: p.AllowMultipleVotes,
		Questions:          questions,
	}
}

func (r *PollRepository) daoToDomain(p dao.Poll) domain.Poll {
	questions := make([]domain.Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		answers := make([]domain.Answer, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, domain.Answer{
				ID:            a.ID,
				QuestionID:    a.QuestionID,
				Text:          a.Text,
				ResponseCount: a.ResponseCount,
			})
		}
		questions = append(questions, domain.Question{
			ID:      q.ID,
			PollID:  q.PollID,
			Text:    q.Text,
			Answers: answers,
		})
	}

	return domain.Poll{
		ID:                 p.ID,
		EventID:            p.EventID,
		CreatorID:          p.CreatorID,
		Title:              p.Title,
		Description:        p.Description,
		Questions:          questions,
		IsAnonymous:        p.IsAnonymous,
		AllowMultipleVotes: p.AllowMultipleVotes,
		TotalResponses:     p.TotalResponses,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (r *PollRepository) voteDaoToDomain(v dao.Vote) domain.Vote {
	return domain.Vote{
		ID:         v.ID,
		PollID:     v.PollID,
		QuestionID: v.QuestionID,
		UserID:     v.UserID,
		Answer:     v.Answer,
		CreatedAt:  v.CreatedAt,
	}
}

func (r *PollRepository) Create(ctx context.Context, poll domain.Poll) (domain.Poll, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(poll))
	if err != nil {
		return domain.Poll{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PollRepository) FindByID(ctx context.Context, id uint) (domain.Poll, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Poll{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PollRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Poll, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	polls := make([]domain.Poll, 0, len(found))
	for _, p := range found {
		polls = append(polls, r.daoToDomain(p))
	}

	return polls, nil
}

func (r *PollRepository) FindVote(ctx context.Context, pollID, userID uint) (domain.Vote, error) {
	found, err := r.dao.FindVote(ctx, pollID, userID)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("r.dao.FindVote -> %w", err)
	}

	return r.voteDaoToDomain(found), nil
}

func (r *PollRepository) CreateVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	created, err := r.dao.InsertVote(ctx, dao.Vote{
		PollID:     vote.PollID,
		QuestionID: vote.QuestionID,
		UserID:     vote.UserID,
		Answer:     vote.Answer,
	})
	if err != nil {
		return domain.Vote{}, fmt.Errorf("r.dao.InsertVote -> %w", err)
	}

	return r.voteDaoToDomain(created), nil
}
