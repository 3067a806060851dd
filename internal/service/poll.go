package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

var (
	ErrPollNotFound = repository.ErrPollNotFound

	ErrQuestionNotFound = errors.New("question not found in this poll")
	ErrInvalidAnswer    = errors.New("answer is not among the question's answers")
	ErrAlreadyVoted     = errors.New("user has already voted on this poll")
)

type PollRepository interface {
	Create(ctx context.Context, poll domain.Poll) (domain.Poll, error)
	FindByID(ctx context.Context, id uint) (domain.Poll, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Poll, error)
	FindVote(ctx context.Context, pollID, userID uint) (domain.Vote, error)
	CreateVote(ctx context.Context, vote domain.Vote) (domain.Vote, error)
}

type PollEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type PollService struct {
	repo      PollRepository
	eventRepo PollEventRepository
}

func NewPollService(repo PollRepository, eventRepo PollEventRepository) *PollService {
	return &PollService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *PollService) CreatePoll(ctx context.Context, poll domain.Poll) (domain.Poll, error) {
	event, err := s.eventRepo.FindByID(ctx, poll.EventID)
	if err != nil {
		return domain.Poll{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if !event.IsOrganizer(poll.CreatorID) {
		return domain.Poll{}, ErrNotEventOrganizer
	}

	created, err := s.repo.Create(ctx, poll)
	if err != nil {
		return domain.Poll{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PollService) ListEventPolls(ctx context.Context, callerID, eventID uint) ([]domain.Poll, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if !event.IsParticipant(callerID) {
		return nil, ErrNotEventParticipant
	}

	polls, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return polls, nil
}

// Vote validates the ballot against the poll's declared questions and
// answers, enforces the single-vote rule, then records the vote with
// its counter updates in one transaction.
func (s *PollService) Vote(ctx context.Context, callerID, pollID, questionID uint, answer string) (domain.VoteResult, error) {
	poll, err := s.repo.FindByID(ctx, pollID)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, poll.EventID)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}
	if !event.IsParticipant(callerID) {
		return domain.VoteResult{}, ErrNotEventParticipant
	}

	var question *domain.Question
	for i := range poll.Questions {
		if poll.Questions[i].ID == questionID {
			question = &poll.Questions[i]
			break
		}
	}
	if question == nil {
		return domain.VoteResult{}, ErrQuestionNotFound
	}
	if !question.HasAnswer(answer) {
		return domain.VoteResult{}, ErrInvalidAnswer
	}

	if !poll.AllowMultipleVotes {
		_, err = s.repo.FindVote(ctx, pollID, callerID)
		if err == nil {
			return domain.VoteResult{}, ErrAlreadyVoted
		}
		if !errors.Is(err, repository.ErrVoteNotFound) {
			return domain.VoteResult{}, fmt.Errorf("s.repo.FindVote -> %w", err)
		}
	}

	_, err = s.repo.CreateVote(ctx, domain.Vote{
		PollID:     pollID,
		QuestionID: questionID,
		UserID:     callerID,
		Answer:     answer,
	})
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("s.repo.CreateVote -> %w", err)
	}

	return domain.VoteResult{
		PollID:       pollID,
		QuestionID:   questionID,
		ChosenAnswer: answer,
		TotalVotes:   poll.TotalResponses + 1,
	}, nil
}
