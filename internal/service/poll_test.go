package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/repository"
)

type fakePollRepo struct {
	createFunc        func(ctx context.Context, poll domain.Poll) (domain.Poll, error)
	findByIDFunc      func(ctx context.Context, id uint) (domain.Poll, error)
	findByEventIDFunc func(ctx context.Context, eventID uint) ([]domain.Poll, error)
	findVoteFunc      func(ctx context.Context, pollID, userID uint) (domain.Vote, error)
	createVoteFunc    func(ctx context.Context, vote domain.Vote) (domain.Vote, error)
}

func (f *fakePollRepo) Create(ctx context.Context, poll domain.Poll) (domain.Poll, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, poll)
	}
	poll.ID = 1
	return poll, nil
}

func (f *fakePollRepo) FindByID(ctx context.Context, id uint) (domain.Poll, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(ctx, id)
	}
	return domain.Poll{}, repository.ErrPollNotFound
}

func (f *fakePollRepo) FindByEventID(ctx context.Context, eventID uint) ([]domain.Poll, error) {
	if f.findByEventIDFunc != nil {
		return f.findByEventIDFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *fakePollRepo) FindVote(ctx context.Context, pollID, userID uint) (domain.Vote, error) {
	if f.findVoteFunc != nil {
		return f.findVoteFunc(ctx, pollID, userID)
	}
	return domain.Vote{}, repository.ErrVoteNotFound
}

func (f *fakePollRepo) CreateVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	if f.createVoteFunc != nil {
		return f.createVoteFunc(ctx, vote)
	}
	vote.ID = 1
	return vote, nil
}

type fakePollEventRepo struct {
	event domain.Event
}

func (f *fakePollEventRepo) FindByID(_ context.Context, _ uint) (domain.Event, error) {
	return f.event, nil
}

func testPoll() domain.Poll {
	return domain.Poll{
		ID:             1,
		EventID:        2,
		CreatorID:      1,
		Title:          "Dinner choices",
		TotalResponses: 4,
		Questions: []domain.Question{
			{
				ID:     10,
				PollID: 1,
				Text:   "Main course?",
				Answers: []domain.Answer{
					{ID: 100, QuestionID: 10, Text: "Pizza"},
					{ID: 101, QuestionID: 10, Text: "Sushi"},
				},
			},
		},
	}
}

func newPollService(repo *fakePollRepo) *PollService {
	eventRepo := &fakePollEventRepo{
		event: domain.Event{ID: 2, CreatorID: 1, OrganizerIDs: []uint{1}, MemberIDs: []uint{5}},
	}
	return NewPollService(repo, eventRepo)
}

func TestCreatePoll_NonOrganizerRejected(t *testing.T) {
	svc := newPollService(&fakePollRepo{})

	_, err := svc.CreatePoll(context.Background(), domain.Poll{EventID: 2, CreatorID: 5})
	assert.ErrorIs(t, err, ErrNotEventOrganizer)
}

func TestListEventPolls_NonParticipantRejected(t *testing.T) {
	svc := newPollService(&fakePollRepo{})

	_, err := svc.ListEventPolls(context.Background(), 9, 2)
	assert.ErrorIs(t, err, ErrNotEventParticipant)
}

func TestVote_Succeeds(t *testing.T) {
	var recorded domain.Vote
	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return testPoll(), nil
		},
		createVoteFunc: func(_ context.Context, vote domain.Vote) (domain.Vote, error) {
			recorded = vote
			vote.ID = 1
			return vote, nil
		},
	}
	svc := newPollService(repo)

	result, err := svc.Vote(context.Background(), 5, 1, 10, "Pizza")
	require.NoError(t, err)

	assert.Equal(t, "Pizza", recorded.Answer)
	assert.Equal(t, uint(5), recorded.UserID)
	assert.Equal(t, 5, result.TotalVotes)
}

func TestVote_DoubleVoteRejected(t *testing.T) {
	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return testPoll(), nil
		},
		findVoteFunc: func(_ context.Context, pollID, userID uint) (domain.Vote, error) {
			return domain.Vote{ID: 1, PollID: pollID, UserID: userID}, nil
		},
	}
	svc := newPollService(repo)

	_, err := svc.Vote(context.Background(), 5, 1, 10, "Pizza")
	assert.ErrorIs(t, err, ErrAlreadyVoted)
}

func TestVote_MultipleVotesAllowed(t *testing.T) {
	poll := testPoll()
	poll.AllowMultipleVotes = true

	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return poll, nil
		},
		findVoteFunc: func(_ context.Context, pollID, userID uint) (domain.Vote, error) {
			return domain.Vote{ID: 1, PollID: pollID, UserID: userID}, nil
		},
	}
	svc := newPollService(repo)

	_, err := svc.Vote(context.Background(), 5, 1, 10, "Sushi")
	assert.NoError(t, err)
}

func TestVote_InvalidAnswer(t *testing.T) {
	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return testPoll(), nil
		},
	}
	svc := newPollService(repo)

	_, err := svc.Vote(context.Background(), 5, 1, 10, "Tacos")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestVote_QuestionNotFound(t *testing.T) {
	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return testPoll(), nil
		},
	}
	svc := newPollService(repo)

	_, err := svc.Vote(context.Background(), 5, 1, 77, "Pizza")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestVote_NonParticipantRejected(t *testing.T) {
	repo := &fakePollRepo{
		findByIDFunc: func(_ context.Context, _ uint) (domain.Poll, error) {
			return testPoll(), nil
		},
	}
	svc := newPollService(repo)

	_, err := svc.Vote(context.Background(), 9, 1, 10, "Pizza")
	assert.ErrorIs(t, err, ErrNotEventParticipant)
}
