package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollDAO_InsertVoteBumpsCounters(t *testing.T) {
	ctx := context.Background()
	d := NewPollDAO(testDB)

	poll, err := d.Insert(ctx, Poll{
		EventID:   1,
		CreatorID: 1,
		Title:     "Dinner choice",
		Questions: []Question{
			{
				Text: "What should we order?",
				Answers: []Answer{
					{Text: "Pizza"},
					{Text: "Sushi"},
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, poll.Questions, 1)
	require.Len(t, poll.Questions[0].Answers, 2)
	require.Zero(t, poll.TotalResponses)

	question := poll.Questions[0]

	_, err = d.InsertVote(ctx, Vote{
		PollID:     poll.ID,
		QuestionID: question.ID,
		UserID:     5,
		Answer:     "Pizza",
	})
	require.NoError(t, err)
	_, err = d.InsertVote(ctx, Vote{
		PollID:     poll.ID,
		QuestionID: question.ID,
		UserID:     6,
		Answer:     "Sushi",
	})
	require.NoError(t, err)
	_, err = d.InsertVote(ctx, Vote{
		PollID:     poll.ID,
		QuestionID: question.ID,
		UserID:     7,
		Answer:     "Pizza",
	})
	require.NoError(t, err)

	fresh, err := d.FindByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.TotalResponses)

	counts := map[string]int{}
	for _, answer := range fresh.Questions[0].Answers {
		counts[answer.Text] = answer.ResponseCount
	}
	assert.Equal(t, 2, counts["Pizza"])
	assert.Equal(t, 1, counts["Sushi"])
}

func TestPollDAO_FindVote(t *testing.T) {
	ctx := context.Background()
	d := NewPollDAO(testDB)

	poll, err := d.Insert(ctx, Poll{
		EventID:   1,
		CreatorID: 1,
		Title:     "Start time",
		Questions: []Question{
			{Text: "Morning or afternoon?", Answers: []Answer{{Text: "Morning"}, {Text: "Afternoon"}}},
		},
	})
	require.NoError(t, err)

	_, err = d.FindVote(ctx, poll.ID, 8)
	assert.ErrorIs(t, err, ErrVoteNotFound)

	_, err = d.InsertVote(ctx, Vote{
		PollID:     poll.ID,
		QuestionID: poll.Questions[0].ID,
		UserID:     8,
		Answer:     "Morning",
	})
	require.NoError(t, err)

	vote, err := d.FindVote(ctx, poll.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, "Morning", vote.Answer)
}
