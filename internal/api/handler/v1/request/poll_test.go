package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPollRequest() CreatePollRequest {
	return CreatePollRequest{
		EventID: 1,
		Title:   "Dinner choices",
		Questions: []PollQuestion{
			{Text: "Main course?", Answers: []string{"Pizza", "Sushi"}},
		},
	}
}

func TestCreatePollRequest_Validate(t *testing.T) {
	req := validPollRequest()
	assert.NoError(t, req.Validate())

	noQuestions := validPollRequest()
	noQuestions.Questions = nil
	assert.Error(t, noQuestions.Validate())

	oneAnswer := validPollRequest()
	oneAnswer.Questions[0].Answers = []string{"Pizza"}
	assert.ErrorIs(t, oneAnswer.Validate(), errQuestionNeedsAnswers)

	emptyText := validPollRequest()
	emptyText.Questions[0].Text = ""
	assert.Error(t, emptyText.Validate())
}

func TestCreatePollRequest_ToPoll(t *testing.T) {
	req := validPollRequest()

	poll := req.ToPoll(7)
	assert.Equal(t, uint(7), poll.CreatorID)
	require.Len(t, poll.Questions, 1)
	require.Len(t, poll.Questions[0].Answers, 2)
	assert.Equal(t, "Pizza", poll.Questions[0].Answers[0].Text)
}
