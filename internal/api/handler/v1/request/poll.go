package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gatherly/gatherly-api/internal/domain"
)

var errQuestionNeedsAnswers = errors.New("every question needs at least 2 answers")

type PollQuestion struct {
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

type CreatePollRequest struct {
	EventID            uint           `json:"event_id"`
	Title              string         `json:"title"`
	Description        string         `json:"description,omitempty"`
	Questions          []PollQuestion `json:"questions"`
	IsAnonymous        bool           `json:"is_anonymous,omitempty"`
	AllowMultipleVotes bool           `json:"allow_multiple_votes,omitempty"`
}

func (req *CreatePollRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Questions, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return err
	}

	for _, q := range req.Questions {
		if q.Text == "" {
			return errors.New("question text is required")
		}
		if len(q.Answers) < 2 {
			return errQuestionNeedsAnswers
		}
	}

	return nil
}

func (req *CreatePollRequest) ToPoll(creatorID uint) domain.Poll {
	questions := make([]domain.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		answers := make([]domain.Answer, 0, len(q.Answers))
		for _, text := range q.Answers {
			answers = append(answers, domain.Answer{Text: text})
		}
		questions = append(questions, domain.Question{Text: q.Text, Answers: answers})
	}

	return domain.Poll{
		EventID:            req.EventID,
		CreatorID:          creatorID,
		Title:              req.Title,
		Description:        req.Description,
		Questions:          questions,
		IsAnonymous:        req.IsAnonymous,
		AllowMultipleVotes: req.AllowMultipleVotes,
	}
}

type VoteRequest struct {
	PollID     uint   `json:"poll_id"`
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

func (req *VoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PollID, validation.Required),
		validation.Field(&req.QuestionID, validation.Required),
		validation.Field(&req.Answer, validation.Required),
	)
}
