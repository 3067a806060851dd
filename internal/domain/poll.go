package domain

import "time"

type Poll struct {
	ID                 uint       `json:"id"`
	EventID            uint       `json:"event_id"`
	CreatorID          uint       `json:"creator_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Questions          []Question `json:"questions"`
	IsAnonymous        bool       `json:"is_anonymous"`
	AllowMultipleVotes bool       `json:"allow_multiple_votes"`
	TotalResponses     int        `json:"total_responses"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type Question struct {
	ID      uint     `json:"id"`
	PollID  uint     `json:"poll_id"`
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

// Answer is one declared option of a question together with its running
// response count. Storing counts per answer row keeps the counter keys
// and the declared answers structurally identical.
type Answer struct {
	ID            uint   `json:"id"`
	QuestionID    uint   `json:"question_id"`
	Text          string `json:"text"`
	ResponseCount int    `json:"response_count"`
}

// HasAnswer reports whether text is among the question's declared answers.
func (q *Question) HasAnswer(text string) bool {
	for _, a := range q.Answers {
		if a.Text == text {
			return true
		}
	}

	return false
}

type Vote struct {
	ID         uint      `json:"id"`
	PollID     uint      `json:"poll_id"`
	QuestionID uint      `json:"question_id"`
	UserID     uint      `json:"user_id"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
}

type VoteResult struct {
	PollID       uint   `json:"poll_id"`
	QuestionID   uint   `json:"question_id"`
	ChosenAnswer string `json:"chosen_answer"`
	TotalVotes   int    `json:"total_votes"`
}
