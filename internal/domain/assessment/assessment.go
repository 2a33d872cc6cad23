// Package assessment holds skill-assessment definitions, the grading
// engine and persisted assessment results.
package assessment

import (
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QuestionKind classifies how a question is answered and graded
type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple_choice"
	TrueFalse      QuestionKind = "true_false"
	OpenEnded      QuestionKind = "open_ended"
)

// Option is one selectable answer of a choice question. IsCorrect is
// internal grading data and must never reach pre-submission responses.
type Option struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

// Question is a single prompt within an assessment
type Question struct {
	ID      uuid.UUID    `json:"id"`
	Text    string       `json:"text"`
	Kind    QuestionKind `json:"kind"`
	Options []Option     `json:"options,omitempty"`
	Points  int          `json:"points"`
}

// Assessment is a named, ordered set of scored questions
type Assessment struct {
	shared.BaseAggregateRoot
	Title            string
	Description      string
	Category         string
	Difficulty       string
	TimeLimitSeconds int // advisory only, never enforced server-side
	Questions        []Question
}

// NewAssessment creates a new assessment definition. The question list
// must be non-empty and structurally valid.
func NewAssessment(title, description, category, difficulty string, questions []Question) (*Assessment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Assessment title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Assessment title cannot exceed 200 characters")
	}

	prepared, err := prepareQuestions(questions)
	if err != nil {
		return nil, err
	}

	return &Assessment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       strings.TrimSpace(description),
		Category:          strings.TrimSpace(category),
		Difficulty:        strings.TrimSpace(difficulty),
		Questions:         prepared,
	}, nil
}

// SetTimeLimit sets the advisory time limit in seconds
func (a *Assessment) SetTimeLimit(seconds int) error {
	if seconds < 0 {
		return shared.NewDomainError("INVALID_TIME_LIMIT", "Time limit cannot be negative")
	}

	a.TimeLimitSeconds = seconds
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// TotalPossiblePoints sums the point weight of every question
func (a *Assessment) TotalPossiblePoints() int {
	total := 0
	for _, q := range a.Questions {
		total += q.Points
	}
	return total
}

// QuestionByID returns the question with the given ID, or nil
func (a *Assessment) QuestionByID(id uuid.UUID) *Question {
	for i := range a.Questions {
		if a.Questions[i].ID == id {
			return &a.Questions[i]
		}
	}
	return nil
}

// ValidateStructure checks the invariants the grading engine relies on:
// a non-empty question list and, for choice questions, a non-empty
// option list. A violation is a data-integrity fault, not user error.
func (a *Assessment) ValidateStructure() error {
	if len(a.Questions) == 0 {
		return shared.ErrInvalidDefinition
	}
	for _, q := range a.Questions {
		switch q.Kind {
		case MultipleChoice, TrueFalse:
			if len(q.Options) == 0 {
				return shared.ErrInvalidDefinition
			}
		case OpenEnded:
		default:
			return shared.ErrInvalidDefinition
		}
	}
	return nil
}

// prepareQuestions validates incoming questions, assigns IDs where
// missing and defaults the point weight to 1.
func prepareQuestions(questions []Question) ([]Question, error) {
	if len(questions) == 0 {
		return nil, shared.NewDomainError("INVALID_QUESTIONS", "Assessment must have at least one question")
	}

	seen := make(map[uuid.UUID]bool, len(questions))
	prepared := make([]Question, 0, len(questions))

	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, shared.NewDomainError("INVALID_QUESTION", "Question text cannot be empty")
		}
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		if seen[q.ID] {
			return nil, shared.NewDomainError("INVALID_QUESTION", "Question IDs must be unique within an assessment")
		}
		seen[q.ID] = true

		if q.Points == 0 {
			q.Points = 1
		}
		if q.Points < 0 {
			return nil, shared.NewDomainError("INVALID_QUESTION", "Question points must be positive")
		}

		switch q.Kind {
		case MultipleChoice, TrueFalse:
			opts, err := prepareOptions(q.Options)
			if err != nil {
				return nil, err
			}
			q.Options = opts
		case OpenEnded:
			// options are ignored for open-ended questions
			q.Options = nil
		default:
			return nil, shared.NewDomainError("INVALID_QUESTION", "Question kind must be multiple_choice, true_false or open_ended")
		}

		prepared = append(prepared, q)
	}

	return prepared, nil
}

func prepareOptions(options []Option) ([]Option, error) {
	if len(options) == 0 {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Choice questions must have at least one option")
	}

	seen := make(map[uuid.UUID]bool, len(options))
	hasCorrect := false
	prepared := make([]Option, 0, len(options))

	for _, opt := range options {
		if strings.TrimSpace(opt.Text) == "" {
			return nil, shared.NewDomainError("INVALID_OPTION", "Option text cannot be empty")
		}
		if opt.ID == uuid.Nil {
			opt.ID = uuid.New()
		}
		if seen[opt.ID] {
			return nil, shared.NewDomainError("INVALID_OPTION", "Option IDs must be unique within a question")
		}
		seen[opt.ID] = true
		if opt.IsCorrect {
			hasCorrect = true
		}
		prepared = append(prepared, opt)
	}

	if !hasCorrect {
		return nil, shared.NewDomainError("INVALID_OPTION", "Choice questions must mark at least one correct option")
	}

	return prepared, nil
}
