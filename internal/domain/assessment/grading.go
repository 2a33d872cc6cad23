package assessment

import (
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Correctness is the grading verdict for a single answer
type Correctness string

const (
	Correct   Correctness = "correct"
	Incorrect Correctness = "incorrect"
	// Ungraded marks open-ended answers awaiting manual review
	Ungraded Correctness = "ungraded"
)

// SubmittedAnswer is a candidate's answer to one question. It is input
// only and never persisted as-is.
type SubmittedAnswer struct {
	QuestionID        uuid.UUID   `json:"question_id"`
	SelectedOptionIDs []uuid.UUID `json:"selected_option_ids,omitempty"`
	OpenAnswerText    string      `json:"open_answer_text,omitempty"`
}

// GradedAnswer is the graded form of a submitted answer
type GradedAnswer struct {
	QuestionID        uuid.UUID   `json:"question_id"`
	SelectedOptionIDs []uuid.UUID `json:"selected_option_ids,omitempty"`
	OpenAnswerText    string      `json:"open_answer_text,omitempty"`
	AwardedPoints     int         `json:"awarded_points"`
	Correctness       Correctness `json:"correctness"`
}

// GradingOutcome is the pure result of grading one submission. The
// caller attaches identity and persistence concerns.
type GradingOutcome struct {
	GradedAnswers       []GradedAnswer `json:"graded_answers"`
	Score               int            `json:"score"`
	TotalPossiblePoints int            `json:"total_possible_points"`
	Percentage          int            `json:"percentage"`
	// Degenerate is set when the assessment carries zero possible
	// points; the percentage is forced to 0 rather than dividing.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Grade scores a submission against the full assessment definition.
// It performs no I/O and is deterministic.
//
// Policy, deliberately:
//   - duplicate question IDs in the submission: the last occurrence wins
//   - answers referencing unknown question IDs are dropped silently
//   - choice questions are scored by exact set equality against the
//     correct option set; there is no partial credit
//   - open-ended answers score zero and stay ungraded for manual review
//   - every question counts toward the denominator, answered or not
func Grade(def *Assessment, submitted []SubmittedAnswer) (GradingOutcome, error) {
	if def == nil {
		return GradingOutcome{}, shared.ErrInvalidDefinition
	}
	if err := def.ValidateStructure(); err != nil {
		return GradingOutcome{}, err
	}

	questions := make(map[uuid.UUID]*Question, len(def.Questions))
	for i := range def.Questions {
		questions[def.Questions[i].ID] = &def.Questions[i]
	}

	// Last occurrence per question ID wins; order of survivors follows
	// the submission.
	lastIndex := make(map[uuid.UUID]int, len(submitted))
	for i, ans := range submitted {
		lastIndex[ans.QuestionID] = i
	}

	graded := make([]GradedAnswer, 0, len(submitted))
	score := 0

	for i, ans := range submitted {
		if lastIndex[ans.QuestionID] != i {
			continue // superseded by a later duplicate
		}
		question, ok := questions[ans.QuestionID]
		if !ok {
			continue // unknown question, dropped
		}

		ga := gradeAnswer(question, ans)
		score += ga.AwardedPoints
		graded = append(graded, ga)
	}

	total := def.TotalPossiblePoints()
	outcome := GradingOutcome{
		GradedAnswers:       graded,
		Score:               score,
		TotalPossiblePoints: total,
	}

	if total > 0 {
		outcome.Percentage = roundHalfUpPercent(score, total)
	} else {
		outcome.Percentage = 0
		outcome.Degenerate = true
	}

	return outcome, nil
}

func gradeAnswer(question *Question, ans SubmittedAnswer) GradedAnswer {
	graded := GradedAnswer{
		QuestionID:        ans.QuestionID,
		SelectedOptionIDs: ans.SelectedOptionIDs,
	}

	switch question.Kind {
	case MultipleChoice, TrueFalse:
		if selectionMatchesCorrectSet(question.Options, ans.SelectedOptionIDs) {
			graded.AwardedPoints = question.Points
			graded.Correctness = Correct
		} else {
			graded.AwardedPoints = 0
			graded.Correctness = Incorrect
		}
	case OpenEnded:
		graded.OpenAnswerText = ans.OpenAnswerText
		graded.AwardedPoints = 0
		graded.Correctness = Ungraded
	}

	return graded
}

// selectionMatchesCorrectSet compares the submitted selection, as a
// set, against exactly the options flagged correct.
func selectionMatchesCorrectSet(options []Option, selected []uuid.UUID) bool {
	correct := make(map[uuid.UUID]bool)
	for _, opt := range options {
		if opt.IsCorrect {
			correct[opt.ID] = true
		}
	}

	chosen := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	if len(chosen) != len(correct) {
		return false
	}
	for id := range chosen {
		if !correct[id] {
			return false
		}
	}
	return true
}

// roundHalfUpPercent computes round(100*score/total) with half-up
// rounding in integer arithmetic. total must be positive.
func roundHalfUpPercent(score, total int) int {
	return (200*score + total) / (2 * total)
}
