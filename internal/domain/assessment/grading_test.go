package assessment

import (
	"errors"
	"testing"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	optA    = uuid.New()
	optB    = uuid.New()
	optC    = uuid.New()
	optTrue = uuid.New()
	optNo   = uuid.New()
	q1ID    = uuid.New()
	q2ID    = uuid.New()
	q3ID    = uuid.New()
)

// twoChoiceAssessment has Q1 (multiple choice, correct={A}, 1pt) and
// Q2 (true/false, correct={True}, 2pts).
func twoChoiceAssessment(t *testing.T) *Assessment {
	t.Helper()
	def, err := NewAssessment("Go Fundamentals", "", "Technology", "beginner", []Question{
		{
			ID:   q1ID,
			Text: "Which keyword declares a variable?",
			Kind: MultipleChoice,
			Options: []Option{
				{ID: optA, Text: "var", IsCorrect: true},
				{ID: optB, Text: "let"},
				{ID: optC, Text: "def"},
			},
			Points: 1,
		},
		{
			ID:   q2ID,
			Text: "Slices are reference types.",
			Kind: TrueFalse,
			Options: []Option{
				{ID: optTrue, Text: "True", IsCorrect: true},
				{ID: optNo, Text: "False"},
			},
			Points: 2,
		},
	})
	require.NoError(t, err)
	return def
}

func TestGrade_EndToEnd(t *testing.T) {
	def := twoChoiceAssessment(t)

	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optA}},
		{QuestionID: q2ID, SelectedOptionIDs: []uuid.UUID{optNo}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, 3, outcome.TotalPossiblePoints)
	assert.Equal(t, 33, outcome.Percentage)
	assert.False(t, outcome.Degenerate)

	require.Len(t, outcome.GradedAnswers, 2)
	assert.Equal(t, Correct, outcome.GradedAnswers[0].Correctness)
	assert.Equal(t, 1, outcome.GradedAnswers[0].AwardedPoints)
	assert.Equal(t, Incorrect, outcome.GradedAnswers[1].Correctness)
	assert.Equal(t, 0, outcome.GradedAnswers[1].AwardedPoints)
}

func TestGrade_Deterministic(t *testing.T) {
	def := twoChoiceAssessment(t)
	submission := []SubmittedAnswer{
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optA}},
		{QuestionID: q2ID, SelectedOptionIDs: []uuid.UUID{optTrue}},
	}

	first, err := Grade(def, submission)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Grade(def, submission)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGrade_NoPartialCredit(t *testing.T) {
	def := twoChoiceAssessment(t)

	// superset of the correct set
	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optA, optB}},
	})
	require.NoError(t, err)
	require.Len(t, outcome.GradedAnswers, 1)
	assert.Equal(t, Incorrect, outcome.GradedAnswers[0].Correctness)
	assert.Zero(t, outcome.Score)

	// empty selection
	outcome, err = Grade(def, []SubmittedAnswer{
		{QuestionID: q1ID, SelectedOptionIDs: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, Incorrect, outcome.GradedAnswers[0].Correctness)
}

func TestGrade_MultiCorrectSetEquality(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	qID := uuid.New()
	def, err := NewAssessment("Sets", "", "", "", []Question{
		{
			ID:   qID,
			Text: "Pick all reference types",
			Kind: MultipleChoice,
			Options: []Option{
				{ID: a, Text: "slice", IsCorrect: true},
				{ID: b, Text: "map", IsCorrect: true},
				{ID: c, Text: "int"},
			},
			Points: 2,
		},
	})
	require.NoError(t, err)

	// order does not matter, duplicates collapse
	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: qID, SelectedOptionIDs: []uuid.UUID{b, a, b}},
	})
	require.NoError(t, err)
	assert.Equal(t, Correct, outcome.GradedAnswers[0].Correctness)
	assert.Equal(t, 2, outcome.Score)

	// strict subset fails
	outcome, err = Grade(def, []SubmittedAnswer{
		{QuestionID: qID, SelectedOptionIDs: []uuid.UUID{a}},
	})
	require.NoError(t, err)
	assert.Equal(t, Incorrect, outcome.GradedAnswers[0].Correctness)
}

func TestGrade_DenominatorIncludesUnanswered(t *testing.T) {
	a1, a2 := uuid.New(), uuid.New()
	qa, qb := uuid.New(), uuid.New()
	def, err := NewAssessment("Two questions", "", "", "", []Question{
		{ID: qa, Text: "Q1", Kind: MultipleChoice, Options: []Option{{ID: a1, Text: "yes", IsCorrect: true}}, Points: 1},
		{ID: qb, Text: "Q2", Kind: MultipleChoice, Options: []Option{{ID: a2, Text: "yes", IsCorrect: true}}, Points: 1},
	})
	require.NoError(t, err)

	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: qa, SelectedOptionIDs: []uuid.UUID{a1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, 2, outcome.TotalPossiblePoints)
	assert.Equal(t, 50, outcome.Percentage)
	assert.Len(t, outcome.GradedAnswers, 1)
}

func TestGrade_UnknownQuestionDropped(t *testing.T) {
	def := twoChoiceAssessment(t)

	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: uuid.New(), SelectedOptionIDs: []uuid.UUID{optA}},
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optA}},
	})
	require.NoError(t, err)
	require.Len(t, outcome.GradedAnswers, 1)
	assert.Equal(t, q1ID, outcome.GradedAnswers[0].QuestionID)
	assert.Equal(t, 1, outcome.Score)
}

func TestGrade_DuplicateQuestionLastWins(t *testing.T) {
	def := twoChoiceAssessment(t)

	// first answer correct, later duplicate incorrect: the duplicate wins
	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optA}},
		{QuestionID: q2ID, SelectedOptionIDs: []uuid.UUID{optTrue}},
		{QuestionID: q1ID, SelectedOptionIDs: []uuid.UUID{optB}},
	})
	require.NoError(t, err)

	require.Len(t, outcome.GradedAnswers, 2)
	// survivors keep submission order of their last occurrence
	assert.Equal(t, q2ID, outcome.GradedAnswers[0].QuestionID)
	assert.Equal(t, q1ID, outcome.GradedAnswers[1].QuestionID)
	assert.Equal(t, Incorrect, outcome.GradedAnswers[1].Correctness)
	assert.Equal(t, 2, outcome.Score)
}

func TestGrade_OpenEndedUngraded(t *testing.T) {
	qID := uuid.New()
	other := uuid.New()
	otherOpt := uuid.New()
	def, err := NewAssessment("Mixed", "", "", "", []Question{
		{ID: other, Text: "choice", Kind: TrueFalse, Options: []Option{{ID: otherOpt, Text: "True", IsCorrect: true}}, Points: 1},
		{ID: qID, Text: "Describe interfaces", Kind: OpenEnded, Points: 3},
	})
	require.NoError(t, err)

	outcome, err := Grade(def, []SubmittedAnswer{
		{QuestionID: qID, OpenAnswerText: "An interface is a method set."},
	})
	require.NoError(t, err)

	require.Len(t, outcome.GradedAnswers, 1)
	graded := outcome.GradedAnswers[0]
	assert.Equal(t, Ungraded, graded.Correctness)
	assert.Zero(t, graded.AwardedPoints)
	assert.Equal(t, "An interface is a method set.", graded.OpenAnswerText)
	// open-ended points still count toward the denominator
	assert.Equal(t, 4, outcome.TotalPossiblePoints)
	assert.Zero(t, outcome.Score)
}

func TestGrade_EmptySubmission(t *testing.T) {
	def := twoChoiceAssessment(t)

	outcome, err := Grade(def, nil)
	require.NoError(t, err)
	assert.Empty(t, outcome.GradedAnswers)
	assert.Zero(t, outcome.Score)
	assert.Equal(t, 3, outcome.TotalPossiblePoints)
	assert.Zero(t, outcome.Percentage)
}

func TestGrade_DegenerateZeroTotal(t *testing.T) {
	// Only open-ended questions can carry zero weight after
	// construction-time validation, so build the degenerate shape
	// directly the way broken upstream data would.
	def := &Assessment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             "Degenerate",
		Questions: []Question{
			{ID: uuid.New(), Text: "Essay", Kind: OpenEnded, Points: 0},
		},
	}

	outcome, err := Grade(def, nil)
	require.NoError(t, err)
	assert.Zero(t, outcome.Percentage)
	assert.True(t, outcome.Degenerate)
}

func TestGrade_InvalidDefinition(t *testing.T) {
	// no questions at all
	empty := &Assessment{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Title: "Empty"}
	_, err := Grade(empty, nil)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_DEFINITION", domainErr.Code)

	// choice question with zero options
	broken := &Assessment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             "Broken",
		Questions: []Question{
			{ID: uuid.New(), Text: "Q", Kind: MultipleChoice, Points: 1},
		},
	}
	_, err = Grade(broken, nil)
	require.Error(t, err)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_DEFINITION", domainErr.Code)

	// nil definition
	_, err = Grade(nil, nil)
	assert.Error(t, err)
}

func TestGrade_RoundHalfUp(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 200, 1},  // 0.5 rounds up
		{0, 7, 0},
		{7, 7, 100},
		{5, 8, 63}, // 62.5 rounds up
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundHalfUpPercent(tc.score, tc.total),
			"round(100*%d/%d)", tc.score, tc.total)
	}
}
