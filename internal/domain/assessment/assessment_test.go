package assessment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions() []Question {
	return []Question{
		{
			Text: "Pick one",
			Kind: MultipleChoice,
			Options: []Option{
				{Text: "right", IsCorrect: true},
				{Text: "wrong"},
			},
		},
	}
}

func TestNewAssessment(t *testing.T) {
	def, err := NewAssessment("Go Basics", "desc", "Technology", "beginner", validQuestions())
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", def.Title)
	require.Len(t, def.Questions, 1)
	// IDs are assigned, points default to 1
	assert.NotEqual(t, uuid.Nil, def.Questions[0].ID)
	assert.Equal(t, 1, def.Questions[0].Points)
	assert.NotEqual(t, uuid.Nil, def.Questions[0].Options[0].ID)
	require.NoError(t, def.ValidateStructure())
}

func TestNewAssessment_NoQuestions(t *testing.T) {
	_, err := NewAssessment("Go Basics", "", "", "", nil)
	assert.Error(t, err)
}

func TestNewAssessment_DuplicateQuestionIDs(t *testing.T) {
	id := uuid.New()
	qs := []Question{
		{ID: id, Text: "Q1", Kind: OpenEnded},
		{ID: id, Text: "Q2", Kind: OpenEnded},
	}
	_, err := NewAssessment("Go Basics", "", "", "", qs)
	assert.Error(t, err)
}

func TestNewAssessment_ChoiceWithoutOptions(t *testing.T) {
	_, err := NewAssessment("Go Basics", "", "", "", []Question{
		{Text: "Q", Kind: MultipleChoice},
	})
	assert.Error(t, err)
}

func TestNewAssessment_ChoiceWithoutCorrectOption(t *testing.T) {
	_, err := NewAssessment("Go Basics", "", "", "", []Question{
		{Text: "Q", Kind: TrueFalse, Options: []Option{{Text: "True"}, {Text: "False"}}},
	})
	assert.Error(t, err)
}

func TestNewAssessment_UnknownKind(t *testing.T) {
	_, err := NewAssessment("Go Basics", "", "", "", []Question{
		{Text: "Q", Kind: "matching"},
	})
	assert.Error(t, err)
}

func TestNewAssessment_OpenEndedDropsOptions(t *testing.T) {
	def, err := NewAssessment("Go Basics", "", "", "", []Question{
		{Text: "Essay", Kind: OpenEnded, Options: []Option{{Text: "ignored", IsCorrect: true}}},
	})
	require.NoError(t, err)
	assert.Nil(t, def.Questions[0].Options)
}

func TestAssessment_TotalPossiblePoints(t *testing.T) {
	def, err := NewAssessment("Weighted", "", "", "", []Question{
		{Text: "Q1", Kind: OpenEnded, Points: 3},
		{Text: "Q2", Kind: OpenEnded}, // defaults to 1
	})
	require.NoError(t, err)
	assert.Equal(t, 4, def.TotalPossiblePoints())
}

func TestAssessment_SetTimeLimit(t *testing.T) {
	def, _ := NewAssessment("Go Basics", "", "", "", validQuestions())
	require.NoError(t, def.SetTimeLimit(600))
	assert.Equal(t, 600, def.TimeLimitSeconds)
	assert.Error(t, def.SetTimeLimit(-1))
}

func TestAssessment_QuestionByID(t *testing.T) {
	def, _ := NewAssessment("Go Basics", "", "", "", validQuestions())
	q := def.QuestionByID(def.Questions[0].ID)
	require.NotNil(t, q)
	assert.Nil(t, def.QuestionByID(uuid.New()))
}

func TestNewAssessmentResult(t *testing.T) {
	outcome := GradingOutcome{Score: 2, TotalPossiblePoints: 3, Percentage: 67}
	userID, assessmentID := uuid.New(), uuid.New()

	result, err := NewAssessmentResult(userID, assessmentID, outcome, nil)
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, 67, result.Percentage)
	assert.False(t, result.CompletedAt.IsZero())

	_, err = NewAssessmentResult(uuid.Nil, assessmentID, outcome, nil)
	assert.Error(t, err)

	negative := -5
	_, err = NewAssessmentResult(userID, assessmentID, outcome, &negative)
	assert.Error(t, err)
}
