package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/shared"
)

// MockAssessmentRepository is a mock implementation of assessment.AssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assessment.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]assessment.Assessment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]assessment.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) Save(ctx context.Context, def *assessment.Assessment) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockAssessmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssessmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockResultRepository is a mock implementation of assessment.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) FindByID(ctx context.Context, id uuid.UUID) (*assessment.AssessmentResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assessment.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]assessment.AssessmentResult, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]assessment.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) Save(ctx context.Context, result *assessment.AssessmentResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestDefinition(t *testing.T) *assessment.Assessment {
	t.Helper()
	def, err := assessment.NewAssessment("Go basics", "Syntax", "programming", "beginner",
		[]assessment.Question{
			{
				Text: "Which keyword declares a variable?",
				Kind: assessment.MultipleChoice,
				Options: []assessment.Option{
					{Text: "var", IsCorrect: true},
					{Text: "let"},
				},
				Points: 1,
			},
			{
				Text: "Go has goroutines",
				Kind: assessment.TrueFalse,
				Options: []assessment.Option{
					{Text: "True", IsCorrect: true},
					{Text: "False"},
				},
				Points: 2,
			},
		})
	require.NoError(t, err)
	return def
}

func correctOptionID(t *testing.T, def *assessment.Assessment, questionIndex int) uuid.UUID {
	t.Helper()
	for _, opt := range def.Questions[questionIndex].Options {
		if opt.IsCorrect {
			return opt.ID
		}
	}
	t.Fatal("question has no correct option")
	return uuid.Nil
}

func TestSubmissionServiceSubmit(t *testing.T) {
	t.Run("grades and persists", func(t *testing.T) {
		def := newTestDefinition(t)
		defRepo := new(MockAssessmentRepository)
		defRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)

		resultRepo := new(MockResultRepository)
		resultRepo.On("Save", mock.Anything, mock.AnythingOfType("*assessment.AssessmentResult")).Return(nil)

		svc := NewSubmissionService(defRepo, resultRepo, zap.NewNop())
		userID := uuid.New()

		dto, err := svc.Submit(context.Background(), SubmitInput{
			UserID:       userID,
			AssessmentID: def.ID,
			Answers: []assessment.SubmittedAnswer{
				{QuestionID: def.Questions[0].ID, SelectedOptionIDs: []uuid.UUID{correctOptionID(t, def, 0)}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, dto.Score)
		assert.Equal(t, 3, dto.TotalPossiblePoints)
		assert.Equal(t, 33, dto.Percentage)
		require.Len(t, dto.GradedAnswers, 1)
		assert.Equal(t, assessment.Correct, dto.GradedAnswers[0].Correctness)
		resultRepo.AssertExpectations(t)
	})

	t.Run("unknown assessment", func(t *testing.T) {
		defRepo := new(MockAssessmentRepository)
		defRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		svc := NewSubmissionService(defRepo, new(MockResultRepository), zap.NewNop())
		_, err := svc.Submit(context.Background(), SubmitInput{
			UserID:       uuid.New(),
			AssessmentID: uuid.New(),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ASSESSMENT_NOT_FOUND", domainErr.Code)
	})

	t.Run("corrupt stored definition surfaces as server fault", func(t *testing.T) {
		// Hand-built definition bypassing the constructor, with no
		// questions at all.
		def := &assessment.Assessment{
			BaseAggregateRoot: shared.NewBaseAggregateRoot(),
			Title:             "broken",
		}
		defRepo := new(MockAssessmentRepository)
		defRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)

		resultRepo := new(MockResultRepository)
		svc := NewSubmissionService(defRepo, resultRepo, zap.NewNop())

		_, err := svc.Submit(context.Background(), SubmitInput{
			UserID:       uuid.New(),
			AssessmentID: def.ID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DEFINITION", domainErr.Code)
		resultRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("negative time taken rejected", func(t *testing.T) {
		def := newTestDefinition(t)
		defRepo := new(MockAssessmentRepository)
		defRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)

		svc := NewSubmissionService(defRepo, new(MockResultRepository), zap.NewNop())
		negative := -5
		_, err := svc.Submit(context.Background(), SubmitInput{
			UserID:           uuid.New(),
			AssessmentID:     def.ID,
			TimeTakenSeconds: &negative,
		})

		require.Error(t, err)
	})
}

func TestSubmissionServiceListUserResults(t *testing.T) {
	def := newTestDefinition(t)
	userID := uuid.New()

	outcome, err := assessment.Grade(def, nil)
	require.NoError(t, err)
	result, err := assessment.NewAssessmentResult(userID, def.ID, outcome, nil)
	require.NoError(t, err)

	resultRepo := new(MockResultRepository)
	filter := shared.DefaultFilter()
	resultRepo.On("FindByUser", mock.Anything, userID, filter).Return([]assessment.AssessmentResult{*result}, nil)
	resultRepo.On("CountByUser", mock.Anything, userID).Return(int64(1), nil)

	svc := NewSubmissionService(new(MockAssessmentRepository), resultRepo, zap.NewNop())
	list, err := svc.ListUserResults(context.Background(), userID, filter)

	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, def.ID, list.Results[0].AssessmentID)
	assert.Equal(t, int64(1), list.Total)
}
