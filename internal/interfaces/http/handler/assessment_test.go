package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	appassessment "github.com/careernest/backend/internal/application/assessment"
	catalogapp "github.com/careernest/backend/internal/application/catalog"
	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/interfaces/http/middleware"
)

// MockAssessmentRepository implements assessment.AssessmentRepository for testing
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

// MockResultRepository implements assessment.ResultRepository for testing
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

// Test setup helpers

var testUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Stand-in for the auth middleware: every request runs as testUserID.
	router.Use(func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, testUserID.String())
		c.Set(middleware.AuthUsernameKey, "morgan")
		c.Next()
	})
	return router
}

func setupAssessmentHandler(assessmentRepo *MockAssessmentRepository, resultRepo *MockResultRepository) *AssessmentHandler {
	logger := zap.NewNop()
	catalogService := catalogapp.NewAssessmentCatalogService(assessmentRepo, logger)
	submissionService := appassessment.NewSubmissionService(assessmentRepo, resultRepo, logger)
	return NewAssessmentHandler(catalogService, submissionService)
}

// createTestAssessment builds a two-question definition with stable IDs
// so submissions can reference them.
func createTestAssessment(t *testing.T) *assessment.Assessment {
	t.Helper()
	questions := []assessment.Question{
		{
			ID:   uuid.MustParse("10000000-0000-0000-0000-000000000001"),
			Text: "Which languages compile to machine code?",
			Kind: assessment.MultipleChoice,
			Options: []assessment.Option{
				{ID: uuid.MustParse("20000000-0000-0000-0000-000000000001"), Text: "Go", IsCorrect: true},
				{ID: uuid.MustParse("20000000-0000-0000-0000-000000000002"), Text: "Rust", IsCorrect: true},
				{ID: uuid.MustParse("20000000-0000-0000-0000-000000000003"), Text: "Python", IsCorrect: false},
			},
			Points: 2,
		},
		{
			ID:   uuid.MustParse("10000000-0000-0000-0000-000000000002"),
			Text: "HTTP is stateless.",
			Kind: assessment.TrueFalse,
			Options: []assessment.Option{
				{ID: uuid.MustParse("20000000-0000-0000-0000-000000000004"), Text: "True", IsCorrect: true},
				{ID: uuid.MustParse("20000000-0000-0000-0000-000000000005"), Text: "False", IsCorrect: false},
			},
			Points: 1,
		},
	}
	def, err := assessment.NewAssessment("Backend Basics", "Fundamentals check", "engineering", "beginner", questions)
	assert.NoError(t, err)
	return def
}

// Tests

func TestAssessmentHandler_Get_RedactsCorrectness(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	def := createTestAssessment(t)
	assessmentRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)

	router := setupTestRouter()
	router.GET("/assessments/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+def.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Which languages compile to machine code?")
	assert.Contains(t, body, "Go")
	// Correctness flags must never reach the wire before submission.
	assert.NotContains(t, body, "is_correct")
	assessmentRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Get_NotFound(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	missingID := uuid.New()
	assessmentRepo.On("FindByID", mock.Anything, missingID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/assessments/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+missingID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assessmentRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Get_InvalidID(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	router := setupTestRouter()
	router.GET("/assessments/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/assessments/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessmentHandler_Create_Success(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	assessmentRepo.On("Save", mock.Anything, mock.AnythingOfType("*assessment.Assessment")).Return(nil)

	router := setupTestRouter()
	router.POST("/assessments", handler.Create)

	reqBody := CreateAssessmentRequest{
		Title:      "Backend Basics",
		Category:   "engineering",
		Difficulty: "beginner",
		Questions: []QuestionRequest{
			{
				Text: "HTTP is stateless.",
				Kind: "true_false",
				Options: []OptionRequest{
					{Text: "True", IsCorrect: true},
					{Text: "False"},
				},
			},
		},
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assessmentRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Create_InvalidJSON(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	router := setupTestRouter()
	router.POST("/assessments", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessmentHandler_Submit_Success(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	def := createTestAssessment(t)
	assessmentRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)
	resultRepo.On("Save", mock.Anything, mock.AnythingOfType("*assessment.AssessmentResult")).Return(nil)

	router := setupTestRouter()
	router.POST("/assessments/:id/submit", handler.Submit)

	reqBody := SubmitAssessmentRequest{
		Answers: []SubmittedAnswerRequest{
			{
				QuestionID: "10000000-0000-0000-0000-000000000001",
				SelectedOptionIDs: []string{
					"20000000-0000-0000-0000-000000000001",
					"20000000-0000-0000-0000-000000000002",
				},
			},
			{
				QuestionID:        "10000000-0000-0000-0000-000000000002",
				SelectedOptionIDs: []string{"20000000-0000-0000-0000-000000000005"},
			},
		},
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/assessments/"+def.ID.String()+"/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data appassessment.ResultDTO `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Score)
	assert.Equal(t, 3, resp.Data.TotalPossiblePoints)
	assert.Equal(t, 67, resp.Data.Percentage)
	assessmentRepo.AssertExpectations(t)
	resultRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Submit_MissingAnswers(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	router := setupTestRouter()
	router.POST("/assessments/:id/submit", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/assessments/"+uuid.NewString()+"/submit", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assessmentRepo.AssertNotCalled(t, "FindByID")
}

func TestAssessmentHandler_Submit_EmptyAnswers(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	def := createTestAssessment(t)
	assessmentRepo.On("FindByID", mock.Anything, def.ID).Return(def, nil)
	resultRepo.On("Save", mock.Anything, mock.AnythingOfType("*assessment.AssessmentResult")).Return(nil)

	router := setupTestRouter()
	router.POST("/assessments/:id/submit", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/assessments/"+def.ID.String()+"/submit", bytes.NewBufferString(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data appassessment.ResultDTO `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Score)
	assert.Equal(t, 3, resp.Data.TotalPossiblePoints)
	assert.Equal(t, 0, resp.Data.Percentage)
	assessmentRepo.AssertExpectations(t)
	resultRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Submit_AssessmentNotFound(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	missingID := uuid.New()
	assessmentRepo.On("FindByID", mock.Anything, missingID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.POST("/assessments/:id/submit", handler.Submit)

	body, _ := json.Marshal(SubmitAssessmentRequest{Answers: []SubmittedAnswerRequest{}})
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+missingID.String()+"/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assessmentRepo.AssertExpectations(t)
}

func TestAssessmentHandler_Submit_Unauthenticated(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/assessments/:id/submit", handler.Submit)

	body, _ := json.Marshal(SubmitAssessmentRequest{})
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+uuid.NewString()+"/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssessmentHandler_ListResults_Success(t *testing.T) {
	assessmentRepo := new(MockAssessmentRepository)
	resultRepo := new(MockResultRepository)
	handler := setupAssessmentHandler(assessmentRepo, resultRepo)

	resultRepo.On("FindByUser", mock.Anything, testUserID, mock.AnythingOfType("shared.Filter")).
		Return([]assessment.AssessmentResult{}, nil)
	resultRepo.On("CountByUser", mock.Anything, testUserID).Return(int64(0), nil)

	router := setupTestRouter()
	router.GET("/assessments/results", handler.ListResults)

	req := httptest.NewRequest(http.MethodGet, "/assessments/results", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resultRepo.AssertExpectations(t)
}
