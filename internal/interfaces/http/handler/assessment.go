package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appassessment "github.com/careernest/backend/internal/application/assessment"
	"github.com/careernest/backend/internal/application/catalog"
	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/interfaces/http/dto"
)

// AssessmentHandler handles assessment catalog and submission requests
type AssessmentHandler struct {
	BaseHandler
	catalogService    *catalog.AssessmentCatalogService
	submissionService *appassessment.SubmissionService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(catalogService *catalog.AssessmentCatalogService, submissionService *appassessment.SubmissionService) *AssessmentHandler {
	return &AssessmentHandler{
		catalogService:    catalogService,
		submissionService: submissionService,
	}
}

// OptionRequest represents one answer option when creating a question
type OptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest represents one question when creating an assessment
type QuestionRequest struct {
	Text    string          `json:"text" binding:"required"`
	Kind    string          `json:"kind" binding:"required,oneof=multiple_choice true_false open_ended"`
	Options []OptionRequest `json:"options"`
	Points  int             `json:"points" binding:"omitempty,min=1"`
}

// CreateAssessmentRequest represents the request body for creating an assessment
type CreateAssessmentRequest struct {
	Title            string            `json:"title" binding:"required,max=200"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Difficulty       string            `json:"difficulty"`
	TimeLimitSeconds int               `json:"time_limit_seconds" binding:"omitempty,min=0"`
	Questions        []QuestionRequest `json:"questions" binding:"required,min=1"`
}

// SubmittedAnswerRequest represents one answer in a submission
type SubmittedAnswerRequest struct {
	QuestionID        string   `json:"question_id" binding:"required,uuid"`
	SelectedOptionIDs []string `json:"selected_option_ids" binding:"omitempty,dive,uuid"`
	OpenAnswerText    string   `json:"open_answer_text"`
}

// SubmitAssessmentRequest represents the request body for a submission
type SubmitAssessmentRequest struct {
	Answers          []SubmittedAnswerRequest `json:"answers"`
	TimeTakenSeconds *int                     `json:"time_taken_seconds" binding:"omitempty,min=0"`
}

// Create godoc
// @Summary      Create assessment
// @Description  Store a full assessment definition, including correctness flags
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAssessmentRequest true "Assessment definition"
// @Success      201 {object} dto.Response{data=catalog.AssessmentDetailDTO}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /assessments [post]
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	questions := make([]assessment.Question, len(req.Questions))
	for i, q := range req.Questions {
		options := make([]assessment.Option, len(q.Options))
		for j, o := range q.Options {
			options[j] = assessment.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			}
		}
		questions[i] = assessment.Question{
			Text:    q.Text,
			Kind:    assessment.QuestionKind(q.Kind),
			Options: options,
			Points:  q.Points,
		}
	}

	def, err := h.catalogService.Create(c.Request.Context(), catalog.CreateAssessmentInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       req.Difficulty,
		TimeLimitSeconds: req.TimeLimitSeconds,
		Questions:        questions,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, def)
}

// List godoc
// @Summary      List assessments
// @Tags         assessments
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]catalog.AssessmentSummaryDTO}
// @Router       /assessments [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.catalogService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get assessment
// @Description  Returns the assessment with questions and options, without correctness flags
// @Tags         assessments
// @Produce      json
// @Param        id path string true "Assessment ID"
// @Success      200 {object} dto.Response{data=catalog.AssessmentDetailDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /assessments/{id} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid assessment ID")
		return
	}

	def, err := h.catalogService.GetByID(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, def)
}

// Submit godoc
// @Summary      Submit answers
// @Description  Grade a submission and persist the result
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Assessment ID"
// @Param        request body SubmitAssessmentRequest true "Answers"
// @Success      201 {object} dto.Response{data=appassessment.ResultDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /assessments/{id}/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid assessment ID")
		return
	}

	var req SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	// An explicitly empty answers array grades to zero; an absent one is
	// a malformed submission.
	if req.Answers == nil {
		h.BadRequest(c, "Field 'answers' is required")
		return
	}

	answers := make([]assessment.SubmittedAnswer, len(req.Answers))
	for i, a := range req.Answers {
		selected := make([]uuid.UUID, len(a.SelectedOptionIDs))
		for j, id := range a.SelectedOptionIDs {
			selected[j] = uuid.MustParse(id)
		}
		answers[i] = assessment.SubmittedAnswer{
			QuestionID:        uuid.MustParse(a.QuestionID),
			SelectedOptionIDs: selected,
			OpenAnswerText:    a.OpenAnswerText,
		}
	}

	result, err := h.submissionService.Submit(c.Request.Context(), appassessment.SubmitInput{
		UserID:           userID,
		AssessmentID:     uuid.MustParse(idReq.ID),
		Answers:          answers,
		TimeTakenSeconds: req.TimeTakenSeconds,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListResults godoc
// @Summary      List own results
// @Description  Return the authenticated user's result history, newest first
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=appassessment.ResultListDTO}
// @Router       /assessments/results [get]
func (h *AssessmentHandler) ListResults(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.submissionService.ListUserResults(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
