package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/careernest/backend/internal/application/booking"
	"github.com/careernest/backend/internal/application/catalog"
	"github.com/careernest/backend/internal/interfaces/http/dto"
)

// CareerHandler handles career catalog HTTP requests
type CareerHandler struct {
	BaseHandler
	careerService   *catalog.CareerService
	bookmarkService *booking.BookmarkService
}

// NewCareerHandler creates a new career handler
func NewCareerHandler(careerService *catalog.CareerService, bookmarkService *booking.BookmarkService) *CareerHandler {
	return &CareerHandler{
		careerService:   careerService,
		bookmarkService: bookmarkService,
	}
}

// CreateCareerRequest represents the request body for creating a career
type CreateCareerRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryMin    float64  `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax    float64  `json:"salary_max" binding:"omitempty,min=0"`
	Currency     string   `json:"currency" binding:"omitempty,len=3"`
	Skills       []string `json:"skills"`
	Demand       string   `json:"demand"`
	GrowthRate   string   `json:"growth_rate"`
	Categories   []string `json:"categories"`
}

// Create godoc
// @Summary      Create career
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCareerRequest true "Career data"
// @Success      201 {object} dto.Response{data=catalog.CareerDTO}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /careers [post]
func (h *CareerHandler) Create(c *gin.Context) {
	var req CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	career, err := h.careerService.Create(c.Request.Context(), catalog.CreateCareerInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    decimal.NewFromFloat(req.SalaryMin),
		SalaryMax:    decimal.NewFromFloat(req.SalaryMax),
		Currency:     req.Currency,
		Skills:       req.Skills,
		Demand:       req.Demand,
		GrowthRate:   req.GrowthRate,
		Categories:   req.Categories,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, career)
}

// List godoc
// @Summary      List careers
// @Tags         careers
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search in title and description"
// @Success      200 {object} dto.Response{data=[]catalog.CareerDTO}
// @Router       /careers [get]
func (h *CareerHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.careerService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get career
// @Tags         careers
// @Produce      json
// @Param        id path string true "Career ID"
// @Success      200 {object} dto.Response{data=catalog.CareerDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /careers/{id} [get]
func (h *CareerHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid career ID")
		return
	}

	career, err := h.careerService.GetByID(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, career)
}

// ToggleBookmark godoc
// @Summary      Toggle career bookmark
// @Description  Bookmark the career, or remove the bookmark if present
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Career ID"
// @Success      200 {object} dto.Response{data=booking.ToggleResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /careers/{id}/bookmark [post]
func (h *CareerHandler) ToggleBookmark(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid career ID")
		return
	}

	result, err := h.bookmarkService.Toggle(c.Request.Context(), userID, uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListBookmarks godoc
// @Summary      List bookmarked careers
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]catalog.CareerDTO}
// @Router       /careers/bookmarks [get]
func (h *CareerHandler) ListBookmarks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	careers, err := h.bookmarkService.ListBookmarkedCareers(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, careers)
}
