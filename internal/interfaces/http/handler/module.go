package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careernest/backend/internal/application/booking"
	"github.com/careernest/backend/internal/application/catalog"
	domaincatalog "github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/interfaces/http/dto"
)

// ModuleHandler handles learning module HTTP requests
type ModuleHandler struct {
	BaseHandler
	moduleService     *catalog.ModuleService
	completionService *booking.CompletionService
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(moduleService *catalog.ModuleService, completionService *booking.CompletionService) *ModuleHandler {
	return &ModuleHandler{
		moduleService:     moduleService,
		completionService: completionService,
	}
}

// ResourceRequest represents a supplementary resource reference
type ResourceRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
	Type  string `json:"type"`
}

// CreateModuleRequest represents the request body for creating a module
type CreateModuleRequest struct {
	Title         string            `json:"title" binding:"required,max=200"`
	Description   string            `json:"description"`
	Content       string            `json:"content" binding:"required"`
	EstimatedTime string            `json:"estimated_time"`
	Category      string            `json:"category"`
	Prerequisites []string          `json:"prerequisites" binding:"omitempty,dive,uuid"`
	Resources     []ResourceRequest `json:"resources"`
}

// CompleteModuleRequest represents the request body for completing a module
type CompleteModuleRequest struct {
	Feedback string `json:"feedback" binding:"omitempty,max=2000"`
	Rating   *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

// Create godoc
// @Summary      Create learning module
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateModuleRequest true "Module data"
// @Success      201 {object} dto.Response{data=catalog.ModuleDTO}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /modules [post]
func (h *ModuleHandler) Create(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	prerequisites := make([]uuid.UUID, len(req.Prerequisites))
	for i, id := range req.Prerequisites {
		prerequisites[i] = uuid.MustParse(id)
	}

	resources := make([]domaincatalog.Resource, len(req.Resources))
	for i, r := range req.Resources {
		resources[i] = domaincatalog.Resource{
			Title: r.Title,
			URL:   r.URL,
			Type:  domaincatalog.ResourceType(r.Type),
		}
	}

	module, err := h.moduleService.Create(c.Request.Context(), catalog.CreateModuleInput{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		EstimatedTime: req.EstimatedTime,
		Category:      req.Category,
		Prerequisites: prerequisites,
		Resources:     resources,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, module)
}

// List godoc
// @Summary      List learning modules
// @Description  Module content is omitted from list responses
// @Tags         modules
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]catalog.ModuleSummaryDTO}
// @Router       /modules [get]
func (h *ModuleHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.moduleService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get learning module
// @Tags         modules
// @Produce      json
// @Param        id path string true "Module ID"
// @Success      200 {object} dto.Response{data=catalog.ModuleDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /modules/{id} [get]
func (h *ModuleHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid module ID")
		return
	}

	module, err := h.moduleService.GetByID(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, module)
}

// Complete godoc
// @Summary      Complete a module
// @Description  Record completion; a repeat completion updates feedback and rating
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Module ID"
// @Param        request body CompleteModuleRequest true "Feedback"
// @Success      200 {object} dto.Response{data=booking.CompletionDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /modules/{id}/complete [post]
func (h *ModuleHandler) Complete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid module ID")
		return
	}

	// Feedback body is optional
	var req CompleteModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, "Invalid request body")
		return
	}

	completion, err := h.completionService.Complete(c.Request.Context(), booking.CompleteModuleInput{
		UserID:   userID,
		ModuleID: uuid.MustParse(idReq.ID),
		Feedback: req.Feedback,
		Rating:   req.Rating,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, completion)
}

// ListCompletions godoc
// @Summary      List completed modules
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=booking.CompletionListDTO}
// @Router       /modules/completions [get]
func (h *ModuleHandler) ListCompletions(c *gin.Context) {
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

	result, err := h.completionService.ListUserCompletions(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
