package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/careernest/backend/internal/application/booking"
	"github.com/careernest/backend/internal/application/catalog"
	domaincatalog "github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/interfaces/http/dto"
)

// MentorHandler handles mentor catalog and scheduling HTTP requests
type MentorHandler struct {
	BaseHandler
	mentorService  *catalog.MentorService
	sessionService *booking.SessionService
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(mentorService *catalog.MentorService, sessionService *booking.SessionService) *MentorHandler {
	return &MentorHandler{
		mentorService:  mentorService,
		sessionService: sessionService,
	}
}

// AvailabilitySlotRequest represents a weekly availability window
type AvailabilitySlotRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
}

// CreateMentorRequest represents the request body for creating a mentor
type CreateMentorRequest struct {
	Name              string                    `json:"name" binding:"required,max=200"`
	Title             string                    `json:"title"`
	Company           string                    `json:"company"`
	Bio               string                    `json:"bio"`
	Expertise         []string                  `json:"expertise"`
	YearsOfExperience int                       `json:"years_of_experience" binding:"omitempty,min=0"`
	HourlyRate        float64                   `json:"hourly_rate" binding:"omitempty,min=0"`
	Currency          string                    `json:"currency" binding:"omitempty,len=3"`
	ProfilePicture    string                    `json:"profile_picture"`
	Availability      []AvailabilitySlotRequest `json:"availability"`
}

// ScheduleSessionRequest represents the request body for booking a session
type ScheduleSessionRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
	Notes     string `json:"notes" binding:"omitempty,max=2000"`
}

// Create godoc
// @Summary      Create mentor
// @Tags         mentors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMentorRequest true "Mentor data"
// @Success      201 {object} dto.Response{data=catalog.MentorDTO}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /mentors [post]
func (h *MentorHandler) Create(c *gin.Context) {
	var req CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	availability := make([]domaincatalog.AvailabilitySlot, len(req.Availability))
	for i, slot := range req.Availability {
		availability[i] = domaincatalog.AvailabilitySlot{
			DayOfWeek: time.Weekday(slot.DayOfWeek),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	mentor, err := h.mentorService.Create(c.Request.Context(), catalog.CreateMentorInput{
		Name:              req.Name,
		Title:             req.Title,
		Company:           req.Company,
		Bio:               req.Bio,
		Expertise:         req.Expertise,
		YearsOfExperience: req.YearsOfExperience,
		HourlyRate:        decimal.NewFromFloat(req.HourlyRate),
		Currency:          req.Currency,
		ProfilePicture:    req.ProfilePicture,
		Availability:      availability,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, mentor)
}

// List godoc
// @Summary      List mentors
// @Tags         mentors
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search in name, title and company"
// @Success      200 {object} dto.Response{data=[]catalog.MentorDTO}
// @Router       /mentors [get]
func (h *MentorHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.mentorService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get mentor
// @Tags         mentors
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Success      200 {object} dto.Response{data=catalog.MentorDTO}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /mentors/{id} [get]
func (h *MentorHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid mentor ID")
		return
	}

	mentor, err := h.mentorService.GetByID(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, mentor)
}

// Schedule godoc
// @Summary      Book a mentorship session
// @Description  Book a slot within the mentor's weekly availability
// @Tags         mentors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Mentor ID"
// @Param        request body ScheduleSessionRequest true "Session slot"
// @Success      201 {object} dto.Response{data=booking.SessionDTO}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /mentors/{id}/schedule [post]
func (h *MentorHandler) Schedule(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid mentor ID")
		return
	}

	var req ScheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	session, err := h.sessionService.Schedule(c.Request.Context(), booking.ScheduleInput{
		UserID:    userID,
		MentorID:  uuid.MustParse(idReq.ID),
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}
