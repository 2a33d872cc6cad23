package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careernest/backend/internal/application/booking"
	"github.com/careernest/backend/internal/interfaces/http/dto"
)

// SessionHandler handles mentorship session lifecycle requests.
// Booking itself lives on the mentor routes.
type SessionHandler struct {
	BaseHandler
	sessionService *booking.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *booking.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// List godoc
// @Summary      List own sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=booking.SessionListDTO}
// @Router       /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
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

	result, err := h.sessionService.ListUserSessions(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Cancel godoc
// @Summary      Cancel a session
// @Description  Cancel an owned scheduled session, freeing its slot
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.Response{data=booking.SessionDTO}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sessions/{id}/cancel [put]
func (h *SessionHandler) Cancel(c *gin.Context) {
	h.transition(c, h.sessionService.Cancel)
}

// Complete godoc
// @Summary      Complete a session
// @Description  Mark an owned scheduled session as completed
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.Response{data=booking.SessionDTO}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sessions/{id}/complete [put]
func (h *SessionHandler) Complete(c *gin.Context) {
	h.transition(c, h.sessionService.Complete)
}

func (h *SessionHandler) transition(c *gin.Context, apply func(ctx context.Context, userID, sessionID uuid.UUID) (*booking.SessionDTO, error)) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := apply(c.Request.Context(), userID, uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}
