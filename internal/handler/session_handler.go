package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type SessionHandler struct {
	service service.SessionService
}

type sessionsResponse struct {
	Sessions []model.ConversationSession `json:"sessions"`
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sessions", h.Save)
	g.GET("/sessions", h.List)
	g.DELETE("/sessions/:id", h.Delete)
}

// Save persists a completed conversation session.
// @Summary Save a conversation session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body model.ConversationSession true "Completed session"
// @Success 200 {object} model.ConversationSession
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /sessions [post]
func (h *SessionHandler) Save(c echo.Context) error {
	var session model.ConversationSession
	if err := c.Bind(&session); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	saved, err := h.service.Save(c.Request().Context(), session)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// List returns stored conversation sessions, newest first.
// @Summary List conversation sessions
// @Tags sessions
// @Produce json
// @Param userId query string false "Filter by user id"
// @Success 200 {object} sessionsResponse
// @Failure 500 {object} errorResponse
// @Router /sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.service.List(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sessionsResponse{Sessions: sessions})
}

// Delete removes one stored session.
// @Summary Delete a conversation session
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
