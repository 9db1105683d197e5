package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type HistoryHandler struct {
	service service.HistoryService
}

type historyResponse struct {
	Translations []model.Translation `json:"translations"`
}

func NewHistoryHandler(service service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/history", h.List)
	g.DELETE("/history", h.Delete)
	g.GET("/history/export", h.Export)
}

// List returns stored translations, newest first.
// @Summary List translation history
// @Tags history
// @Produce json
// @Param userId query string false "Filter by user id"
// @Success 200 {object} historyResponse
// @Failure 500 {object} errorResponse
// @Router /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	translations, err := h.service.List(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, historyResponse{Translations: translations})
}

// Delete removes one stored translation. Deleting a record that is
// already gone still succeeds.
// @Summary Delete a history record
// @Tags history
// @Produce json
// @Param id query string true "Record id"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /history [delete]
func (h *HistoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Export returns everything stored for a user.
// @Summary Export a user's stored data
// @Tags history
// @Produce json
// @Param userId query string false "User id"
// @Success 200 {object} service.UserExport
// @Failure 500 {object} errorResponse
// @Router /history/export [get]
func (h *HistoryHandler) Export(c echo.Context) error {
	export, err := h.service.Export(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, export)
}
