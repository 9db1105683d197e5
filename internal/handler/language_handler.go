package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type LanguageHandler struct {
	service service.LanguageService
}

type languagesResponse struct {
	Languages []model.Language `json:"languages"`
}

func NewLanguageHandler(service service.LanguageService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

// List returns the language catalog.
// @Summary List supported languages
// @Description Languages come from the object store; the built-in reference list is served when the store is empty or unreachable.
// @Tags languages
// @Produce json
// @Success 200 {object} languagesResponse
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, languagesResponse{
		Languages: h.service.List(c.Request().Context()),
	})
}
