package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	AutoDetect     bool   `json:"autoDetect"`
	Method         string `json:"method"`
	UserID         string `json:"userId"`
	SessionID      string `json:"sessionId"`
}

type translateResponse struct {
	TranslatedText   string   `json:"translatedText"`
	SourceLanguage   string   `json:"sourceLanguage"`
	TargetLanguage   string   `json:"targetLanguage"`
	Confidence       float64  `json:"confidence"`
	Alternatives     []string `json:"alternatives"`
	DetectedLanguage string   `json:"detectedLanguage,omitempty"`
	Cached           bool     `json:"cached,omitempty"`
	Saved            bool     `json:"saved"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/translate", h.Status)
	g.DELETE("/translate/cache", h.ClearCache)
}

// Translate runs the translation pipeline.
// @Summary Translate text
// @Description Translate text between two languages, optionally auto-detecting the source language first.
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translate request"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Translate(c.Request().Context(), service.TranslateRequest{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		AutoDetect:     req.AutoDetect,
		Method:         req.Method,
		UserID:         req.UserID,
		SessionID:      req.SessionID,
	})
	if err != nil {
		return writeTranslateError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{
		TranslatedText:   result.TranslatedText,
		SourceLanguage:   result.SourceLanguage,
		TargetLanguage:   result.TargetLanguage,
		Confidence:       result.Confidence,
		Alternatives:     result.Alternatives,
		DetectedLanguage: result.DetectedLanguage,
		Cached:           result.Cached,
		Saved:            result.Saved,
	})
}

// Status reports whether the translation pipeline is usable.
// @Summary Translation service status
// @Tags translate
// @Produce json
// @Success 200 {object} service.TranslateStatus
// @Router /translate [get]
func (h *TranslateHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Status(c.Request().Context()))
}

// ClearCache drops all locally cached translations.
// @Summary Clear the translation cache
// @Tags translate
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} errorResponse
// @Router /translate/cache [delete]
func (h *TranslateHandler) ClearCache(c echo.Context) error {
	deleted, err := h.service.ClearCache(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}
