package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/speech"
)

type SpeechHandler struct {
	capabilities speech.Capabilities
	synthesizer  speech.Synthesizer
}

type synthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func NewSpeechHandler(capabilities speech.Capabilities, synthesizer speech.Synthesizer) *SpeechHandler {
	return &SpeechHandler{capabilities: capabilities, synthesizer: synthesizer}
}

func (h *SpeechHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/speech/capabilities", h.Capabilities)
	g.POST("/speech/synthesize", h.Synthesize)
}

// Capabilities reports which server-side speech features are available.
// @Summary Speech capabilities
// @Tags speech
// @Produce json
// @Success 200 {object} speech.Capabilities
// @Router /speech/capabilities [get]
func (h *SpeechHandler) Capabilities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.capabilities)
}

// Synthesize renders text to MP3 audio.
// @Summary Synthesize speech
// @Tags speech
// @Accept json
// @Produce audio/mpeg
// @Param request body synthesizeRequest true "Synthesize request"
// @Success 200 {file} binary
// @Failure 400 {object} errorResponse
// @Failure 501 {object} errorResponse
// @Router /speech/synthesize [post]
func (h *SpeechHandler) Synthesize(c echo.Context) error {
	if !h.capabilities.Synthesis {
		return c.JSON(http.StatusNotImplemented, errorResponse{Error: "speech synthesis is not available"})
	}

	var req synthesizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	audio, err := speech.Speak(c.Request().Context(), h.synthesizer, req.Text, req.Language, speech.SpeakTimeout)
	if err != nil {
		return writeServiceError(c, err)
	}
	if len(audio) == 0 {
		// The synthesis timed out without producing audio; resolve with
		// no content rather than an error, per the playback contract.
		return c.NoContent(http.StatusNoContent)
	}
	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
