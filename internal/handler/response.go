package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "INTERNAL"})
	}
}

// writeTranslateError maps the pipeline failure taxonomy onto distinct
// user-facing messages and machine codes. Validation is the only 400;
// everything else is the provider's or our fault.
func writeTranslateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ai.ErrMissingAPIKey):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "translation service is not configured: no API key is set",
			Code:  "MISSING_API_KEY",
		})
	case errors.Is(err, ai.ErrInvalidAPIKey):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "translation service is misconfigured: the API key is malformed",
			Code:  "INVALID_API_KEY",
		})
	case errors.Is(err, ai.ErrMissingModel), errors.Is(err, ai.ErrMissingBaseURL), errors.Is(err, ai.ErrInvalidProvider):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "translation service is misconfigured",
			Code:  "CONFIG_ERROR",
		})
	case errors.Is(err, ai.ErrAuthFailed):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "the translation provider rejected the configured credentials",
			Code:  "AUTH_FAILED",
		})
	case errors.Is(err, ai.ErrRateLimited):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "the translation provider is rate limiting requests, please try again shortly",
			Code:  "RATE_LIMITED",
		})
	case errors.Is(err, ai.ErrUnavailable):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "the translation provider is temporarily unavailable",
			Code:  "UPSTREAM_UNAVAILABLE",
		})
	case errors.Is(err, ai.ErrTimeout):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "the translation request timed out",
			Code:  "TIMEOUT",
		})
	case errors.Is(err, ai.ErrNetwork):
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "could not reach the translation provider",
			Code:  "NETWORK_ERROR",
		})
	default:
		logger.Error("translate failed", "module", "handler", "action", "translate", "resource", "http", "result", "failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "translation failed, please try again",
			Code:  "TRANSLATION_FAILED",
		})
	}
}
