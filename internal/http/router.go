package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "lingua/backend/docs"
	"lingua/backend/internal/handler"
)

func NewRouter(
	translateHandler *handler.TranslateHandler,
	languageHandler *handler.LanguageHandler,
	historyHandler *handler.HistoryHandler,
	sessionHandler *handler.SessionHandler,
	speechHandler *handler.SpeechHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORS())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	translateHandler.RegisterRoutes(api)
	languageHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)
	sessionHandler.RegisterRoutes(api)
	speechHandler.RegisterRoutes(api)

	return e
}
