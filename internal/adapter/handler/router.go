package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/http/middleware"
	"github.com/meetwise-team/meeting-pipeline/pkg/config"
	"github.com/meetwise-team/meeting-pipeline/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	pipelineHandler *PipelineHandler
	meetingHandler  *MeetingHandler
	jwtManager      *jwt.Manager
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, pipelineHandler *PipelineHandler, meetingHandler *MeetingHandler, jwtManager *jwt.Manager) *Router {
	return &Router{
		cfg:             cfg,
		pipelineHandler: pipelineHandler,
		meetingHandler:  meetingHandler,
		jwtManager:      jwtManager,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	// Webhook authenticates by HMAC signature inside the handler, not by
	// service token
	webhooks := v1.Group("/webhooks")
	webhooks.POST("/meetings-processing", rt.pipelineHandler.HandleTrigger)

	meetings := v1.Group("/meetings", middleware.EchoServiceAuth(rt.jwtManager))
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
