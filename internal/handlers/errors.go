package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fuel_station_app/internal/apperrors"
	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
	"github.com/SscSPs/fuel_station_app/internal/utils/validation"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its status code and a safe message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Failed to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}

// respondBindError rejects a request body or query that failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + validation.Describe(err)})
}

// actorFromContext returns the authenticated actor or writes 401.
func actorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok || actor.UserID == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

func isCleanupError(err error) bool {
	var cleanupErr *apperrors.CleanupError
	return errors.As(err, &cleanupErr)
}
