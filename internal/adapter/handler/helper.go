package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/errors"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

// HandleError maps an error onto a JSON error response. AppError carries its
// own HTTP code; domain sentinels get mapped here; everything else is a 500.
func HandleError(c echo.Context, logger *zap.Logger, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError && logger != nil {
			logger.Error("❌ Request failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.JSON(appErr.HTTPCode, appErr)
	}

	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return c.JSON(http.StatusNotFound, errors.ErrNotFound("meeting"))
	case stdErrors.Is(err, entities.ErrInvalidRequest):
		return c.JSON(http.StatusBadRequest, errors.ErrInvalidPayload())
	}

	if logger != nil {
		logger.Error("❌ Request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, errors.ErrInternal(err))
}

// HandleSuccess sends a JSON success response
func HandleSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}
