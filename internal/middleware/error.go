package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/logger"
)

// ErrorBody is the inner object of every error response.
type ErrorBody struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Fields      []apperrors.FieldError `json:"fields,omitempty"`
	RawResponse string                 `json:"raw_response,omitempty"`
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. It only writes when nothing
// else has written a response yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		RespondError(c, c.Errors.Last().Err)
	}
}

// RespondError writes err in the standard envelope. AppErrors keep their
// status and code with a localized message; anything else is logged and
// reported as an internal error without details.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error": ErrorBody{
			Code:        appErr.Code,
			Message:     translate(c, appErr.Code, appErr.Message),
			Fields:      appErr.Fields,
			RawResponse: appErr.RawResponse,
		},
	})
}
