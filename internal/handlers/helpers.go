package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/middleware"
	"homeledger/internal/models"
	"homeledger/internal/uuid"
	"homeledger/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error middleware.ErrorBody `json:"error"`
}

// MessageResponse represents a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// getCaller returns the AppUser resolved by the access middleware.
// Returns ErrUnauthorized if not present.
func getCaller(c *gin.Context) (*models.AppUser, error) {
	user := middleware.CallerFrom(c)
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid id.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// queryID reads an optional UUID query parameter.
func queryID(c *gin.Context, name string) (*string, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fieldError(name, "must be a valid id")
	}
	return &id, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(name, "must be a whole number")
	}
	return n, nil
}

// queryDate accepts YYYY-MM-DD or RFC 3339.
func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fieldError(name, "must be a date (YYYY-MM-DD)")
}

// bindJSON decodes the body into dst. Decoding failures are reported as a
// validation error; field rules are checked by the services.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperrors.NewValidationError(validator.FieldErrors(err))
	}
	return nil
}

func fieldError(field, message string) error {
	return apperrors.NewValidationError([]apperrors.FieldError{{Field: field, Message: message}})
}

// respondWithError writes the standard error envelope for err.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}
