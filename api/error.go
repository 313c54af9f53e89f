package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	"github.com/rs/zerolog/log"
)

var ErrInternalServer = errors.New("internal server error")

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	Kind            string            `json:"kind"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		Kind:            string(apperror.KindInvalidInput),
		FieldViolations: violations,
	}
}

func errorResponse(kind apperror.Kind, err error) errorBody {
	return errorBody{Error: err.Error(), Kind: string(kind)}
}

// abortWithError writes err with the status of its kind.
// Internal errors are logged and never shown to the client.
func abortWithError(c *gin.Context, err error) {
	appErr := apperror.As(err)

	if appErr.Kind == apperror.KindInternal {
		log.Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(apperror.KindInternal, ErrInternalServer))
		return
	}

	c.AbortWithStatusJSON(appErr.StatusCode(), errorBody{Error: appErr.Message, Kind: string(appErr.Kind)})
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(apperror.KindInvalidInput, err))
}
