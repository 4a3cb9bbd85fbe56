package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// APIResponse is the envelope used for error responses. Metric payloads are
// returned bare so the dashboard consumes them directly.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error maps an application error onto its HTTP representation:
// ValidationError -> 400, NotFoundError -> 404, UpstreamError -> 502 with
// the upstream payload preserved, StorageError and everything else -> 500.
func Error(c *gin.Context, err error) {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: ve.Message,
			Errors:  ve.Fields,
		})
		return
	}

	var ne *apperror.NotFoundError
	if errors.As(err, &ne) {
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Message: ne.Error(),
		})
		return
	}

	var ue *apperror.UpstreamError
	if errors.As(err, &ue) {
		log.Error().Err(err).Msg("upstream service error")
		// Preserve the upstream payload verbatim; fall back to a string
		// when the upstream body is not valid JSON.
		var details interface{}
		if json.Valid(ue.Payload) {
			details = ue.Payload
		} else if len(ue.Payload) > 0 {
			details = string(ue.Payload)
		}
		c.JSON(http.StatusBadGateway, APIResponse{
			Success: false,
			Message: "Upstream service error",
			Errors:  details,
		})
		return
	}

	// Storage failures and unknowns: log the cause, never leak it.
	log.Error().Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: "Internal server error",
	})
}

// BadRequest sends a 400 response with a custom message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: message})
}

// Created sends a 201 response with the given payload
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK sends a 200 response with the given payload
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
