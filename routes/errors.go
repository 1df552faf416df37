package routes

import (
	"errors"
	"net/http"

	"englishcoach/middlewares"
	"englishcoach/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error kinds reported in the "kind" field of error bodies.
const (
	KindInvalidInput     = "invalid_input"
	KindGenerationFailed = "generation_failed"
	KindNoJSON           = "no_json"
	KindMalformedJSON    = "malformed_json"
	KindSchemaViolation  = "schema_violation"
)

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "kind": KindInvalidInput})
		return false
	}
	return true
}

func respondError(c *gin.Context, use services.UseCase, err error) {
	status, kind := classify(err)
	body := gin.H{"error": services.UserMessage(use, err), "kind": kind}

	var perr *services.ParseError
	if errors.As(err, &perr) && perr.Field != "" {
		body["field"] = perr.Field
	}
	if status >= http.StatusInternalServerError {
		log.Warn().Err(err).Str("request_id", middlewares.GetRequestID(c)).
			Str("use_case", string(use)).Msg("practice request failed")
	}
	c.JSON(status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, KindInvalidInput
	case errors.Is(err, services.ErrNoJSON):
		return http.StatusUnprocessableEntity, KindNoJSON
	case errors.Is(err, services.ErrMalformedJSON):
		return http.StatusUnprocessableEntity, KindMalformedJSON
	case errors.Is(err, services.ErrSchemaViolation):
		return http.StatusUnprocessableEntity, KindSchemaViolation
	default:
		return http.StatusBadGateway, KindGenerationFailed
	}
}
