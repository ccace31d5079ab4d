// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/modules/plan"
	"wanderlust/internal/modules/trips"
	"wanderlust/internal/modules/usage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, plan.ErrStale):
		// A superseded generation is not a failure; the client already
		// moved on to a newer request.
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, usage.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	default:
		writeError(c, http.StatusBadGateway, "plan generation failed, please try again")
	}
}

func writeTripsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrStorageFull):
		writeError(c, http.StatusInsufficientStorage, "trip storage is full, delete a saved trip first")
	case errors.Is(err, trips.ErrCorruptData):
		writeError(c, http.StatusInternalServerError, "saved trips could not be read")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
