// README: Saved-trip handlers for list/save/delete.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/modules/plan"
	"wanderlust/internal/modules/trips"
	"wanderlust/internal/types"
)

// MapImageFetcher produces an embeddable offline map image for a destination.
type MapImageFetcher interface {
	FetchOfflineAsset(ctx context.Context, destination string) (string, error)
}

type TripsHandler struct {
	trips    *trips.Service
	mapImage MapImageFetcher
}

func NewTripsHandler(tripsSvc *trips.Service, mapImage MapImageFetcher) *TripsHandler {
	return &TripsHandler{trips: tripsSvc, mapImage: mapImage}
}

// List handles GET /api/trips.
func (h *TripsHandler) List(c *gin.Context) {
	collection, err := h.trips.Load(c.Request.Context())
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, collection)
}

type saveTripReq struct {
	Form           types.TripForm `json:"formData"`
	Plan           plan.TripPlan  `json:"plan"`
	SaveOfflineMap bool           `json:"saveOfflineMap"`
}

// Save handles POST /api/trips. Saving the same destination and travel date
// again overwrites the earlier record instead of adding a duplicate.
func (h *TripsHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Form.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	cmd := trips.SaveCommand{Form: req.Form, Plan: req.Plan}
	if req.SaveOfflineMap && h.mapImage != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		asset, err := h.mapImage.FetchOfflineAsset(ctx, req.Form.Destination)
		cancel()
		if err != nil {
			// The trip is still worth saving without its map.
			log.Printf("offline map fetch failed for %q: %v", req.Form.Destination, err)
		} else {
			cmd.OfflineMapAsset = asset
		}
	}

	collection, err := h.trips.Save(c.Request.Context(), cmd)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, collection)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	collection, err := h.trips.Delete(c.Request.Context(), id)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, collection)
}
