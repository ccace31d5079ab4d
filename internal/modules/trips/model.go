// README: Saved trip records and store error definitions.
package trips

import (
	"errors"
	"time"

	"wanderlust/internal/modules/plan"
	"wanderlust/internal/types"
)

var (
	// ErrStorageFull is returned when a write would exceed the capacity
	// ceiling of the durable record. The save is blocked, nothing is lost.
	ErrStorageFull = errors.New("trip storage full")

	// ErrCorruptData is returned when the durable record exists but cannot
	// be decoded. It propagates so corruption is never mistaken for an
	// empty collection.
	ErrCorruptData = errors.New("saved trips record is corrupt")
)

// SavedTrip is one persisted trip. Identity is the (destination,
// travelDateKey) pair: re-saving the same pair overwrites the record in place
// keeping its id, while a new pair appends a new record.
type SavedTrip struct {
	ID              string         `json:"id"`
	Timestamp       time.Time      `json:"timestamp"`
	Destination     string         `json:"destination"`
	TravelDateKey   string         `json:"travelDateKey"`
	Form            types.TripForm `json:"formData"`
	Plan            plan.TripPlan  `json:"plan"`
	OfflineMapAsset string         `json:"offlineMapAsset,omitempty"`
}

// sameIdentity reports whether two records describe the same trip.
func (t SavedTrip) sameIdentity(destination, travelDateKey string) bool {
	return t.Destination == destination && t.TravelDateKey == travelDateKey
}
