// README: Trip record service; in-memory mirror over one durable record.
package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"wanderlust/internal/modules/plan"
	"wanderlust/internal/types"
)

// SaveCommand carries one save request. Destination and travel date come from
// the form snapshot. An empty OfflineMapAsset preserves whatever asset an
// overwritten record already had; set ClearOfflineAsset to drop it.
type SaveCommand struct {
	Form              types.TripForm
	Plan              plan.TripPlan
	OfflineMapAsset   string
	ClearOfflineAsset bool
}

// Service owns the saved-trip collection. The durable record is read once,
// after which the in-memory mirror is the source of truth for reads; every
// mutation rewrites the whole record in a single put and only reaches the
// mirror once that put succeeds. Reads under the mirror
// are safe for concurrent handlers, but two processes sharing the same
// durable key race last-writer-wins, exactly like two browser tabs on one
// storage slot.
type Service struct {
	storage Storage

	mu     sync.Mutex
	trips  []SavedTrip
	loaded bool
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Load returns the full collection, reading the durable record on first use.
// An unreadable or undecodable record is a surfaced error, never an empty
// list: silent fallback here would make corruption look like "no saved
// trips". The store does not sort; recency ordering is a presentation
// concern.
func (s *Service) Load(ctx context.Context) ([]SavedTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Save upserts by (destination, travelDateKey) identity. An existing record
// is overwritten in place with its id preserved and timestamp refreshed; a
// new identity appends with a fresh id. The updated collection is flushed in
// one write and returned.
func (s *Service) Save(ctx context.Context, cmd SaveCommand) ([]SavedTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	record := SavedTrip{
		Timestamp:       time.Now(),
		Destination:     cmd.Form.Destination,
		TravelDateKey:   cmd.Form.TravelDate,
		Form:            cmd.Form,
		Plan:            cmd.Plan,
		OfflineMapAsset: cmd.OfflineMapAsset,
	}

	// The mutation is staged on a copy; the mirror only takes it once the
	// durable write lands, so a blocked save never shows up in reads.
	next := s.snapshot()
	replaced := false
	for i := range next {
		if !next[i].sameIdentity(record.Destination, record.TravelDateKey) {
			continue
		}
		record.ID = next[i].ID
		if record.OfflineMapAsset == "" && !cmd.ClearOfflineAsset {
			record.OfflineMapAsset = next[i].OfflineMapAsset
		}
		next[i] = record
		replaced = true
		break
	}
	if !replaced {
		record.ID = uuid.NewString()
		next = append(next, record)
	}

	if err := s.flush(ctx, next); err != nil {
		return nil, err
	}
	s.trips = next
	return s.snapshot(), nil
}

// Delete removes a record by id and flushes. An unknown id is a no-op
// returning the collection unchanged.
func (s *Service) Delete(ctx context.Context, id string) ([]SavedTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	for i := range s.trips {
		if s.trips[i].ID != id {
			continue
		}
		next := make([]SavedTrip, 0, len(s.trips)-1)
		next = append(next, s.trips[:i]...)
		next = append(next, s.trips[i+1:]...)
		if err := s.flush(ctx, next); err != nil {
			return nil, err
		}
		s.trips = next
		break
	}
	return s.snapshot(), nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	data, err := s.storage.Read(ctx)
	if err != nil {
		return fmt.Errorf("read saved trips: %w", err)
	}
	if len(data) > 0 {
		var trips []SavedTrip
		if err := json.Unmarshal(data, &trips); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		s.trips = trips
	}
	s.loaded = true
	return nil
}

func (s *Service) flush(ctx context.Context, trips []SavedTrip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encode saved trips: %w", err)
	}
	if err := s.storage.Write(ctx, data); err != nil {
		return fmt.Errorf("write saved trips: %w", err)
	}
	return nil
}

func (s *Service) snapshot() []SavedTrip {
	out := make([]SavedTrip, len(s.trips))
	copy(out, s.trips)
	return out
}
