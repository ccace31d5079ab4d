package usage

import "context"

// Service guards the generation endpoint with a per-user monthly quota.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one generation from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the generation is
// immediately consumed. Returns ErrQuotaExhausted when the quota for the
// current month is spent.
func (s *Service) Consume(ctx context.Context, uid string) error {
	err := s.store.Consume(ctx, uid)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid)
}

// Refund returns one generation after a consumed attempt failed to produce a
// plan, so upstream outages do not eat into the monthly allowance.
func (s *Service) Refund(ctx context.Context, uid string) error {
	return s.store.Refund(ctx, uid)
}
