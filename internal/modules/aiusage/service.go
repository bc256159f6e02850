package aiusage

import "context"

// Service keeps a per-user ledger of successful model generations. It is
// observability for operators, not a quota: callers record best-effort and
// must never fail a request on a ledger error.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record tallies one generation for uid in the current month.
func (s *Service) Record(ctx context.Context, uid string) error {
	return s.store.Increment(ctx, uid)
}

// MonthlyCount reports uid's generation count for the current month.
func (s *Service) MonthlyCount(ctx context.Context, uid string) (int, error) {
	return s.store.MonthlyCount(ctx, uid)
}
