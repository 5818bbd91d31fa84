package leave

import (
	"context"
	"time"
)

// Service is the request lifecycle manager: it validates submissions against
// the ledger and drives the pending -> approved/rejected transitions.
type Service struct {
	store  StoreAPI
	ledger *Ledger
}

func NewService(store StoreAPI, ledger *Ledger) *Service {
	return &Service{store: store, ledger: ledger}
}

// Submit validates the span and the category, checks the balance without
// reserving it, and creates a pending request. The days are reserved at
// approval time, so rejection needs no restore step.
func (s *Service) Submit(ctx context.Context, employeeID, category string, from, to time.Time, reason string) (Request, error) {
	days, err := ComputeDays(from, to)
	if err != nil {
		return Request{}, err
	}

	cat, err := ParseCategory(category)
	if err != nil {
		return Request{}, err
	}

	available, err := s.ledger.Remaining(ctx, employeeID, cat)
	if err != nil {
		return Request{}, err
	}
	if available < days {
		return Request{}, InsufficientBalanceError{Category: cat, Available: available, Requested: days}
	}

	return s.store.CreateRequest(ctx, employeeID, cat, midnight(from), midnight(to), reason)
}

// Approve re-checks the balance at approval time, not against the
// submission-time snapshot: the store flips the status and reserves the
// span as one atomic unit. A request whose balance has since been consumed
// stays pending and the caller gets the insufficient-balance failure.
func (s *Service) Approve(ctx context.Context, requestID, adminID string) (Request, error) {
	return s.store.ApproveRequest(ctx, requestID, adminID)
}

// Reject resolves a pending request with no balance effect; the balance was
// never decremented at submission.
func (s *Service) Reject(ctx context.Context, requestID, adminID, remarks string) (Request, error) {
	return s.store.RejectRequest(ctx, requestID, adminID, remarks)
}

func (s *Service) Balances(ctx context.Context, employeeID string) (Balance, error) {
	return s.ledger.Balances(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, requestID string) (Request, error) {
	return s.store.RequestByID(ctx, requestID)
}

// ListByEmployee returns one employee's requests, newest leave first.
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// ListForReview returns all requests for admin review, pending entries
// ahead of resolved ones.
func (s *Service) ListForReview(ctx context.Context) ([]ReviewRow, error) {
	return s.store.ListForReview(ctx)
}
