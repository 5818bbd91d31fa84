package leave

import (
	"context"
	"time"
)

// StoreAPI is the persistence contract for the ledger and the request
// lifecycle. Reserve and restore must be atomic read-modify-write
// operations; ApproveRequest must treat the status flip and the balance
// decrement as one transaction.
type StoreAPI interface {
	Balances(ctx context.Context, employeeID string) (Balance, error)
	ReserveDays(ctx context.Context, employeeID string, category Category, days int) error
	RestoreDays(ctx context.Context, employeeID string, category Category, days int) error

	CreateRequest(ctx context.Context, employeeID string, category Category, from, to time.Time, reason string) (Request, error)
	RequestByID(ctx context.Context, requestID string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListForReview(ctx context.Context) ([]ReviewRow, error)
	ApproveRequest(ctx context.Context, requestID, adminID string) (Request, error)
	RejectRequest(ctx context.Context, requestID, adminID, remarks string) (Request, error)
}
