package leave

import "context"

// Ledger owns every mutation of per-employee leave balances. Requests only
// ever read through it; approval reserves through the store's transactional
// path.
type Ledger struct {
	store StoreAPI
}

func NewLedger(store StoreAPI) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Balances(ctx context.Context, employeeID string) (Balance, error) {
	return l.store.Balances(ctx, employeeID)
}

func (l *Ledger) Remaining(ctx context.Context, employeeID string, category Category) (int, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return 0, err
	}
	bal, err := l.store.Balances(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return bal.Remaining(category), nil
}

func (l *Ledger) Reserve(ctx context.Context, employeeID string, category Category, days int) error {
	return l.store.ReserveDays(ctx, employeeID, category, days)
}

func (l *Ledger) Restore(ctx context.Context, employeeID string, category Category, days int) error {
	return l.store.RestoreDays(ctx, employeeID, category, days)
}

// Adjust credits (positive days) or debits (negative days) a category.
// Debits go through Reserve so they can never push a balance negative.
func (l *Ledger) Adjust(ctx context.Context, employeeID, category string, days int) error {
	cat, err := ParseCategory(category)
	if err != nil {
		return err
	}
	switch {
	case days > 0:
		return l.store.RestoreDays(ctx, employeeID, cat, days)
	case days < 0:
		return l.store.ReserveDays(ctx, employeeID, cat, -days)
	}
	return ErrNonPositiveDays
}
