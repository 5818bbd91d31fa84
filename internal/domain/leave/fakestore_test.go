package leave

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// fakeStore mirrors the store contract in memory: conditional
// check-and-decrement under one lock, approve as a single atomic unit.
type fakeStore struct {
	mu       sync.Mutex
	balances map[string]*Balance
	requests map[string]*Request
	seq      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		balances: map[string]*Balance{},
		requests: map[string]*Request{},
	}
}

func (f *fakeStore) addEmployee(id string, bal Balance) {
	bal.EmployeeID = id
	f.balances[id] = &bal
}

func remainingPtr(b *Balance, category Category) *int {
	switch category {
	case CategorySick:
		return &b.Sick
	case CategoryCasual:
		return &b.Casual
	case CategoryPaid:
		return &b.Paid
	case CategoryMaternity:
		return &b.Maternity
	}
	return nil
}

func (f *fakeStore) Balances(_ context.Context, employeeID string) (Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bal, ok := f.balances[employeeID]
	if !ok {
		return Balance{}, ErrEmployeeNotFound
	}
	return *bal, nil
}

func (f *fakeStore) ReserveDays(_ context.Context, employeeID string, category Category, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reserveLocked(employeeID, category, days)
}

func (f *fakeStore) reserveLocked(employeeID string, category Category, days int) error {
	if days <= 0 {
		return ErrNonPositiveDays
	}
	if category.column() == "" {
		return UnknownCategoryError{Category: string(category)}
	}
	bal, ok := f.balances[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	remaining := remainingPtr(bal, category)
	if *remaining < days {
		return InsufficientBalanceError{Category: category, Available: *remaining, Requested: days}
	}
	*remaining -= days
	return nil
}

func (f *fakeStore) RestoreDays(_ context.Context, employeeID string, category Category, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if days <= 0 {
		return ErrNonPositiveDays
	}
	if category.column() == "" {
		return UnknownCategoryError{Category: string(category)}
	}
	bal, ok := f.balances[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	*remainingPtr(bal, category) += days
	return nil
}

func (f *fakeStore) CreateRequest(_ context.Context, employeeID string, category Category, from, to time.Time, reason string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	days, err := ComputeDays(from, to)
	if err != nil {
		return Request{}, err
	}
	f.seq++
	req := Request{
		ID:         fmt.Sprintf("req-%d", f.seq),
		EmployeeID: employeeID,
		Category:   category,
		FromDate:   from,
		ToDate:     to,
		Days:       days,
		Reason:     reason,
		Status:     StatusPending,
		CreatedAt:  time.Now(),
	}
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeStore) RequestByID(_ context.Context, requestID string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	return *req, nil
}

func (f *fakeStore) ListByEmployee(_ context.Context, employeeID string) ([]Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FromDate.After(out[j].FromDate) })
	return out, nil
}

func (f *fakeStore) ListForReview(_ context.Context) ([]ReviewRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []ReviewRow
	for _, req := range f.requests {
		row := ReviewRow{Request: *req}
		if bal, ok := f.balances[req.EmployeeID]; ok {
			row.Available = *remainingPtr(bal, req.Category)
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		iPending := out[i].Status == StatusPending
		jPending := out[j].Status == StatusPending
		if iPending != jPending {
			return iPending
		}
		return out[i].FromDate.After(out[j].FromDate)
	})
	return out, nil
}

func (f *fakeStore) ApproveRequest(_ context.Context, requestID, adminID string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	if req.Status != StatusPending {
		return Request{}, ErrAlreadyResolved
	}
	if err := f.reserveLocked(req.EmployeeID, req.Category, req.Days); err != nil {
		return Request{}, err
	}
	req.Status = StatusApproved
	req.ResolvedBy = adminID
	return *req, nil
}

func (f *fakeStore) RejectRequest(_ context.Context, requestID, adminID, remarks string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	if req.Status != StatusPending {
		return Request{}, ErrAlreadyResolved
	}
	req.Status = StatusRejected
	req.ResolvedBy = adminID
	req.AdminRemarks = remarks
	return *req, nil
}
