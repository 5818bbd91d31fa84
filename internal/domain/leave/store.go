package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"leavedesk/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// requestColumns is the canonical select list for leave_requests. The day
// span is always recomputed from the dates, never stored.
const requestColumns = `
  id, user_id, leave_type, from_date, to_date,
  (to_date - from_date) + 1 AS days,
  reason, status, COALESCE(admin_remarks, ''), COALESCE(resolved_by::text, ''), created_at`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(&req.ID, &req.EmployeeID, &req.Category, &req.FromDate, &req.ToDate,
		&req.Days, &req.Reason, &req.Status, &req.AdminRemarks, &req.ResolvedBy, &req.CreatedAt)
	return req, err
}

func (s *Store) Balances(ctx context.Context, employeeID string) (Balance, error) {
	bal := Balance{EmployeeID: employeeID}
	err := s.DB.QueryRow(ctx, `
    SELECT sick_leave, casual_leave, paid_leave, maternity_leave
    FROM leave_balances
    WHERE user_id = $1
  `, employeeID).Scan(&bal.Sick, &bal.Casual, &bal.Paid, &bal.Maternity)
	if errors.Is(err, pgx.ErrNoRows) {
		return Balance{}, ErrEmployeeNotFound
	}
	if err != nil {
		return Balance{}, err
	}
	return bal, nil
}

func (s *Store) ReserveDays(ctx context.Context, employeeID string, category Category, days int) error {
	return reserveDays(ctx, s.DB, employeeID, category, days)
}

// reserveDays is the single atomic check-and-decrement: the conditional
// update either consumes the days or touches no row. Two concurrent
// reserves can never both pass a balance that only fits one.
func reserveDays(ctx context.Context, q querier.Querier, employeeID string, category Category, days int) error {
	if days <= 0 {
		return ErrNonPositiveDays
	}
	col := category.column()
	if col == "" {
		return UnknownCategoryError{Category: string(category)}
	}

	tag, err := q.Exec(ctx, fmt.Sprintf(`
    UPDATE leave_balances
    SET %s = %s - $2, updated_at = now()
    WHERE user_id = $1 AND %s >= $2
  `, col, col, col), employeeID, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var available int
	err = q.QueryRow(ctx, fmt.Sprintf("SELECT %s FROM leave_balances WHERE user_id = $1", col), employeeID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEmployeeNotFound
	}
	if err != nil {
		return err
	}
	return InsufficientBalanceError{Category: category, Available: available, Requested: days}
}

func (s *Store) RestoreDays(ctx context.Context, employeeID string, category Category, days int) error {
	if days <= 0 {
		return ErrNonPositiveDays
	}
	col := category.column()
	if col == "" {
		return UnknownCategoryError{Category: string(category)}
	}

	tag, err := s.DB.Exec(ctx, fmt.Sprintf(`
    UPDATE leave_balances
    SET %s = %s + $2, updated_at = now()
    WHERE user_id = $1
  `, col, col), employeeID, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) CreateRequest(ctx context.Context, employeeID string, category Category, from, to time.Time, reason string) (Request, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (user_id, leave_type, from_date, to_date, reason, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING`+requestColumns, employeeID, category, from, to, reason, StatusPending)
	return scanRequest(row)
}

func (s *Store) RequestByID(ctx context.Context, requestID string) (Request, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx, `
    SELECT`+requestColumns+`
    FROM leave_requests
    WHERE id = $1
  `, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrRequestNotFound
	}
	return req, err
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+requestColumns+`
    FROM leave_requests
    WHERE user_id = $1
    ORDER BY from_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *Store) ListForReview(ctx context.Context) ([]ReviewRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT lr.id, lr.user_id, lr.leave_type, lr.from_date, lr.to_date,
           (lr.to_date - lr.from_date) + 1 AS days,
           lr.reason, lr.status, COALESCE(lr.admin_remarks, ''), COALESCE(lr.resolved_by::text, ''), lr.created_at,
           u.name,
           COALESCE(CASE lr.leave_type
             WHEN 'sick' THEN b.sick_leave
             WHEN 'casual' THEN b.casual_leave
             WHEN 'paid' THEN b.paid_leave
             WHEN 'maternity' THEN b.maternity_leave
           END, 0) AS available_leaves
    FROM leave_requests lr
    JOIN users u ON lr.user_id = u.id
    LEFT JOIN leave_balances b ON lr.user_id = b.user_id
    ORDER BY (lr.status = 'pending') DESC, lr.from_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReviewRow
	for rows.Next() {
		var row ReviewRow
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.Category, &row.FromDate, &row.ToDate,
			&row.Days, &row.Reason, &row.Status, &row.AdminRemarks, &row.ResolvedBy, &row.CreatedAt,
			&row.EmployeeName, &row.Available); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ApproveRequest flips pending -> approved and reserves the day span in one
// transaction. If the balance no longer covers the span the transaction
// rolls back and the request stays pending.
func (s *Store) ApproveRequest(ctx context.Context, requestID, adminID string) (Request, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Request{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := scanRequest(tx.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $2, resolved_by = $3, resolved_at = now()
    WHERE id = $1 AND status = $4
    RETURNING`+requestColumns, requestID, StatusApproved, adminID, StatusPending))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, s.resolveConflict(ctx, requestID)
	}
	if err != nil {
		return Request{}, err
	}

	if err := reserveDays(ctx, tx, req.EmployeeID, req.Category, req.Days); err != nil {
		return Request{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) RejectRequest(ctx context.Context, requestID, adminID, remarks string) (Request, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $2, resolved_by = $3, resolved_at = now(), admin_remarks = $4
    WHERE id = $1 AND status = $5
    RETURNING`+requestColumns, requestID, StatusRejected, adminID, remarks, StatusPending))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, s.resolveConflict(ctx, requestID)
	}
	return req, err
}

// resolveConflict distinguishes "no such request" from "already resolved"
// after a conditional update touched no row.
func (s *Store) resolveConflict(ctx context.Context, requestID string) error {
	var status string
	err := s.DB.QueryRow(ctx, "SELECT status FROM leave_requests WHERE id = $1", requestID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyResolved
}
