package reports

import (
	"context"

	"leavedesk/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) BalanceSummary(ctx context.Context) ([]SummaryRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT
      u.id,
      u.name,
      u.email,
      lb.sick_leave,
      lb.casual_leave,
      lb.paid_leave,
      lb.maternity_leave,
      COALESCE(used.days, 0) AS used_days
    FROM users u
    JOIN leave_balances lb ON lb.user_id = u.id
    LEFT JOIN (
      SELECT user_id, SUM((to_date - from_date) + 1) AS days
      FROM leave_requests
      WHERE status = 'approved'
      GROUP BY user_id
    ) used ON used.user_id = u.id
    ORDER BY u.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []SummaryRow
	for rows.Next() {
		var row SummaryRow
		if err := rows.Scan(
			&row.EmployeeID,
			&row.Name,
			&row.Email,
			&row.Sick,
			&row.Casual,
			&row.Paid,
			&row.Maternity,
			&row.UsedDays,
		); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}
	return summary, rows.Err()
}
