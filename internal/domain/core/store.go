package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"leavedesk/internal/platform/querier"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("email already in use")
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) FindByEmail(ctx context.Context, email string) (Credentials, error) {
	var creds Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, role, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&creds.ID, &creds.Name, &creds.Email, &creds.Role, &creds.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, ErrEmployeeNotFound
	}
	return creds, err
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, role, created_at
    FROM users
    ORDER BY name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) ByID(ctx context.Context, id string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, role, created_at
    FROM users
    WHERE id = $1
  `, id).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return emp, err
}

// Create inserts the user and its default leave ledger row in one
// transaction, so an employee never exists without balances.
func (s *Store) Create(ctx context.Context, name, email, passwordHash, role string) (Employee, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var emp Employee
	err = tx.QueryRow(ctx, `
    INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, role, created_at
  `, name, email, passwordHash, role).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Employee{}, ErrEmailTaken
		}
		return Employee{}, err
	}

	if _, err := tx.Exec(ctx, "INSERT INTO leave_balances (user_id) VALUES ($1)", emp.ID); err != nil {
		return Employee{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) Update(ctx context.Context, id, name, email, role string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    UPDATE users
    SET name = $2, email = $3, role = $4
    WHERE id = $1
    RETURNING id, name, email, role, created_at
  `, id, name, email, role).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil && isUniqueViolation(err) {
		return Employee{}, ErrEmailTaken
	}
	return emp, err
}

// Delete removes the user; the leave requests and ledger row go with it via
// the foreign keys.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}
