package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/pontohr/backend-go/internal/pkg/database"
)

type punchEventRepository struct {
	db *database.DB
}

func NewPunchEventRepository(db *database.DB) timetracking.Repository {
	return &punchEventRepository{db: db}
}

// Create implements timetracking.Repository. Punch events are append-only;
// there is deliberately no update or delete.
func (r *punchEventRepository) Create(ctx context.Context, p timetracking.PunchEvent) (timetracking.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (employee_id, company_id, kind, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, p.EmployeeID, p.CompanyID, p.Kind, p.Timestamp).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return timetracking.PunchEvent{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return p, nil
}

func (r *punchEventRepository) scanEvents(rows pgx.Rows) ([]timetracking.PunchEvent, error) {
	defer rows.Close()

	var events []timetracking.PunchEvent
	for rows.Next() {
		var p timetracking.PunchEvent
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Kind, &p.Timestamp, &p.CreatedAt, &p.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch events: %w", err)
	}

	return events, nil
}

// ListForEmployee implements timetracking.Repository. The period bounds are
// inclusive on both ends; results come back in ascending timestamp order.
func (r *punchEventRepository) ListForEmployee(ctx context.Context, employeeID, companyID string, from, to time.Time) ([]timetracking.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.company_id, p.kind, p.timestamp, p.created_at, e.full_name
		FROM punch_events p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.company_id = $2
		  AND p.timestamp >= $3
		  AND p.timestamp <= $4
		ORDER BY p.timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}

	return r.scanEvents(rows)
}

// ListForCompany implements timetracking.Repository.
func (r *punchEventRepository) ListForCompany(ctx context.Context, companyID string, from, to time.Time) ([]timetracking.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.company_id, p.kind, p.timestamp, p.created_at, e.full_name
		FROM punch_events p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.company_id = $1
		  AND p.timestamp >= $2
		  AND p.timestamp <= $3
		ORDER BY p.timestamp ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}

	return r.scanEvents(rows)
}
