package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontohr/backend-go/internal/domain/absence"
	"github.com/pontohr/backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepository{db: db}
}

const absenceColumns = `
	a.id, a.employee_id, a.company_id, a.date, a.reason,
	a.document_url, a.status, a.created_at, a.updated_at, e.full_name
`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date, &a.Reason,
		&a.DocumentURL, &a.Status, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
	)
	return a, err
}

// Create implements absence.Repository.
func (r *absenceRepository) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (employee_id, company_id, date, reason, document_url, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.CompanyID, a.Date, a.Reason, a.DocumentURL, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return a, nil
}

// GetByID implements absence.Repository.
func (r *absenceRepository) GetByID(ctx context.Context, id string, companyID string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.company_id = $2
	`

	a, err := scanAbsence(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to get absence: %w", err)
	}

	return a, nil
}

func (r *absenceRepository) list(ctx context.Context, query string, args ...interface{}) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read absences: %w", err)
	}

	return absences, nil
}

// ListForEmployee implements absence.Repository.
func (r *absenceRepository) ListForEmployee(ctx context.Context, employeeID, companyID string) ([]absence.Absence, error) {
	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.company_id = $2
		ORDER BY a.date DESC
	`
	return r.list(ctx, query, employeeID, companyID)
}

// ListForCompany implements absence.Repository.
func (r *absenceRepository) ListForCompany(ctx context.Context, companyID string) ([]absence.Absence, error) {
	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1
		ORDER BY a.date DESC
	`
	return r.list(ctx, query, companyID)
}

// ListForCompanyInPeriod implements absence.Repository. Bounds are inclusive,
// matching the report period contract.
func (r *absenceRepository) ListForCompanyInPeriod(ctx context.Context, companyID string, from, to time.Time) ([]absence.Absence, error) {
	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1
		  AND a.date >= $2
		  AND a.date <= $3
		ORDER BY a.date ASC
	`
	return r.list(ctx, query, companyID, from, to)
}

// UpdateStatus implements absence.Repository.
func (r *absenceRepository) UpdateStatus(ctx context.Context, id string, status absence.Status) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING employee_id, company_id, date, reason, document_url, status, created_at, updated_at
	`

	a := absence.Absence{ID: id}
	err := q.QueryRow(ctx, query, id, status).Scan(
		&a.EmployeeID, &a.CompanyID, &a.Date, &a.Reason,
		&a.DocumentURL, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to update absence status: %w", err)
	}

	return a, nil
}
