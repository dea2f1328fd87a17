package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// absenceColumns is the canonical SELECT column list for absences.
const absenceColumns = `id, staff_id, date, created_at`

// SQLiteAbsenceRepo implements AbsenceRepo using a SQLite database.
type SQLiteAbsenceRepo struct {
	db db.DBTX
}

// NewSQLiteAbsenceRepo creates a new SQLiteAbsenceRepo.
func NewSQLiteAbsenceRepo(dbtx db.DBTX) *SQLiteAbsenceRepo {
	return &SQLiteAbsenceRepo{db: dbtx}
}

func (r *SQLiteAbsenceRepo) Create(ctx context.Context, a *domain.Absence) error {
	query := `INSERT INTO absences (` + absenceColumns + `) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.StaffID,
		a.Date.Format(dateLayout),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting absence: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) List(ctx context.Context) ([]domain.Absence, error) {
	query := `SELECT ` + absenceColumns + ` FROM absences ORDER BY staff_id, date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing absences: %w", err)
	}
	defer rows.Close()
	return scanAbsences(rows)
}

func (r *SQLiteAbsenceRepo) ListByStaff(ctx context.Context, staffID string) ([]domain.Absence, error) {
	query := `SELECT ` + absenceColumns + ` FROM absences WHERE staff_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("listing absences by staff: %w", err)
	}
	defer rows.Close()
	return scanAbsences(rows)
}

func (r *SQLiteAbsenceRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM absences WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting absence: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) DeleteByStaffDate(ctx context.Context, staffID string, date time.Time) error {
	query := `DELETE FROM absences WHERE staff_id = ? AND date = ?`
	_, err := r.db.ExecContext(ctx, query, staffID, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting absence by staff and date: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) MaxCreatedAt(ctx context.Context) (*time.Time, error) {
	var s sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(created_at) FROM absences`).Scan(&s); err != nil {
		return nil, fmt.Errorf("querying absence max created_at: %w", err)
	}
	return parseNullableTime(s, time.RFC3339), nil
}

func scanAbsences(rows *sql.Rows) ([]domain.Absence, error) {
	var absences []domain.Absence
	for rows.Next() {
		var a domain.Absence
		var dateStr, createdAtStr string
		if err := rows.Scan(&a.ID, &a.StaffID, &dateStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning absence row: %w", err)
		}
		var parseErr error
		a.Date, parseErr = time.Parse(dateLayout, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing absence date: %w", parseErr)
		}
		a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating absences: %w", err)
	}
	return absences, nil
}
