package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// scheduleColumns is the canonical SELECT column list for schedule_entries.
const scheduleColumns = `id, work_item_id, staff_id, start_date, end_date, hours,
		overdue, days_overdue, completed, completed_at, completion_status,
		created_at, updated_at`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(dbtx db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: dbtx}
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanScheduleEntry(row)
}

func (r *SQLiteScheduleRepo) GetByWorkItemID(ctx context.Context, workItemID string) (*domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE work_item_id = ?`
	row := r.db.QueryRowContext(ctx, query, workItemID)
	return scanScheduleEntry(row)
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries ORDER BY start_date, staff_id, work_item_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ScheduleEntry
	for rows.Next() {
		e, err := scanScheduleEntryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteScheduleRepo) ListCompletedWorkItemIDs(ctx context.Context) (map[string]bool, error) {
	query := `SELECT work_item_id FROM schedule_entries WHERE completed = 1`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing completed work item ids: %w", err)
	}
	defer rows.Close()

	completed := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning completed work item id: %w", err)
		}
		completed[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed work item ids: %w", err)
	}
	return completed, nil
}

func (r *SQLiteScheduleRepo) InsertBatch(ctx context.Context, entries []*domain.ScheduleEntry) error {
	query := `INSERT INTO schedule_entries (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			e.ID,
			e.WorkItemID,
			e.StaffID,
			e.StartDate.Format(dateLayout),
			e.EndDate.Format(dateLayout),
			e.Hours,
			boolToInt(e.Overdue),
			e.DaysOverdue,
			boolToInt(e.Completed),
			nullableTimeToString(e.CompletedAt, time.RFC3339),
			string(e.CompletionStatus),
			e.CreatedAt.Format(time.RFC3339),
			e.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting schedule entry for work item %s: %w", e.WorkItemID, err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `UPDATE schedule_entries SET staff_id = ?, start_date = ?, end_date = ?, hours = ?,
		overdue = ?, days_overdue = ?, completed = ?, completed_at = ?, completion_status = ?,
		updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.StaffID,
		e.StartDate.Format(dateLayout),
		e.EndDate.Format(dateLayout),
		e.Hours,
		boolToInt(e.Overdue),
		e.DaysOverdue,
		boolToInt(e.Completed),
		nullableTimeToString(e.CompletedAt, time.RFC3339),
		string(e.CompletionStatus),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule entry: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries`); err != nil {
		return fmt.Errorf("deleting schedule entries: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteNonCompleted(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE completed = 0`); err != nil {
		return fmt.Errorf("deleting non-completed schedule entries: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) MaxUpdatedAt(ctx context.Context) (*time.Time, error) {
	var s sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM schedule_entries`).Scan(&s); err != nil {
		return nil, fmt.Errorf("querying schedule max updated_at: %w", err)
	}
	return parseNullableTime(s, time.RFC3339), nil
}

func scanScheduleEntry(row *sql.Row) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var startStr, endStr, statusStr, createdAtStr, updatedAtStr string
	var completedAtStr sql.NullString
	var overdueInt, completedInt int

	err := row.Scan(
		&e.ID, &e.WorkItemID, &e.StaffID, &startStr, &endStr, &e.Hours,
		&overdueInt, &e.DaysOverdue, &completedInt, &completedAtStr, &statusStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule entry: %w", err)
	}
	return populateScheduleEntry(&e, startStr, endStr, statusStr, createdAtStr, updatedAtStr, completedAtStr, overdueInt, completedInt)
}

func scanScheduleEntryRow(rows *sql.Rows) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var startStr, endStr, statusStr, createdAtStr, updatedAtStr string
	var completedAtStr sql.NullString
	var overdueInt, completedInt int

	err := rows.Scan(
		&e.ID, &e.WorkItemID, &e.StaffID, &startStr, &endStr, &e.Hours,
		&overdueInt, &e.DaysOverdue, &completedInt, &completedAtStr, &statusStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning schedule entry row: %w", err)
	}
	return populateScheduleEntry(&e, startStr, endStr, statusStr, createdAtStr, updatedAtStr, completedAtStr, overdueInt, completedInt)
}

func populateScheduleEntry(
	e *domain.ScheduleEntry,
	startStr, endStr, statusStr, createdAtStr, updatedAtStr string,
	completedAtStr sql.NullString,
	overdueInt, completedInt int,
) (*domain.ScheduleEntry, error) {
	e.Overdue = intToBool(overdueInt)
	e.Completed = intToBool(completedInt)
	e.CompletionStatus = domain.CompletionStatus(statusStr)
	e.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

	var parseErr error
	e.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	e.EndDate, parseErr = time.Parse(dateLayout, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
