package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, client, skill, effort_hours, due_date, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(dbtx db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: dbtx}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		w.Client,
		string(w.Skill),
		w.EffortHours,
		nullableTimeToString(w.DueDate, dateLayout),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var w domain.WorkItem
	var skillStr, createdAtStr, updatedAtStr string
	var dueDateStr sql.NullString
	err := row.Scan(&w.ID, &w.Title, &w.Client, &skillStr, &w.EffortHours, &dueDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}
	if err := populateWorkItem(&w, skillStr, dueDateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQLiteWorkItemRepo) List(ctx context.Context) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var items []*domain.WorkItem
	for rows.Next() {
		var w domain.WorkItem
		var skillStr, createdAtStr, updatedAtStr string
		var dueDateStr sql.NullString
		if err := rows.Scan(&w.ID, &w.Title, &w.Client, &skillStr, &w.EffortHours, &dueDateStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		if err := populateWorkItem(&w, skillStr, dueDateStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		items = append(items, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET title = ?, client = ?, skill = ?, effort_hours = ?, due_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.Title,
		w.Client,
		string(w.Skill),
		w.EffortHours,
		nullableTimeToString(w.DueDate, dateLayout),
		w.UpdatedAt.Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM work_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) MaxUpdatedAt(ctx context.Context) (*time.Time, error) {
	var s sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM work_items`).Scan(&s); err != nil {
		return nil, fmt.Errorf("querying work item max updated_at: %w", err)
	}
	return parseNullableTime(s, time.RFC3339), nil
}

func populateWorkItem(w *domain.WorkItem, skillStr string, dueDateStr sql.NullString, createdAtStr, updatedAtStr string) error {
	w.Skill = domain.Skill(skillStr)
	w.DueDate = parseNullableTime(dueDateStr, dateLayout)

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
