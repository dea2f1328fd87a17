package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// versionColumns is the canonical SELECT column list for version_records.
const versionColumns = `id, prev_entry_id, work_item_id, staff_id, staff_name, work_item_title,
		change, old_start, old_end, new_start, new_end, delta_days, generation_id, generated_at`

// SQLiteVersionRepo implements VersionRepo using a SQLite database.
// Version records are insert-only; there is no update or delete path.
type SQLiteVersionRepo struct {
	db db.DBTX
}

// NewSQLiteVersionRepo creates a new SQLiteVersionRepo.
func NewSQLiteVersionRepo(dbtx db.DBTX) *SQLiteVersionRepo {
	return &SQLiteVersionRepo{db: dbtx}
}

func (r *SQLiteVersionRepo) InsertBatch(ctx context.Context, records []domain.VersionRecord) error {
	query := `INSERT INTO version_records (` + versionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, v := range records {
		_, err := r.db.ExecContext(ctx, query,
			v.ID,
			v.PrevEntryID,
			v.WorkItemID,
			v.StaffID,
			v.StaffName,
			v.WorkItemTitle,
			string(v.Change),
			v.OldStart.Format(dateLayout),
			v.OldEnd.Format(dateLayout),
			v.NewStart.Format(dateLayout),
			v.NewEnd.Format(dateLayout),
			v.DeltaDays,
			v.GenerationID,
			v.GeneratedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting version record for work item %s: %w", v.WorkItemID, err)
		}
	}
	return nil
}

func (r *SQLiteVersionRepo) List(ctx context.Context, limit int) ([]domain.VersionRecord, error) {
	query := `SELECT ` + versionColumns + ` FROM version_records
		ORDER BY generated_at DESC, work_item_id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing version records: %w", err)
	}
	defer rows.Close()
	return scanVersionRecords(rows)
}

func (r *SQLiteVersionRepo) ListByGeneration(ctx context.Context, generationID string) ([]domain.VersionRecord, error) {
	query := `SELECT ` + versionColumns + ` FROM version_records
		WHERE generation_id = ? ORDER BY work_item_id`
	rows, err := r.db.QueryContext(ctx, query, generationID)
	if err != nil {
		return nil, fmt.Errorf("listing version records by generation: %w", err)
	}
	defer rows.Close()
	return scanVersionRecords(rows)
}

func (r *SQLiteVersionRepo) ListByWorkItem(ctx context.Context, workItemID string) ([]domain.VersionRecord, error) {
	query := `SELECT ` + versionColumns + ` FROM version_records
		WHERE work_item_id = ? ORDER BY generated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, workItemID)
	if err != nil {
		return nil, fmt.Errorf("listing version records by work item: %w", err)
	}
	defer rows.Close()
	return scanVersionRecords(rows)
}

func scanVersionRecords(rows *sql.Rows) ([]domain.VersionRecord, error) {
	var records []domain.VersionRecord
	for rows.Next() {
		var v domain.VersionRecord
		var changeStr, oldStartStr, oldEndStr, newStartStr, newEndStr, generatedAtStr string
		err := rows.Scan(
			&v.ID, &v.PrevEntryID, &v.WorkItemID, &v.StaffID, &v.StaffName, &v.WorkItemTitle,
			&changeStr, &oldStartStr, &oldEndStr, &newStartStr, &newEndStr,
			&v.DeltaDays, &v.GenerationID, &generatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning version record row: %w", err)
		}

		v.Change = domain.VersionChange(changeStr)
		var parseErr error
		if v.OldStart, parseErr = time.Parse(dateLayout, oldStartStr); parseErr != nil {
			return nil, fmt.Errorf("parsing old_start: %w", parseErr)
		}
		if v.OldEnd, parseErr = time.Parse(dateLayout, oldEndStr); parseErr != nil {
			return nil, fmt.Errorf("parsing old_end: %w", parseErr)
		}
		if v.NewStart, parseErr = time.Parse(dateLayout, newStartStr); parseErr != nil {
			return nil, fmt.Errorf("parsing new_start: %w", parseErr)
		}
		if v.NewEnd, parseErr = time.Parse(dateLayout, newEndStr); parseErr != nil {
			return nil, fmt.Errorf("parsing new_end: %w", parseErr)
		}
		if v.GeneratedAt, parseErr = time.Parse(time.RFC3339, generatedAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing generated_at: %w", parseErr)
		}
		records = append(records, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating version records: %w", err)
	}
	return records, nil
}
