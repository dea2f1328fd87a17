package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS staff_members (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		skill      TEXT NOT NULL
		           CHECK(skill IN ('developer','qa','designer','analyst')),
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		client       TEXT NOT NULL DEFAULT '',
		skill        TEXT NOT NULL
		             CHECK(skill IN ('developer','qa','designer','analyst')),
		effort_hours INTEGER NOT NULL CHECK(effort_hours > 0),
		due_date     TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS absences (
		id         TEXT PRIMARY KEY,
		staff_id   TEXT NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_absences_staff_date ON absences(staff_id, date)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id                TEXT PRIMARY KEY,
		work_item_id      TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		staff_id          TEXT NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE,
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		hours             INTEGER NOT NULL,
		overdue           INTEGER NOT NULL DEFAULT 0,
		days_overdue      INTEGER NOT NULL DEFAULT 0,
		completed         INTEGER NOT NULL DEFAULT 0,
		completed_at      TEXT,
		completion_status TEXT NOT NULL DEFAULT ''
		                  CHECK(completion_status IN ('','on_time','late')),
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_schedule_entries_work_item ON schedule_entries(work_item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_staff ON schedule_entries(staff_id)`,

	// Version records deliberately carry no foreign keys: history must survive
	// deletion of the staff member, the work item, and the replaced entry.
	`CREATE TABLE IF NOT EXISTS version_records (
		id              TEXT PRIMARY KEY,
		prev_entry_id   TEXT,
		work_item_id    TEXT NOT NULL,
		staff_id        TEXT NOT NULL,
		staff_name      TEXT NOT NULL,
		work_item_title TEXT NOT NULL,
		change          TEXT NOT NULL CHECK(change IN ('rescheduled','reassigned')),
		old_start       TEXT NOT NULL,
		old_end         TEXT NOT NULL,
		new_start       TEXT NOT NULL,
		new_end         TEXT NOT NULL,
		delta_days      INTEGER NOT NULL,
		generation_id   TEXT NOT NULL,
		generated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_version_records_generation ON version_records(generation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_version_records_work_item ON version_records(work_item_id)`,
}
