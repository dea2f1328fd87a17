package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// staffColumns is the canonical SELECT column list for staff_members.
const staffColumns = `id, name, skill, active, created_at, updated_at`

// SQLiteStaffRepo implements StaffRepo using a SQLite database.
type SQLiteStaffRepo struct {
	db db.DBTX
}

// NewSQLiteStaffRepo creates a new SQLiteStaffRepo.
func NewSQLiteStaffRepo(dbtx db.DBTX) *SQLiteStaffRepo {
	return &SQLiteStaffRepo{db: dbtx}
}

func (r *SQLiteStaffRepo) Create(ctx context.Context, s *domain.StaffMember) error {
	query := `INSERT INTO staff_members (` + staffColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.Skill),
		boolToInt(s.Active),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting staff member: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanStaff(row)
}

func (r *SQLiteStaffRepo) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members ORDER BY created_at, id`
	if activeOnly {
		query = `SELECT ` + staffColumns + ` FROM staff_members WHERE active = 1 ORDER BY created_at, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing staff members: %w", err)
	}
	defer rows.Close()

	var members []*domain.StaffMember
	for rows.Next() {
		var s domain.StaffMember
		var skillStr, createdAtStr, updatedAtStr string
		var activeInt int
		if err := rows.Scan(&s.ID, &s.Name, &skillStr, &activeInt, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning staff member row: %w", err)
		}
		if err := populateStaff(&s, skillStr, activeInt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		members = append(members, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff members: %w", err)
	}
	return members, nil
}

func (r *SQLiteStaffRepo) Update(ctx context.Context, s *domain.StaffMember) error {
	query := `UPDATE staff_members SET name = ?, skill = ?, active = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		string(s.Skill),
		boolToInt(s.Active),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating staff member: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM staff_members WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting staff member: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) MaxUpdatedAt(ctx context.Context) (*time.Time, error) {
	var s sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM staff_members`).Scan(&s); err != nil {
		return nil, fmt.Errorf("querying staff max updated_at: %w", err)
	}
	return parseNullableTime(s, time.RFC3339), nil
}

func scanStaff(row *sql.Row) (*domain.StaffMember, error) {
	var s domain.StaffMember
	var skillStr, createdAtStr, updatedAtStr string
	var activeInt int
	err := row.Scan(&s.ID, &s.Name, &skillStr, &activeInt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("staff member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning staff member: %w", err)
	}
	if err := populateStaff(&s, skillStr, activeInt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func populateStaff(s *domain.StaffMember, skillStr string, activeInt int, createdAtStr, updatedAtStr string) error {
	s.Skill = domain.Skill(skillStr)
	s.Active = intToBool(activeInt)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
