/*
Package sqlite provides a SQLite-backed roster.Store.

PURPOSE:
  Production persistence for the membership roll, settings, work-hour
  ledger, encumbrances, billing records, the eligibility audit log, and
  the waitlist. The same patterns apply to PostgreSQL with minor SQL
  dialect differences.

KEY TABLES:
  members:          The membership roll
  settings:         Raw key/value dues configuration, parsed by the engine
  work_hours:       Volunteer hour entries with approval state
  encumbrances:     Disciplinary holds (active while removed_on is null)
  billing_records:  Generated bills, one per member per fiscal year
  eligibility_log:  Append-only record of Life conversions
  waitlist:         Prospective members

DATES:
  Calendar dates are stored as ISO text (YYYY-MM-DD) and parsed back
  through the engine's strict parser. Timestamps are RFC3339 UTC.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's single-writer
  model. Opened with WAL so readers do not block.

USAGE:
  store, err := sqlite.New("./data/membership.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - roster/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
)

// Store implements roster.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		tier TEXT NOT NULL,
		status TEXT NOT NULL,
		date_of_birth TEXT,
		original_join_date TEXT,
		assessment_years_completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_members_tier_status
		ON members(tier, status);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS work_hours (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		date TEXT NOT NULL,
		hours TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		reviewed_by TEXT NOT NULL DEFAULT '',
		work_year TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Hot path: approved-hour totals per member per work year
	CREATE INDEX IF NOT EXISTS idx_work_hours_member_year
		ON work_hours(member_id, work_year);

	CREATE TABLE IF NOT EXISTS encumbrances (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		placed_on TEXT NOT NULL,
		removed_on TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_encumbrances_member
		ON encumbrances(member_id);

	CREATE TABLE IF NOT EXISTS billing_records (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		fiscal_year TEXT NOT NULL,
		result_json TEXT NOT NULL,
		generated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_billing_records_fiscal_year
		ON billing_records(fiscal_year);
	CREATE INDEX IF NOT EXISTS idx_billing_records_member
		ON billing_records(member_id);

	CREATE TABLE IF NOT EXISTS eligibility_log (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		rule TEXT NOT NULL,
		reason TEXT NOT NULL,
		converted BOOLEAN NOT NULL DEFAULT FALSE,
		checked_on TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_eligibility_log_member
		ON eligibility_log(member_id);

	CREATE TABLE IF NOT EXISTS waitlist (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		applied_on TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_waitlist_position
		ON waitlist(position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// MEMBERS
// =============================================================================

func (s *Store) SaveMember(ctx context.Context, m roster.MemberRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO members
		(id, first_name, last_name, email, tier, status, date_of_birth,
		 original_join_date, assessment_years_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			tier = excluded.tier,
			status = excluded.status,
			date_of_birth = excluded.date_of_birth,
			original_join_date = excluded.original_join_date,
			assessment_years_completed = excluded.assessment_years_completed,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		m.ID, m.FirstName, m.LastName, m.Email,
		string(m.Tier), string(m.Status),
		nullDate(m.DateOfBirth), nullDate(m.OriginalJoinDate),
		m.AssessmentYearsCompleted,
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (s *Store) GetMember(ctx context.Context, id string) (*roster.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, tier, status, date_of_birth,
		       original_join_date, assessment_years_completed, created_at, updated_at
		FROM members WHERE id = ?
	`, id)

	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, roster.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMembers(ctx context.Context) ([]roster.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, tier, status, date_of_birth,
		       original_join_date, assessment_years_completed, created_at, updated_at
		FROM members ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []roster.MemberRecord
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (roster.MemberRecord, error) {
	var (
		m         roster.MemberRecord
		tier      string
		status    string
		dob       sql.NullString
		joined    sql.NullString
		createdAt string
		updatedAt string
	)

	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &tier, &status,
		&dob, &joined, &m.AssessmentYearsCompleted, &createdAt, &updatedAt)
	if err != nil {
		return m, err
	}

	m.Tier = engine.Tier(tier)
	m.Status = engine.Status(status)
	m.DateOfBirth = parseStoredDate(dob)
	m.OriginalJoinDate = parseStoredDate(joined)
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return m, nil
}

// =============================================================================
// SETTINGS
// =============================================================================

func (s *Store) GetSettings(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		result[k] = v
	}
	return result, rows.Err()
}

func (s *Store) PutSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to put setting: %w", err)
	}
	return nil
}

// =============================================================================
// WORK-HOUR LEDGER
// =============================================================================

func (s *Store) SaveWorkHourEntry(ctx context.Context, e roster.WorkHourEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO work_hours
		(id, member_id, date, hours, description, status, reviewed_by, work_year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			hours = excluded.hours,
			description = excluded.description,
			status = excluded.status,
			reviewed_by = excluded.reviewed_by
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.MemberID, e.Date.String(), e.Hours.String(),
		e.Description, string(e.Status), e.ReviewedBy, e.WorkYear(),
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save work-hour entry: %w", err)
	}
	return nil
}

func (s *Store) GetWorkHourEntry(ctx context.Context, id string) (*roster.WorkHourEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, member_id, date, hours, description, status, reviewed_by, created_at
		FROM work_hours WHERE id = ?
	`, id)

	e, err := scanWorkHourEntry(row)
	if err == sql.ErrNoRows {
		return nil, roster.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListWorkHourEntries(ctx context.Context, memberID, workYear string) ([]roster.WorkHourEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, member_id, date, hours, description, status, reviewed_by, created_at
		FROM work_hours
		WHERE (? = '' OR member_id = ?) AND (? = '' OR work_year = ?)
		ORDER BY date ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, memberID, memberID, workYear, workYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query work hours: %w", err)
	}
	defer rows.Close()

	var entries []roster.WorkHourEntry
	for rows.Next() {
		e, err := scanWorkHourEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanWorkHourEntry(row scanner) (roster.WorkHourEntry, error) {
	var (
		e         roster.WorkHourEntry
		date      string
		hoursStr  string
		status    string
		createdAt string
	)

	err := row.Scan(&e.ID, &e.MemberID, &date, &hoursStr, &e.Description,
		&status, &e.ReviewedBy, &createdAt)
	if err != nil {
		return e, err
	}

	e.Date, err = engine.ParseDate(date)
	if err != nil {
		return e, fmt.Errorf("failed to parse stored date %q: %w", date, err)
	}
	e.Hours, err = parseDecimal(hoursStr)
	if err != nil {
		return e, err
	}
	e.Status = roster.EntryStatus(status)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// =============================================================================
// ENCUMBRANCES
// =============================================================================

func (s *Store) SaveEncumbrance(ctx context.Context, e roster.Encumbrance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removedOn any
	if e.RemovedOn != nil {
		removedOn = e.RemovedOn.String()
	}

	query := `
		INSERT INTO encumbrances (id, member_id, reason, placed_on, removed_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			reason = excluded.reason,
			removed_on = excluded.removed_on
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.MemberID, e.Reason, e.PlacedOn.String(), removedOn,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save encumbrance: %w", err)
	}
	return nil
}

func (s *Store) ListEncumbrances(ctx context.Context, memberID string) ([]roster.Encumbrance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, member_id, reason, placed_on, removed_on, created_at
		FROM encumbrances WHERE member_id = ? ORDER BY placed_on ASC, id ASC
	`, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query encumbrances: %w", err)
	}
	defer rows.Close()

	var encumbrances []roster.Encumbrance
	for rows.Next() {
		var (
			e         roster.Encumbrance
			placedOn  string
			removedOn sql.NullString
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.MemberID, &e.Reason, &placedOn, &removedOn, &createdAt); err != nil {
			return nil, err
		}
		e.PlacedOn, err = engine.ParseDate(placedOn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", placedOn, err)
		}
		if removedOn.Valid {
			d, err := engine.ParseDate(removedOn.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse stored date %q: %w", removedOn.String, err)
			}
			e.RemovedOn = &d
		}
		e.CreatedAt = parseTime(createdAt)
		encumbrances = append(encumbrances, e)
	}
	return encumbrances, rows.Err()
}

// =============================================================================
// BILLING RECORDS
// =============================================================================

func (s *Store) SaveBillingRecord(ctx context.Context, r roster.BillingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resultJSON, err := json.Marshal(r.Result)
	if err != nil {
		return fmt.Errorf("failed to encode billing result: %w", err)
	}

	query := `
		INSERT INTO billing_records (id, member_id, fiscal_year, result_json, generated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			result_json = excluded.result_json,
			generated_at = excluded.generated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.MemberID, r.FiscalYear, string(resultJSON), formatTime(r.GeneratedAt))
	if err != nil {
		return fmt.Errorf("failed to save billing record: %w", err)
	}
	return nil
}

func (s *Store) ListBillingRecords(ctx context.Context, fiscalYear string) ([]roster.BillingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, member_id, fiscal_year, result_json, generated_at
		FROM billing_records
		WHERE (? = '' OR fiscal_year = ?)
		ORDER BY id ASC
	`, fiscalYear, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing records: %w", err)
	}
	defer rows.Close()

	var records []roster.BillingRecord
	for rows.Next() {
		var (
			r           roster.BillingRecord
			resultJSON  string
			generatedAt string
		)
		if err := rows.Scan(&r.ID, &r.MemberID, &r.FiscalYear, &resultJSON, &generatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(resultJSON), &r.Result); err != nil {
			return nil, fmt.Errorf("failed to decode billing result: %w", err)
		}
		r.GeneratedAt = parseTime(generatedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// =============================================================================
// ELIGIBILITY LOG
// =============================================================================

func (s *Store) AppendEligibilityLog(ctx context.Context, e roster.EligibilityLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Append-only: no updates, no deletes
	query := `
		INSERT INTO eligibility_log (id, member_id, rule, reason, converted, checked_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.MemberID, string(e.Rule), e.Reason, e.Converted,
		e.CheckedOn.String(), formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to append eligibility log: %w", err)
	}
	return nil
}

func (s *Store) ListEligibilityLog(ctx context.Context, memberID string) ([]roster.EligibilityLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, member_id, rule, reason, converted, checked_on, created_at
		FROM eligibility_log
		WHERE (? = '' OR member_id = ?)
		ORDER BY created_at ASC, id ASC
	`, memberID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligibility log: %w", err)
	}
	defer rows.Close()

	var entries []roster.EligibilityLogEntry
	for rows.Next() {
		var (
			e         roster.EligibilityLogEntry
			rule      string
			checkedOn string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.MemberID, &rule, &e.Reason, &e.Converted, &checkedOn, &createdAt); err != nil {
			return nil, err
		}
		e.Rule = engine.Rule(rule)
		e.CheckedOn, err = engine.ParseDate(checkedOn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", checkedOn, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// =============================================================================
// WAITLIST
// =============================================================================

func (s *Store) SaveWaitlistEntry(ctx context.Context, e roster.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO waitlist (id, first_name, last_name, email, applied_on, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			position = excluded.position
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email,
		e.AppliedOn.String(), e.Position, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save waitlist entry: %w", err)
	}
	return nil
}

func (s *Store) ListWaitlist(ctx context.Context) ([]roster.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, applied_on, position, created_at
		FROM waitlist ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query waitlist: %w", err)
	}
	defer rows.Close()

	var entries []roster.WaitlistEntry
	for rows.Next() {
		var (
			e         roster.WaitlistEntry
			appliedOn string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &appliedOn, &e.Position, &createdAt); err != nil {
			return nil, err
		}
		e.AppliedOn, err = engine.ParseDate(appliedOn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", appliedOn, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteWaitlistEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM waitlist WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete waitlist entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return roster.ErrWaitlistNotFound
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func nullDate(d engine.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

func parseStoredDate(s sql.NullString) engine.Date {
	if !s.Valid || s.String == "" {
		return engine.Date{}
	}
	d, err := engine.ParseDate(s.String)
	if err != nil {
		return engine.Date{}
	}
	return d
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse stored decimal %q: %w", s, err)
	}
	return d, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
