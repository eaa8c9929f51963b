/*
store.go - Persistence boundary for roster data

PURPOSE:
  Defines the interface between the roster services and the database.
  Implementations: store/sqlite (production) and store/memory (tests).

CONCURRENCY NOTE:
  The engine itself is pure and needs no coordination, but read-modify-
  write cycles on member rows (assessment years, tier changes) must be
  serialized by the store implementation - SQLite's single writer does
  this here; a SQL backend would use transactions.
*/
package roster

import (
	"context"
	"errors"
)

// Sentinel errors shared by store implementations.
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrEntryNotFound    = errors.New("work-hour entry not found")
	ErrWaitlistNotFound = errors.New("waitlist entry not found")
	ErrDuplicateID      = errors.New("record with this id already exists")
)

// Store is everything roster persistence can do.
type Store interface {
	// Members
	SaveMember(ctx context.Context, m MemberRecord) error
	GetMember(ctx context.Context, id string) (*MemberRecord, error)
	ListMembers(ctx context.Context) ([]MemberRecord, error)

	// Settings, stored as raw strings and parsed by the engine
	GetSettings(ctx context.Context) (map[string]string, error)
	PutSetting(ctx context.Context, key, value string) error

	// Work-hour ledger
	SaveWorkHourEntry(ctx context.Context, e WorkHourEntry) error
	GetWorkHourEntry(ctx context.Context, id string) (*WorkHourEntry, error)
	ListWorkHourEntries(ctx context.Context, memberID, workYear string) ([]WorkHourEntry, error)

	// Encumbrances
	SaveEncumbrance(ctx context.Context, e Encumbrance) error
	ListEncumbrances(ctx context.Context, memberID string) ([]Encumbrance, error)

	// Billing records
	SaveBillingRecord(ctx context.Context, r BillingRecord) error
	ListBillingRecords(ctx context.Context, fiscalYear string) ([]BillingRecord, error)

	// Eligibility log
	AppendEligibilityLog(ctx context.Context, e EligibilityLogEntry) error
	ListEligibilityLog(ctx context.Context, memberID string) ([]EligibilityLogEntry, error)

	// Waitlist
	SaveWaitlistEntry(ctx context.Context, e WaitlistEntry) error
	ListWaitlist(ctx context.Context) ([]WaitlistEntry, error)
	DeleteWaitlistEntry(ctx context.Context, id string) error
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrWaitlistNotFound)
}
