/*
Package roster manages the club's membership records around the rules
engine: member rolls, the work-hour ledger, encumbrances, billing runs,
eligibility reviews, and the prospective-member waitlist.

The engine package computes; roster decides what to compute over and what
to persist. The split keeps every rule pure and testable while this
package owns identity, storage, and batch behavior.
*/
package roster

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
)

// =============================================================================
// MEMBER RECORD
// =============================================================================

// MemberRecord is a member as persisted, including the identity fields the
// engine does not care about.
type MemberRecord struct {
	ID                       string
	FirstName                string
	LastName                 string
	Email                    string
	Tier                     engine.Tier
	Status                   engine.Status
	DateOfBirth              engine.Date // zero when unknown
	OriginalJoinDate         engine.Date
	AssessmentYearsCompleted int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Snapshot converts the record to the engine's per-calculation view.
func (m MemberRecord) Snapshot() engine.Member {
	return engine.Member{
		ID:                       m.ID,
		Tier:                     m.Tier,
		Status:                   m.Status,
		DateOfBirth:              m.DateOfBirth,
		OriginalJoinDate:         m.OriginalJoinDate,
		AssessmentYearsCompleted: m.AssessmentYearsCompleted,
	}
}

// =============================================================================
// WORK-HOUR LEDGER
// =============================================================================

// EntryStatus is the approval state of a work-hour entry. Only approved
// entries count toward the buyout calculation.
type EntryStatus string

const (
	EntrySubmitted EntryStatus = "submitted"
	EntryApproved  EntryStatus = "approved"
	EntryRejected  EntryStatus = "rejected"
)

// WorkHourEntry is one logged block of volunteer hours.
type WorkHourEntry struct {
	ID          string
	MemberID    string
	Date        engine.Date
	Hours       decimal.Decimal
	Description string
	Status      EntryStatus
	ReviewedBy  string // approver, set on approve/reject
	CreatedAt   time.Time
}

// WorkYear returns the work-hour year the entry belongs to.
func (e WorkHourEntry) WorkYear() string {
	return engine.WorkYear(e.Date)
}

// =============================================================================
// ENCUMBRANCES
// =============================================================================

// Encumbrance is a disciplinary hold. It is active while RemovedOn is nil;
// an active encumbrance blocks Life conversion regardless of any other
// qualification.
type Encumbrance struct {
	ID        string
	MemberID  string
	Reason    string
	PlacedOn  engine.Date
	RemovedOn *engine.Date
	CreatedAt time.Time
}

// Active reports whether the hold is still in force.
func (e Encumbrance) Active() bool {
	return e.RemovedOn == nil
}

// =============================================================================
// BILLING RECORDS
// =============================================================================

// BillingRecord is a persisted bill for one member and fiscal year.
type BillingRecord struct {
	ID          string
	MemberID    string
	FiscalYear  string
	Result      engine.BillingResult
	GeneratedAt time.Time
}

// =============================================================================
// ELIGIBILITY LOG
// =============================================================================

// EligibilityLogEntry records an eligibility determination or a Life
// conversion for audit purposes.
type EligibilityLogEntry struct {
	ID        string
	MemberID  string
	Rule      engine.Rule
	Reason    string
	Converted bool // true when the member was converted to Life
	CheckedOn engine.Date
	CreatedAt time.Time
}

// =============================================================================
// WAITLIST
// =============================================================================

// WaitlistEntry is a prospective member. Waitlisted people are outside
// billing scope entirely.
type WaitlistEntry struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	AppliedOn engine.Date
	Position  int
	CreatedAt time.Time
}
