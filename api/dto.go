/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY:
  Currency and hour amounts are serialized as decimal strings ("462.00"),
  never floats. Clients must not do float math on dues.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - roster/types.go: The domain records these mirror
*/
package api

import (
	"time"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
)

// =============================================================================
// MEMBER TYPES
// =============================================================================

// MemberDTO represents a member in API responses.
type MemberDTO struct {
	ID                       string `json:"id"`
	FirstName                string `json:"first_name"`
	LastName                 string `json:"last_name"`
	Email                    string `json:"email,omitempty"`
	Tier                     string `json:"tier"`
	Status                   string `json:"status"`
	DateOfBirth              string `json:"date_of_birth,omitempty"`
	OriginalJoinDate         string `json:"original_join_date,omitempty"`
	AssessmentYearsCompleted int    `json:"assessment_years_completed"`
	ConsecutiveYears         int    `json:"consecutive_years"`
	CreatedAt                string `json:"created_at,omitempty"`
}

// SaveMemberRequest creates or updates a member.
type SaveMemberRequest struct {
	ID                       string `json:"id"`
	FirstName                string `json:"first_name"`
	LastName                 string `json:"last_name"`
	Email                    string `json:"email"`
	Tier                     string `json:"tier"`
	Status                   string `json:"status"`
	DateOfBirth              string `json:"date_of_birth"`
	OriginalJoinDate         string `json:"original_join_date"`
	AssessmentYearsCompleted int    `json:"assessment_years_completed"`
}

// =============================================================================
// BILLING TYPES
// =============================================================================

// BillingResultDTO is a computed bill. All amounts are decimal strings.
type BillingResultDTO struct {
	Dues               string `json:"dues"`
	Assessment         string `json:"assessment"`
	WorkHoursRequired  string `json:"work_hours_required"`
	WorkHoursCompleted string `json:"work_hours_completed"`
	WorkHoursShort     string `json:"work_hours_short"`
	Buyout             string `json:"buyout"`
	Subtotal           string `json:"subtotal"`
	Tax                string `json:"tax"`
	Total              string `json:"total"`
}

// BillingRecordDTO is a persisted bill.
type BillingRecordDTO struct {
	ID          string           `json:"id"`
	MemberID    string           `json:"member_id"`
	FiscalYear  string           `json:"fiscal_year"`
	Result      BillingResultDTO `json:"result"`
	GeneratedAt string           `json:"generated_at"`
}

// RunSummaryDTO reports a bulk billing run.
type RunSummaryDTO struct {
	FiscalYear string          `json:"fiscal_year"`
	Generated  int             `json:"generated"`
	Skipped    int             `json:"skipped"`
	Failures   []RunFailureDTO `json:"failures"`
}

// RunFailureDTO names one member whose bill failed.
type RunFailureDTO struct {
	MemberID string `json:"member_id"`
	Error    string `json:"error"`
}

// =============================================================================
// WORK-HOUR TYPES
// =============================================================================

// WorkHourEntryDTO represents a logged block of volunteer hours.
type WorkHourEntryDTO struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	Date        string `json:"date"`
	Hours       string `json:"hours"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	ReviewedBy  string `json:"reviewed_by,omitempty"`
	WorkYear    string `json:"work_year"`
}

// SubmitWorkHoursRequest logs volunteer hours.
type SubmitWorkHoursRequest struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	Date        string `json:"date"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

// ReviewWorkHoursRequest approves or rejects an entry.
type ReviewWorkHoursRequest struct {
	Reviewer string `json:"reviewer"`
	Approve  bool   `json:"approve"`
}

// =============================================================================
// ENCUMBRANCE TYPES
// =============================================================================

// EncumbranceDTO represents a disciplinary hold.
type EncumbranceDTO struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id"`
	Reason    string `json:"reason"`
	PlacedOn  string `json:"placed_on"`
	RemovedOn string `json:"removed_on,omitempty"`
	Active    bool   `json:"active"`
}

// PlaceEncumbranceRequest places a hold on a member.
type PlaceEncumbranceRequest struct {
	ID       string `json:"id"`
	MemberID string `json:"member_id"`
	Reason   string `json:"reason"`
	PlacedOn string `json:"placed_on"`
}

// =============================================================================
// ELIGIBILITY TYPES
// =============================================================================

// EligibilityDTO is one member's eligibility determination.
type EligibilityDTO struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
	Rule     string `json:"rule,omitempty"`
	Reason   string `json:"reason"`
}

// ForecastDTO is one member's near-eligibility line.
type ForecastDTO struct {
	MemberID         string `json:"member_id"`
	Name             string `json:"name"`
	ConsecutiveYears int    `json:"consecutive_years"`
	Age              int    `json:"age,omitempty"`
	Message          string `json:"message"`
}

// ReviewReportDTO is the committee's Life-eligibility report.
type ReviewReportDTO struct {
	AsOf     string           `json:"as_of"`
	Eligible []EligibilityDTO `json:"eligible"`
	Near     []ForecastDTO    `json:"near"`
}

// =============================================================================
// PERIOD TYPES
// =============================================================================

// PeriodsDTO describes today's position in the club calendars.
type PeriodsDTO struct {
	AsOf             string `json:"as_of"`
	FiscalYear       string `json:"fiscal_year"`
	WorkYear         string `json:"work_year"`
	BillingQuarter   int    `json:"billing_quarter"`
	Collection       string `json:"collection_status"`
	CollectionNote   string `json:"collection_note"`
	CollectionDue    string `json:"collection_deadline"`
	WorkHours        string `json:"work_hour_status"`
	WorkHoursNote    string `json:"work_hour_note"`
	WorkHourDeadline string `json:"work_hour_deadline"`
}

// =============================================================================
// WAITLIST TYPES
// =============================================================================

// WaitlistEntryDTO represents a prospective member.
type WaitlistEntryDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	AppliedOn string `json:"applied_on"`
	Position  int    `json:"position"`
}

// SaveWaitlistRequest adds or updates a waitlist entry.
type SaveWaitlistRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AppliedOn string `json:"applied_on"`
	Position  int    `json:"position"`
}

// =============================================================================
// MISC
// =============================================================================

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario.
type LoadScenarioRequest struct {
	ID string `json:"id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toMemberDTO(m roster.MemberRecord, today engine.Date) MemberDTO {
	return MemberDTO{
		ID:                       m.ID,
		FirstName:                m.FirstName,
		LastName:                 m.LastName,
		Email:                    m.Email,
		Tier:                     string(m.Tier),
		Status:                   string(m.Status),
		DateOfBirth:              m.DateOfBirth.String(),
		OriginalJoinDate:         m.OriginalJoinDate.String(),
		AssessmentYearsCompleted: m.AssessmentYearsCompleted,
		ConsecutiveYears:         engine.ConsecutiveYears(m.OriginalJoinDate, today),
		CreatedAt:                m.CreatedAt.Format(time.RFC3339),
	}
}

func toBillingResultDTO(r engine.BillingResult) BillingResultDTO {
	return BillingResultDTO{
		Dues:               r.Dues.String(),
		Assessment:         r.Assessment.String(),
		WorkHoursRequired:  r.WorkHoursRequired.String(),
		WorkHoursCompleted: r.WorkHoursCompleted.String(),
		WorkHoursShort:     r.WorkHoursShort.String(),
		Buyout:             r.Buyout.String(),
		Subtotal:           r.Subtotal.String(),
		Tax:                r.Tax.String(),
		Total:              r.Total.String(),
	}
}

func toBillingRecordDTO(r roster.BillingRecord) BillingRecordDTO {
	return BillingRecordDTO{
		ID:          r.ID,
		MemberID:    r.MemberID,
		FiscalYear:  r.FiscalYear,
		Result:      toBillingResultDTO(r.Result),
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

func toWorkHourEntryDTO(e roster.WorkHourEntry) WorkHourEntryDTO {
	return WorkHourEntryDTO{
		ID:          e.ID,
		MemberID:    e.MemberID,
		Date:        e.Date.String(),
		Hours:       e.Hours.String(),
		Description: e.Description,
		Status:      string(e.Status),
		ReviewedBy:  e.ReviewedBy,
		WorkYear:    e.WorkYear(),
	}
}

func toEncumbranceDTO(e roster.Encumbrance) EncumbranceDTO {
	dto := EncumbranceDTO{
		ID:       e.ID,
		MemberID: e.MemberID,
		Reason:   e.Reason,
		PlacedOn: e.PlacedOn.String(),
		Active:   e.Active(),
	}
	if e.RemovedOn != nil {
		dto.RemovedOn = e.RemovedOn.String()
	}
	return dto
}

func toWaitlistEntryDTO(e roster.WaitlistEntry) WaitlistEntryDTO {
	return WaitlistEntryDTO{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		AppliedOn: e.AppliedOn.String(),
		Position:  e.Position,
	}
}

func memberName(m roster.MemberRecord) string {
	switch {
	case m.FirstName == "" && m.LastName == "":
		return m.ID
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
