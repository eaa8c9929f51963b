/*
errors.go - Centralized error types for the rules engine

PURPOSE:
  All engine error types in one place. Business-logic outcomes ("not
  eligible", "zero bill") are NOT errors - they are ordinary return
  values. Errors signal structurally invalid input only.

ERROR CATEGORIES:
  1. Date errors      - Malformed or impossible calendar dates
  2. Member errors    - Records that fail boundary validation
  3. Settings errors  - Unparseable rate values (callers usually fall
                        back to defaults instead of surfacing these)

USAGE:
  Outer layers wrap these with record context:

    if errors.Is(err, engine.ErrInvalidDate) {
        return fmt.Errorf("member %s: %w", id, err)
    }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a date string is malformed or does
	// not name a real calendar day.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidMember is returned when a member record fails boundary
	// validation before entering the engine.
	ErrInvalidMember = errors.New("invalid member record")

	// ErrInvalidSetting is returned when a settings value cannot be
	// parsed as a decimal number.
	ErrInvalidSetting = errors.New("invalid settings value")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MemberValidationError reports which field of a member record is invalid.
type MemberValidationError struct {
	MemberID string
	Field    string
	Detail   string
}

func (e *MemberValidationError) Error() string {
	return fmt.Sprintf("member %s: %s %s", e.MemberID, e.Field, e.Detail)
}

func (e *MemberValidationError) Unwrap() error {
	return ErrInvalidMember
}

// IsClientError returns true if the error is due to bad input data rather
// than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidMember) ||
		errors.Is(err, ErrInvalidSetting)
}
