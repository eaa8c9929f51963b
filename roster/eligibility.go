/*
eligibility.go - Eligibility review and Life conversion

PURPOSE:
  Produces the membership committee's review report (currently eligible
  members plus the two-year forecast) and performs the actual Life
  conversion. Conversion re-checks eligibility through the engine at
  the moment of the tier change - the report is advisory, the re-check
  is authoritative.
*/
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizagent538-commits/membership/engine"
)

// EligibilityService runs reviews and conversions.
type EligibilityService struct {
	store Store
	log   zerolog.Logger
}

// NewEligibilityService wires an eligibility service.
func NewEligibilityService(store Store, log zerolog.Logger) *EligibilityService {
	return &EligibilityService{store: store, log: log.With().Str("component", "eligibility").Logger()}
}

// ReviewEntry is one member's line in the review report.
type ReviewEntry struct {
	Member      MemberRecord
	Eligibility engine.EligibilityResult
	Forecast    engine.Forecast
	Encumbered  bool
}

// Review evaluates every member and splits the roll into currently
// eligible members and near-eligible members (within two years of a rule).
// Members with bad data are skipped and logged, not fatal.
func (s *EligibilityService) Review(ctx context.Context, today engine.Date) (eligible, near []ReviewEntry, err error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, nil, err
	}

	for _, m := range members {
		snapshot := m.Snapshot()
		if snapshot.Status != engine.StatusActive || snapshot.Tier == engine.TierLife ||
			snapshot.Tier == engine.TierHonorary || snapshot.Tier == engine.TierWaitlist {
			continue
		}
		if err := snapshot.Validate(); err != nil {
			s.log.Warn().Str("member", m.ID).Err(err).Msg("skipping member in review")
			continue
		}

		encumbered, err := HasActiveEncumbrance(ctx, s.store, m.ID)
		if err != nil {
			return nil, nil, err
		}

		entry := ReviewEntry{
			Member:      m,
			Eligibility: engine.CheckLifeEligibility(snapshot, encumbered, today),
			Forecast:    engine.NearLifeEligibility(snapshot, encumbered, today),
			Encumbered:  encumbered,
		}

		switch {
		case entry.Eligibility.Eligible:
			eligible = append(eligible, entry)
		case entry.Forecast.Within:
			near = append(near, entry)
		}
	}

	return eligible, near, nil
}

// ConvertToLife changes an eligible member's tier to Life and appends an
// audit log entry. It fails if the member is not eligible right now.
func (s *EligibilityService) ConvertToLife(ctx context.Context, memberID string, today engine.Date) (*MemberRecord, error) {
	record, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	encumbered, err := HasActiveEncumbrance(ctx, s.store, memberID)
	if err != nil {
		return nil, err
	}

	result := engine.CheckLifeEligibility(record.Snapshot(), encumbered, today)
	if !result.Eligible {
		return nil, fmt.Errorf("member %s not eligible for Life: %s", memberID, result.Reason)
	}

	record.Tier = engine.TierLife
	record.UpdatedAt = time.Now()
	if err := s.store.SaveMember(ctx, *record); err != nil {
		return nil, err
	}

	logEntry := EligibilityLogEntry{
		ID:        fmt.Sprintf("elig-%s-%s", memberID, today),
		MemberID:  memberID,
		Rule:      result.Rule,
		Reason:    result.Reason,
		Converted: true,
		CheckedOn: today,
		CreatedAt: time.Now(),
	}
	if err := s.store.AppendEligibilityLog(ctx, logEntry); err != nil {
		return nil, err
	}

	s.log.Info().Str("member", memberID).Str("rule", string(result.Rule)).Msg("converted to Life membership")
	return record, nil
}
