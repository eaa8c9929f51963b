// Package memory provides an in-memory roster.Store for tests and
// local development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bizagent538-commits/membership/roster"
)

// Store keeps everything in maps behind a single RWMutex. Returned
// slices and records are copies; callers never share memory with the
// store.
type Store struct {
	mu             sync.RWMutex
	members        map[string]roster.MemberRecord
	settings       map[string]string
	workHours      map[string]roster.WorkHourEntry
	encumbrances   map[string][]roster.Encumbrance
	billingRecords map[string]roster.BillingRecord
	eligibilityLog []roster.EligibilityLogEntry
	waitlist       map[string]roster.WaitlistEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{
		members:        make(map[string]roster.MemberRecord),
		settings:       make(map[string]string),
		workHours:      make(map[string]roster.WorkHourEntry),
		encumbrances:   make(map[string][]roster.Encumbrance),
		billingRecords: make(map[string]roster.BillingRecord),
		waitlist:       make(map[string]roster.WaitlistEntry),
	}
}

// =============================================================================
// MEMBERS
// =============================================================================

func (s *Store) SaveMember(_ context.Context, m roster.MemberRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[m.ID] = m
	return nil
}

func (s *Store) GetMember(_ context.Context, id string) (*roster.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return nil, roster.ErrMemberNotFound
	}
	return &m, nil
}

func (s *Store) ListMembers(_ context.Context) ([]roster.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]roster.MemberRecord, 0, len(s.members))
	for _, m := range s.members {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// =============================================================================
// SETTINGS
// =============================================================================

func (s *Store) GetSettings(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]string, len(s.settings))
	for k, v := range s.settings {
		result[k] = v
	}
	return result, nil
}

func (s *Store) PutSetting(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	return nil
}

// =============================================================================
// WORK-HOUR LEDGER
// =============================================================================

func (s *Store) SaveWorkHourEntry(_ context.Context, e roster.WorkHourEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workHours[e.ID] = e
	return nil
}

func (s *Store) GetWorkHourEntry(_ context.Context, id string) (*roster.WorkHourEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.workHours[id]
	if !ok {
		return nil, roster.ErrEntryNotFound
	}
	return &e, nil
}

func (s *Store) ListWorkHourEntries(_ context.Context, memberID, workYear string) ([]roster.WorkHourEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.WorkHourEntry
	for _, e := range s.workHours {
		if memberID != "" && e.MemberID != memberID {
			continue
		}
		if workYear != "" && e.WorkYear() != workYear {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID < result[j].ID
		}
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// =============================================================================
// ENCUMBRANCES
// =============================================================================

func (s *Store) SaveEncumbrance(_ context.Context, e roster.Encumbrance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.encumbrances[e.MemberID]
	for i, existing := range list {
		if existing.ID == e.ID {
			list[i] = e
			return nil
		}
	}
	s.encumbrances[e.MemberID] = append(list, e)
	return nil
}

func (s *Store) ListEncumbrances(_ context.Context, memberID string) ([]roster.Encumbrance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]roster.Encumbrance, len(s.encumbrances[memberID]))
	copy(result, s.encumbrances[memberID])
	return result, nil
}

// =============================================================================
// BILLING RECORDS
// =============================================================================

func (s *Store) SaveBillingRecord(_ context.Context, r roster.BillingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billingRecords[r.ID] = r
	return nil
}

func (s *Store) ListBillingRecords(_ context.Context, fiscalYear string) ([]roster.BillingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.BillingRecord
	for _, r := range s.billingRecords {
		if fiscalYear != "" && r.FiscalYear != fiscalYear {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// =============================================================================
// ELIGIBILITY LOG
// =============================================================================

func (s *Store) AppendEligibilityLog(_ context.Context, e roster.EligibilityLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eligibilityLog = append(s.eligibilityLog, e)
	return nil
}

func (s *Store) ListEligibilityLog(_ context.Context, memberID string) ([]roster.EligibilityLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []roster.EligibilityLogEntry
	for _, e := range s.eligibilityLog {
		if memberID != "" && e.MemberID != memberID {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// =============================================================================
// WAITLIST
// =============================================================================

func (s *Store) SaveWaitlistEntry(_ context.Context, e roster.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist[e.ID] = e
	return nil
}

func (s *Store) ListWaitlist(_ context.Context) ([]roster.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]roster.WaitlistEntry, 0, len(s.waitlist))
	for _, e := range s.waitlist {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position == result[j].Position {
			return result[i].ID < result[j].ID
		}
		return result[i].Position < result[j].Position
	})
	return result, nil
}

func (s *Store) DeleteWaitlistEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.waitlist[id]; !ok {
		return roster.ErrWaitlistNotFound
	}
	delete(s.waitlist, id)
	return nil
}
