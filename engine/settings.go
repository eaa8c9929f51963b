/*
settings.go - Club rate settings with defensive parsing

PURPOSE:
  Settings carry the six rate parameters every billing calculation needs.
  They arrive from storage as strings (the admin screen edits them as
  free text), so every value is parsed defensively: anything that is not
  a number falls back to the documented default rather than letting a
  NaN-equivalent reach a currency total.

DEFAULTS:
  regular_dues        300     annual dues for Regular members
  absentee_dues       50      flat dues for Absentee members
  work_hours_required 10      annual volunteer-hour obligation
  buyout_rate         20      dollars per unworked hour
  assessment_amount   50      new-member assessment (first 5 years)
  cabaret_tax_rate    0.10    tax applied to the subtotal

  Settings are immutable input to every calculation; the engine never
  mutates them and keeps no ambient/global copy.
*/
package engine

import "github.com/shopspring/decimal"

// Settings keys as stored by the admin screen.
const (
	KeyRegularDues       = "regular_dues"
	KeyAbsenteeDues      = "absentee_dues"
	KeyWorkHoursRequired = "work_hours_required"
	KeyBuyoutRate        = "buyout_rate"
	KeyAssessmentAmount  = "assessment_amount"
	KeyCabaretTaxRate    = "cabaret_tax_rate"
)

// Settings are the club's rate parameters, already parsed to decimals.
type Settings struct {
	RegularDues       decimal.Decimal
	AbsenteeDues      decimal.Decimal
	WorkHoursRequired decimal.Decimal
	BuyoutRate        decimal.Decimal
	AssessmentAmount  decimal.Decimal
	CabaretTaxRate    decimal.Decimal
}

// DefaultSettings returns the documented fallback rates.
func DefaultSettings() Settings {
	return Settings{
		RegularDues:       decimal.NewFromInt(300),
		AbsenteeDues:      decimal.NewFromInt(50),
		WorkHoursRequired: decimal.NewFromInt(10),
		BuyoutRate:        decimal.NewFromInt(20),
		AssessmentAmount:  decimal.NewFromInt(50),
		CabaretTaxRate:    decimal.RequireFromString("0.10"),
	}
}

// ParseSettings builds Settings from raw string values. Missing or
// unparseable entries fall back to the default for that key; unknown keys
// are ignored. It never fails.
func ParseSettings(raw map[string]string) Settings {
	s := DefaultSettings()
	s.RegularDues = parseRate(raw, KeyRegularDues, s.RegularDues)
	s.AbsenteeDues = parseRate(raw, KeyAbsenteeDues, s.AbsenteeDues)
	s.WorkHoursRequired = parseRate(raw, KeyWorkHoursRequired, s.WorkHoursRequired)
	s.BuyoutRate = parseRate(raw, KeyBuyoutRate, s.BuyoutRate)
	s.AssessmentAmount = parseRate(raw, KeyAssessmentAmount, s.AssessmentAmount)
	s.CabaretTaxRate = parseRate(raw, KeyCabaretTaxRate, s.CabaretTaxRate)
	return s
}

func parseRate(raw map[string]string, key string, fallback decimal.Decimal) decimal.Decimal {
	v, ok := raw[key]
	if !ok || v == "" {
		return fallback
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}
