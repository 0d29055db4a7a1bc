package domain

import (
	"github.com/shopspring/decimal"
)

// SSARules contains the statutory data the calculator depends on. It can be
// loaded from a rules YAML file and needs annual updates (new year's maximum
// benefit); DefaultSSARules carries the compiled-in current values.
type SSARules struct {
	Metadata RulesMetadata `yaml:"metadata" json:"metadata"`

	// FRATable maps birth year to Full Retirement Age for the transition
	// years. Years outside the table fall to the boundary rules in
	// FRAForBirthYear.
	FRATable map[int]FRA `yaml:"fra_table" json:"fra_table"`

	BenefitAdjustments BenefitAdjustmentRules `yaml:"benefit_adjustments" json:"benefit_adjustments"`

	// MaxBenefitByYear is the statutory maximum monthly benefit at FRA per
	// calendar year
	MaxBenefitByYear map[int]decimal.Decimal `yaml:"max_benefit_by_year" json:"max_benefit_by_year"`
	// MaxBenefitDefaultYear is the year whose maximum is used when a year is
	// missing from the table
	MaxBenefitDefaultYear int `yaml:"max_benefit_default_year" json:"max_benefit_default_year"`
}

// RulesMetadata describes the provenance of the rules data
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// BenefitAdjustmentRules contains the early-reduction and delayed-credit rates
type BenefitAdjustmentRules struct {
	// First36MonthsRate is the monthly reduction for the 36 months nearest FRA
	// (5/9 of 1%)
	First36MonthsRate decimal.Decimal `yaml:"first_36_months_rate" json:"first_36_months_rate"`
	// AdditionalMonthsRate applies beyond 36 months before FRA (5/12 of 1%)
	AdditionalMonthsRate decimal.Decimal `yaml:"additional_months_rate" json:"additional_months_rate"`
	// DelayedCreditMonthlyRate is the credit per month past FRA (2/3 of 1%),
	// accruing only through MaxCreditAge
	DelayedCreditMonthlyRate decimal.Decimal `yaml:"delayed_credit_monthly_rate" json:"delayed_credit_monthly_rate"`
	// SpousalFactor is the fraction of the partner's PIA a spousal benefit is
	// based on
	SpousalFactor decimal.Decimal `yaml:"spousal_factor" json:"spousal_factor"`
	// MaxCreditAge is the age past which delayed credits stop accruing
	MaxCreditAge int `yaml:"max_credit_age" json:"max_credit_age"`
}

// DefaultSSARules returns the compiled-in statutory values
func DefaultSSARules() SSARules {
	return SSARules{
		Metadata: RulesMetadata{
			DataYear:    2025,
			LastUpdated: "2025-01-01",
			Description: "SSA retirement benefit rules",
		},
		FRATable: map[int]FRA{
			1943: {Years: 66, Months: 0},
			1944: {Years: 66, Months: 0},
			1945: {Years: 66, Months: 0},
			1946: {Years: 66, Months: 0},
			1947: {Years: 66, Months: 0},
			1948: {Years: 66, Months: 0},
			1949: {Years: 66, Months: 0},
			1950: {Years: 66, Months: 0},
			1951: {Years: 66, Months: 0},
			1952: {Years: 66, Months: 0},
			1953: {Years: 66, Months: 0},
			1954: {Years: 66, Months: 0},
			1955: {Years: 66, Months: 2},
			1956: {Years: 66, Months: 4},
			1957: {Years: 66, Months: 6},
			1958: {Years: 66, Months: 8},
			1959: {Years: 66, Months: 10},
		},
		BenefitAdjustments: BenefitAdjustmentRules{
			First36MonthsRate:        decimal.NewFromInt(5).Div(decimal.NewFromInt(900)),
			AdditionalMonthsRate:     decimal.NewFromInt(5).Div(decimal.NewFromInt(1200)),
			DelayedCreditMonthlyRate: decimal.NewFromInt(2).Div(decimal.NewFromInt(300)),
			SpousalFactor:            decimal.NewFromFloat(0.5),
			MaxCreditAge:             70,
		},
		MaxBenefitByYear: map[int]decimal.Decimal{
			2023: decimal.NewFromInt(3627),
			2024: decimal.NewFromInt(3822),
			2025: decimal.NewFromInt(4018),
		},
		MaxBenefitDefaultYear: 2025,
	}
}

// FRAForBirthYear resolves the Full Retirement Age for a birth year. Birth
// years 1960 and later get 67; years before 1943 get 66; the transition years
// come from the table, with a miss defaulting to {67, 0}.
func (r *SSARules) FRAForBirthYear(birthYear int) FRA {
	if birthYear >= 1960 {
		return FRA{Years: 67, Months: 0}
	}
	if birthYear < 1943 {
		return FRA{Years: 66, Months: 0}
	}
	if fra, ok := r.FRATable[birthYear]; ok {
		return fra
	}
	return FRA{Years: 67, Months: 0}
}

// MaxBenefitForYear returns the statutory maximum monthly benefit at FRA for a
// calendar year, falling back to the default year's value on a miss
func (r *SSARules) MaxBenefitForYear(year int) decimal.Decimal {
	if max, ok := r.MaxBenefitByYear[year]; ok {
		return max
	}
	return r.MaxBenefitByYear[r.MaxBenefitDefaultYear]
}
