package domain

import (
	"github.com/shopspring/decimal"
)

// FRA represents a Social Security Full Retirement Age in whole years plus months
type FRA struct {
	Years  int `yaml:"years" json:"years"`
	Months int `yaml:"months" json:"months"`
}

// TotalMonths returns the FRA expressed in months from birth
func (f FRA) TotalMonths() int {
	return f.Years*12 + f.Months
}

// BenefitSource indicates which benefit was selected for a spouse
type BenefitSource string

const (
	SourceOwn     BenefitSource = "own"
	SourceSpousal BenefitSource = "spousal"
)

// BenefitCalculation is the adjusted benefit for one (base amount, birth date, claiming age) triple
type BenefitCalculation struct {
	MonthlyBenefit decimal.Decimal `json:"monthly_benefit"`
	AnnualBenefit  decimal.Decimal `json:"annual_benefit"`
	// AdjustmentPercentage is the early reduction (negative) or delayed credit
	// (positive) expressed in percent, e.g. -30 for a 30% reduction
	AdjustmentPercentage decimal.Decimal `json:"adjustment_percentage"`
	FRA                  FRA             `json:"fra"`
}

// SpousalBenefitResult is the outcome of selecting between a spouse's own
// benefit and the spousal benefit derived from the partner's record
type SpousalBenefitResult struct {
	MonthlyBenefit decimal.Decimal `json:"monthly_benefit"`
	Source         BenefitSource   `json:"source"`
	OwnBenefit     decimal.Decimal `json:"own_benefit"`
	SpousalBenefit decimal.Decimal `json:"spousal_benefit"`
}

// YearlyBenefit is one projected year of benefits. Age is the natural key;
// rows are ordered ascending by age. Spouse and household fields are present
// only when the scenario includes a complete spouse.
type YearlyBenefit struct {
	Age            int             `json:"age"`
	Year           int             `json:"year"`
	MonthlyBenefit decimal.Decimal `json:"monthly_benefit"`
	AnnualBenefit  decimal.Decimal `json:"annual_benefit"`
	// COLAAdjusted equals MonthlyBenefit (the nominal COLA-grown series)
	COLAAdjusted decimal.Decimal `json:"cola_adjusted"`
	// InflationAdjusted is the today's-dollars monthly benefit
	InflationAdjusted decimal.Decimal `json:"inflation_adjusted"`

	SpouseMonthlyBenefit   *decimal.Decimal `json:"spouse_monthly_benefit,omitempty"`
	SpouseAnnualBenefit    *decimal.Decimal `json:"spouse_annual_benefit,omitempty"`
	HouseholdAnnualBenefit *decimal.Decimal `json:"household_annual_benefit,omitempty"`
}

// CumulativeBenefit is one row of running totals. Cumulative is monotonically
// non-decreasing in age for non-negative benefits. Optional fields carry the
// opportunity-cost, household and investment overlays when computed.
type CumulativeBenefit struct {
	Age  int `json:"age"`
	Year int `json:"year"`
	// Cumulative is the nominal running sum of annual benefits
	Cumulative decimal.Decimal `json:"cumulative"`
	// CumulativeAdjusted is the running sum in today's dollars
	CumulativeAdjusted decimal.Decimal `json:"cumulative_adjusted"`

	OpportunityCost     *decimal.Decimal `json:"opportunity_cost,omitempty"`
	NetValue            *decimal.Decimal `json:"net_value,omitempty"`
	HouseholdCumulative *decimal.Decimal `json:"household_cumulative,omitempty"`

	InvestmentPrincipal      *decimal.Decimal `json:"investment_principal,omitempty"`
	InvestedValue            *decimal.Decimal `json:"invested_value,omitempty"`
	CumulativeWithInvestment *decimal.Decimal `json:"cumulative_with_investment,omitempty"`
}

// ScenarioProjection is the full projection output for one scenario
type ScenarioProjection struct {
	ScenarioID         string              `json:"scenario_id"`
	ScenarioName       string              `json:"scenario_name"`
	Calculation        BenefitCalculation  `json:"calculation"`
	YearlyBenefits     []YearlyBenefit     `json:"yearly_benefits"`
	CumulativeBenefits []CumulativeBenefit `json:"cumulative_benefits"`
}
