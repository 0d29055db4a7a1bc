package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/domain"
)

// ScenarioSeries pairs a scenario's identity with its projected series. The
// analyzer takes slices rather than maps so pair ordering and tie-breaks stay
// deterministic.
type ScenarioSeries struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Cumulative []domain.CumulativeBenefit `json:"cumulative"`
	Yearly     []domain.YearlyBenefit     `json:"yearly,omitempty"`
}

// ToggleOptions select which value series crossover detection compares
type ToggleOptions struct {
	WithInflation  bool `json:"with_inflation"`
	WithInvestment bool `json:"with_investment"`
	// GrowthRate and InvestmentRatio are annual percentages used when
	// WithInvestment is set
	GrowthRate      decimal.Decimal `json:"growth_rate"`
	InvestmentRatio decimal.Decimal `json:"investment_ratio"`
}

// BreakevenAnalysis is the result of comparing one pair of scenarios.
// BreakevenAge is nil when the series never cross in their overlapping range.
type BreakevenAnalysis struct {
	ScenarioAID   string           `json:"scenario_a_id"`
	ScenarioBID   string           `json:"scenario_b_id"`
	ScenarioAName string           `json:"scenario_a_name"`
	ScenarioBName string           `json:"scenario_b_name"`
	BreakevenAge  *decimal.Decimal `json:"breakeven_age,omitempty"`
	Description   string           `json:"description"`
}

// HorizonWinners names the scenario with the highest cumulative value at each
// comparison horizon
type HorizonWinners struct {
	ShortTerm  string `json:"short_term"`
	MediumTerm string `json:"medium_term"`
	LongTerm   string `json:"long_term"`
}
