package compare

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/breakeven"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

// ScenarioMetrics summarizes one scenario's projection for comparison output
type ScenarioMetrics struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ClaimingAge decimal.Decimal `json:"claiming_age"`
	FRA         domain.FRA      `json:"fra"`

	MonthlyAtClaim       decimal.Decimal `json:"monthly_at_claim"`
	AdjustmentPercentage decimal.Decimal `json:"adjustment_percentage"`

	// Cumulative adjusted totals at the comparison horizons; zero when the
	// projection does not reach the horizon age
	ShortTermTotal  decimal.Decimal `json:"short_term_total"`
	MediumTermTotal decimal.Decimal `json:"medium_term_total"`
	LongTermTotal   decimal.Decimal `json:"long_term_total"`

	FinalAge        int             `json:"final_age"`
	FinalCumulative decimal.Decimal `json:"final_cumulative"`
}

// ComparisonSet is the complete output of a multi-scenario comparison
type ComparisonSet struct {
	Horizons   domain.Horizons               `json:"horizons"`
	Results    []ScenarioMetrics             `json:"results"`
	Breakevens []breakeven.BreakevenAnalysis `json:"breakevens"`
	Winners    breakeven.HorizonWinners      `json:"winners"`
}
