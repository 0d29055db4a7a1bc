package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/ssplan/internal/breakeven"
	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

// CompareEngine orchestrates multi-scenario comparison: it projects every
// scenario, computes pairwise breakevens, and picks horizon winners
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare projects all scenarios in the configuration and assembles the
// comparison set. Scenario order in the configuration determines pair order
// and tie-breaks.
func (ce *CompareEngine) Compare(ctx context.Context, config *domain.Configuration) (*ComparisonSet, error) {
	results := make([]ScenarioMetrics, 0, len(config.Scenarios))
	series := make([]breakeven.ScenarioSeries, 0, len(config.Scenarios))

	for i := range config.Scenarios {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		scenario := &config.Scenarios[i]
		projection, err := ce.CalcEngine.ProjectScenario(scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to project scenario %s: %w", scenario.ID, err)
		}

		results = append(results, ce.metricsFor(scenario, projection, config.Horizons))
		series = append(series, breakeven.ScenarioSeries{
			ID:         scenario.ID,
			Name:       scenario.Name,
			Cumulative: projection.CumulativeBenefits,
			Yearly:     projection.YearlyBenefits,
		})
	}

	return &ComparisonSet{
		Horizons:   config.Horizons,
		Results:    results,
		Breakevens: breakeven.CalculateAllBreakevens(series),
		Winners:    breakeven.FindBestScenarios(series, config.Horizons),
	}, nil
}

func (ce *CompareEngine) metricsFor(scenario *domain.Scenario, projection *domain.ScenarioProjection, horizons domain.Horizons) ScenarioMetrics {
	metrics := ScenarioMetrics{
		ID:                   scenario.ID,
		Name:                 scenario.Name,
		ClaimingAge:          scenario.ClaimingAge,
		FRA:                  projection.Calculation.FRA,
		MonthlyAtClaim:       projection.Calculation.MonthlyBenefit,
		AdjustmentPercentage: projection.Calculation.AdjustmentPercentage,
		ShortTermTotal:       calculation.TotalLifetimeBenefit(projection.CumulativeBenefits, horizons.ShortTermAge),
		MediumTermTotal:      calculation.TotalLifetimeBenefit(projection.CumulativeBenefits, horizons.MediumTermAge),
		LongTermTotal:        calculation.TotalLifetimeBenefit(projection.CumulativeBenefits, horizons.LongTermAge),
	}
	if n := len(projection.CumulativeBenefits); n > 0 {
		last := projection.CumulativeBenefits[n-1]
		metrics.FinalAge = last.Age
		metrics.FinalCumulative = last.CumulativeAdjusted
	}
	return metrics
}
