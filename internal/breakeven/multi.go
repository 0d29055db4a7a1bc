package breakeven

import (
	"github.com/rgehrsitz/ssplan/internal/domain"
)

// CalculateAllBreakevens computes the crossover for every unordered pair of
// scenarios, in input order. Pairs that never cross get an "always better"
// description based on their final cumulative values.
func CalculateAllBreakevens(series []ScenarioSeries) []BreakevenAnalysis {
	analyses := make([]BreakevenAnalysis, 0, len(series)*(len(series)-1)/2)
	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			a := series[i]
			b := series[j]
			age := FindBreakevenAge(a.Cumulative, b.Cumulative)
			analyses = append(analyses, BreakevenAnalysis{
				ScenarioAID:   a.ID,
				ScenarioBID:   b.ID,
				ScenarioAName: a.Name,
				ScenarioBName: b.Name,
				BreakevenAge:  age,
				Description:   DescribeBreakeven(a, b, age),
			})
		}
	}
	return analyses
}

// FindBestScenarios picks, for each horizon age, the scenario whose cumulative
// value at that exact age is highest. An age missing from a series counts as
// zero. Ties keep the first scenario encountered.
func FindBestScenarios(series []ScenarioSeries, horizons domain.Horizons) HorizonWinners {
	return HorizonWinners{
		ShortTerm:  bestAtAge(series, horizons.ShortTermAge),
		MediumTerm: bestAtAge(series, horizons.MediumTermAge),
		LongTerm:   bestAtAge(series, horizons.LongTermAge),
	}
}

func bestAtAge(series []ScenarioSeries, age int) string {
	if len(series) == 0 {
		return ""
	}
	best := series[0].ID
	bestValue := valueAt(series[0].Cumulative, age)
	for _, s := range series[1:] {
		if v := valueAt(s.Cumulative, age); v.GreaterThan(bestValue) {
			best = s.ID
			bestValue = v
		}
	}
	return best
}
