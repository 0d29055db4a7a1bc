package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

// compareValue is the default per-age comparison value: NetValue when an
// opportunity-cost overlay computed one, otherwise the adjusted running total
func compareValue(c domain.CumulativeBenefit) decimal.Decimal {
	if c.NetValue != nil {
		return *c.NetValue
	}
	return c.CumulativeAdjusted
}

// DisplayValue resolves the value a consumer wants for a cumulative row under
// the given toggles. Investment takes priority over inflation adjustment,
// which takes priority over the raw nominal total.
func DisplayValue(c domain.CumulativeBenefit, withInflation, withInvestment bool) decimal.Decimal {
	if withInvestment && c.CumulativeWithInvestment != nil {
		return *c.CumulativeWithInvestment
	}
	if withInflation {
		return compareValue(c)
	}
	return c.Cumulative
}

// FindBreakevenAge scans the overlapping age range of two cumulative series
// for the first sign change in their difference and linearly interpolates the
// fractional crossover age within that one-year interval. It returns nil when
// the series never cross or share no ages. Exact equality at a sample is not
// itself a crossover: only a true sign flip between consecutive ages counts.
func FindBreakevenAge(seriesA, seriesB []domain.CumulativeBenefit) *decimal.Decimal {
	return findCrossover(seriesA, seriesB, compareValue)
}

// FindBreakevenAgeWithToggles runs the same crossover scan but first applies
// the investment overlay to both series when requested, and compares the
// toggled display value instead of the raw net/adjusted value.
func FindBreakevenAgeWithToggles(seriesA, seriesB ScenarioSeries, opts ToggleOptions) *decimal.Decimal {
	a := seriesA.Cumulative
	b := seriesB.Cumulative
	if opts.WithInvestment {
		a = calculation.AddInvestmentReturns(a, seriesA.Yearly, opts.GrowthRate, opts.InvestmentRatio)
		b = calculation.AddInvestmentReturns(b, seriesB.Yearly, opts.GrowthRate, opts.InvestmentRatio)
	}
	return findCrossover(a, b, func(c domain.CumulativeBenefit) decimal.Decimal {
		return DisplayValue(c, opts.WithInflation, opts.WithInvestment)
	})
}

func findCrossover(seriesA, seriesB []domain.CumulativeBenefit, value func(domain.CumulativeBenefit) decimal.Decimal) *decimal.Decimal {
	if len(seriesA) == 0 || len(seriesB) == 0 {
		return nil
	}

	byAgeA := indexByAge(seriesA)
	byAgeB := indexByAge(seriesB)

	lo := seriesA[0].Age
	if seriesB[0].Age > lo {
		lo = seriesB[0].Age
	}
	hi := seriesA[len(seriesA)-1].Age
	if last := seriesB[len(seriesB)-1].Age; last < hi {
		hi = last
	}
	if lo > hi {
		return nil
	}

	havePrev := false
	var prevDiff decimal.Decimal
	var prevAge int
	for age := lo; age <= hi; age++ {
		a, okA := byAgeA[age]
		b, okB := byAgeB[age]
		if !okA || !okB {
			continue
		}
		diff := value(a).Sub(value(b))

		if havePrev && prevDiff.Mul(diff).IsNegative() {
			// fractional offset within [prevAge, age], scaled by the interval
			// width so series with missing ages interpolate over the real gap
			fraction := prevDiff.Div(diff.Sub(prevDiff)).Abs()
			span := decimal.NewFromInt(int64(age - prevAge))
			breakeven := decimal.NewFromInt(int64(prevAge)).Add(fraction.Mul(span))
			return &breakeven
		}
		prevDiff = diff
		prevAge = age
		havePrev = true
	}
	return nil
}

func indexByAge(series []domain.CumulativeBenefit) map[int]domain.CumulativeBenefit {
	byAge := make(map[int]domain.CumulativeBenefit, len(series))
	for _, c := range series {
		byAge[c.Age] = c
	}
	return byAge
}

// valueAt returns the comparison value at an exact age, or zero when the age
// is not present in the series
func valueAt(series []domain.CumulativeBenefit, age int) decimal.Decimal {
	for _, c := range series {
		if c.Age == age {
			return compareValue(c)
		}
	}
	return decimal.Zero
}

// finalValue returns the comparison value of the last row, or zero for an
// empty series
func finalValue(series []domain.CumulativeBenefit) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return compareValue(series[len(series)-1])
}
