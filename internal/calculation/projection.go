package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/domain"
)

// ProjectBenefits produces one row per whole age from ceil(claimingAge)
// through endAge. The claiming year itself has zero elapsed years, so no COLA
// applies in year one. MonthlyBenefit and COLAAdjusted carry the nominal
// COLA-grown amount; InflationAdjusted carries the today's-dollars amount
// grown at the net rate (colaRate - inflationRate). That is a growth-rate
// model of purchasing-power drift, not a discount; see DiscountToPresentValue
// for the division-based alternative.
func ProjectBenefits(startingBenefit, claimingAge decimal.Decimal, endAge int, colaRatePct, inflationRatePct decimal.Decimal, birthDate time.Time) []domain.YearlyBenefit {
	startAge := int(claimingAge.Ceil().IntPart())
	if endAge < startAge {
		return nil
	}

	colaFactor := pctFactor(colaRatePct)
	realFactor := pctFactor(colaRatePct.Sub(inflationRatePct))

	benefits := make([]domain.YearlyBenefit, 0, endAge-startAge+1)
	for age := startAge; age <= endAge; age++ {
		yearsFromClaiming := age - startAge
		nominal := startingBenefit.Mul(powInt(colaFactor, yearsFromClaiming))
		real := startingBenefit.Mul(powInt(realFactor, yearsFromClaiming))

		benefits = append(benefits, domain.YearlyBenefit{
			Age:               age,
			Year:              birthDate.Year() + age,
			MonthlyBenefit:    nominal,
			AnnualBenefit:     nominal.Mul(decimalTwelve),
			COLAAdjusted:      nominal,
			InflationAdjusted: real,
		})
	}
	return benefits
}

// DiscountToPresentValue replaces InflationAdjusted with the discounted value
// COLAAdjusted / (1 + inflationRate/100)^(year - baseYear). This is the
// division-based present-value model; it is deliberately a separate pass from
// the net-growth series ProjectBenefits builds, and callers must not mix the
// two when comparing scenarios.
func DiscountToPresentValue(benefits []domain.YearlyBenefit, inflationRatePct decimal.Decimal, baseYear int) []domain.YearlyBenefit {
	factor := pctFactor(inflationRatePct)

	out := make([]domain.YearlyBenefit, len(benefits))
	for i, b := range benefits {
		row := b
		row.InflationAdjusted = b.COLAAdjusted.Div(powInt(factor, b.Year-baseYear))
		out[i] = row
	}
	return out
}

// CumulativeBenefits folds a yearly series into running totals, one output
// row per input row in the same age order. Cumulative sums the nominal annual
// benefit; CumulativeAdjusted sums InflationAdjusted x 12 when
// useTodaysDollars is set, otherwise the nominal annual amount. When any row
// carries household data, HouseholdCumulative accumulates the household annual
// benefit, falling back to the individual amount for ages without spouse data.
func CumulativeBenefits(benefits []domain.YearlyBenefit, useTodaysDollars bool) []domain.CumulativeBenefit {
	hasHousehold := false
	for _, b := range benefits {
		if b.HouseholdAnnualBenefit != nil {
			hasHousehold = true
			break
		}
	}

	out := make([]domain.CumulativeBenefit, 0, len(benefits))
	cumulative := decimal.Zero
	adjusted := decimal.Zero
	household := decimal.Zero
	for _, b := range benefits {
		cumulative = cumulative.Add(b.AnnualBenefit)
		if useTodaysDollars {
			adjusted = adjusted.Add(b.InflationAdjusted.Mul(decimalTwelve))
		} else {
			adjusted = adjusted.Add(b.AnnualBenefit)
		}

		row := domain.CumulativeBenefit{
			Age:                b.Age,
			Year:               b.Year,
			Cumulative:         cumulative,
			CumulativeAdjusted: adjusted,
		}
		if hasHousehold {
			if b.HouseholdAnnualBenefit != nil {
				household = household.Add(*b.HouseholdAnnualBenefit)
			} else {
				household = household.Add(b.AnnualBenefit)
			}
			h := household
			row.HouseholdCumulative = &h
		}
		out = append(out, row)
	}
	return out
}

// OpportunityCost models the value at currentAge of investing the annual
// benefit an early claimer received between earlyClaimingAge and
// delayedClaimingAge, each year's amount compounded forward at growthRatePct.
// It returns zero until the delayed claiming age is reached, since nothing
// has been forgone before the delayed scenario starts.
func OpportunityCost(earlyClaimingAge int, earlyAnnualBenefit decimal.Decimal, delayedClaimingAge, currentAge int, growthRatePct decimal.Decimal) decimal.Decimal {
	if currentAge < delayedClaimingAge {
		return decimal.Zero
	}

	factor := pctFactor(growthRatePct)
	total := decimal.Zero
	for year := earlyClaimingAge; year < delayedClaimingAge; year++ {
		total = total.Add(earlyAnnualBenefit.Mul(powInt(factor, currentAge-year)))
	}
	return total
}

// ProjectScenario runs the full projection for a scenario: base benefit at the
// claiming age, yearly COLA/inflation series, optional spouse series merged by
// age, and cumulative totals. The scenario's benefit amount is taken as
// already expressed in today's dollars, so no additional COLA pass runs
// between FRA and the claiming year.
func (ce *CalculationEngine) ProjectScenario(scenario *domain.Scenario) (*domain.ScenarioProjection, error) {
	calc, err := ce.CalculateBenefit(scenario.BenefitAmount, scenario.BirthDate, scenario.ClaimingAge)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.ID, err)
	}

	ce.Logger.Debug().
		Str("scenario", scenario.ID).
		Str("monthly_benefit", calc.MonthlyBenefit.String()).
		Str("claiming_age", scenario.ClaimingAge.String()).
		Msg("projecting scenario")

	yearly := ProjectBenefits(calc.MonthlyBenefit, scenario.ClaimingAge, scenario.LifetimeAge,
		scenario.COLARate, scenario.InflationRate, scenario.BirthDate)

	if scenario.HasCompleteSpouse() {
		spousal, err := ce.CalculateSpousalBenefit(*scenario.SpouseBenefitAmount, scenario.BenefitAmount,
			*scenario.SpouseBirthDate, *scenario.SpouseClaimingAge)
		if err != nil {
			return nil, fmt.Errorf("scenario %s spouse: %w", scenario.ID, err)
		}

		spouseYearly := ProjectBenefits(spousal.MonthlyBenefit, *scenario.SpouseClaimingAge, scenario.LifetimeAge,
			scenario.COLARate, scenario.InflationRate, *scenario.SpouseBirthDate)
		yearly = mergeSpouseByAge(yearly, spouseYearly)
	}

	return &domain.ScenarioProjection{
		ScenarioID:         scenario.ID,
		ScenarioName:       scenario.Name,
		Calculation:        calc,
		YearlyBenefits:     yearly,
		CumulativeBenefits: CumulativeBenefits(yearly, true),
	}, nil
}

// mergeSpouseByAge left-joins spouse rows onto the individual's series by age.
// Ages with no spouse row keep their spouse fields absent.
func mergeSpouseByAge(own, spouse []domain.YearlyBenefit) []domain.YearlyBenefit {
	spouseByAge := make(map[int]domain.YearlyBenefit, len(spouse))
	for _, s := range spouse {
		spouseByAge[s.Age] = s
	}

	out := make([]domain.YearlyBenefit, len(own))
	for i, b := range own {
		row := b
		if s, ok := spouseByAge[b.Age]; ok {
			monthly := s.MonthlyBenefit
			annual := s.AnnualBenefit
			household := b.AnnualBenefit.Add(annual)
			row.SpouseMonthlyBenefit = &monthly
			row.SpouseAnnualBenefit = &annual
			row.HouseholdAnnualBenefit = &household
		}
		out[i] = row
	}
	return out
}

// TotalLifetimeBenefit looks up the adjusted cumulative total at an exact age.
// A missing age returns zero; there is no interpolation.
func TotalLifetimeBenefit(cumulative []domain.CumulativeBenefit, endAge int) decimal.Decimal {
	for _, c := range cumulative {
		if c.Age == endAge {
			return c.CumulativeAdjusted
		}
	}
	return decimal.Zero
}

// CompareWithOpportunityCost projects both scenarios, then overlays the
// delayed scenario's cumulative series with the opportunity cost of the
// benefits the early scenario collected in the gap years. The early
// scenario's first-year annual benefit is the fixed per-year amount invested.
// NetValue is CumulativeAdjusted minus the opportunity cost at each age.
func (ce *CalculationEngine) CompareWithOpportunityCost(earlyScenario, delayedScenario *domain.Scenario, growthRatePct decimal.Decimal) ([]domain.CumulativeBenefit, error) {
	early, err := ce.ProjectScenario(earlyScenario)
	if err != nil {
		return nil, err
	}
	delayed, err := ce.ProjectScenario(delayedScenario)
	if err != nil {
		return nil, err
	}
	if len(early.YearlyBenefits) == 0 {
		return nil, fmt.Errorf("scenario %s: empty projection", earlyScenario.ID)
	}

	earlyFirstAnnual := early.YearlyBenefits[0].AnnualBenefit
	earlyAge := earlyScenario.ClaimingAgeYears()
	delayedAge := delayedScenario.ClaimingAgeYears()

	out := make([]domain.CumulativeBenefit, len(delayed.CumulativeBenefits))
	for i, c := range delayed.CumulativeBenefits {
		row := c
		cost := OpportunityCost(earlyAge, earlyFirstAnnual, delayedAge, c.Age, growthRatePct)
		net := c.CumulativeAdjusted.Sub(cost)
		row.OpportunityCost = &cost
		row.NetValue = &net
		out[i] = row
	}
	return out, nil
}

// AddInvestmentReturns overlays a cumulative series with the value of
// diverting investmentRatioPct (0-100) of each year's benefit into an
// investment compounding at growthRatePct. The per-year contributions are
// compounded forward to each row's age, mirroring the opportunity-cost model.
func AddInvestmentReturns(cumulative []domain.CumulativeBenefit, yearly []domain.YearlyBenefit, growthRatePct, investmentRatioPct decimal.Decimal) []domain.CumulativeBenefit {
	ratio := investmentRatioPct.Div(decimalHundred)
	factor := pctFactor(growthRatePct)

	out := make([]domain.CumulativeBenefit, len(cumulative))
	for i, c := range cumulative {
		row := c
		principal := decimal.Zero
		value := decimal.Zero
		for _, y := range yearly {
			if y.Age > c.Age {
				break
			}
			contribution := y.AnnualBenefit.Mul(ratio)
			principal = principal.Add(contribution)
			value = value.Add(contribution.Mul(powInt(factor, c.Age-y.Age)))
		}
		withInvestment := c.Cumulative.Add(value)

		row.InvestmentPrincipal = &principal
		row.InvestedValue = &value
		row.CumulativeWithInvestment = &withInvestment
		out[i] = row
	}
	return out
}
