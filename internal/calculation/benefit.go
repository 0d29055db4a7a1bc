package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/domain"
)

// ErrClaimingAgeOutOfRange is returned when a claiming age falls outside the
// statutory [62, 70] window
var ErrClaimingAgeOutOfRange = errors.New("claiming age must be between 62 and 70")

var (
	minClaimingAge = decimal.NewFromInt(62)
	maxClaimingAge = decimal.NewFromInt(70)
)

// CalculateFRA determines the Full Retirement Age for a birth date. This is a
// total function: birth years outside the transition table fall to the
// statutory boundary values.
func (ce *CalculationEngine) CalculateFRA(birthDate time.Time) domain.FRA {
	return ce.Rules.FRAForBirthYear(birthDate.Year())
}

// EarlyReductionFraction returns the benefit reduction for claiming before
// FRA as a negative fraction (-0.30 for a 30% reduction). The first 36 months
// before FRA reduce at 5/9 of 1% per month, months beyond that at 5/12 of 1%.
func (ce *CalculationEngine) EarlyReductionFraction(claimingAge decimal.Decimal, fra domain.FRA) decimal.Decimal {
	monthsBefore := fra.TotalMonths() - claimingAgeMonths(claimingAge)
	if monthsBefore <= 0 {
		return decimal.Zero
	}

	adj := ce.Rules.BenefitAdjustments
	if monthsBefore <= 36 {
		return adj.First36MonthsRate.Mul(decimal.NewFromInt(int64(monthsBefore))).Neg()
	}

	first := adj.First36MonthsRate.Mul(decimal.NewFromInt(36))
	rest := adj.AdditionalMonthsRate.Mul(decimal.NewFromInt(int64(monthsBefore - 36)))
	return first.Add(rest).Neg()
}

// DelayedCreditFraction returns the benefit increase for claiming after FRA
// as a positive fraction (0.24 for a 24% credit). Credits accrue at 2/3 of 1%
// per month and stop at age 70.
func (ce *CalculationEngine) DelayedCreditFraction(claimingAge decimal.Decimal, fra domain.FRA) decimal.Decimal {
	monthsAfter := claimingAgeMonths(claimingAge) - fra.TotalMonths()
	if monthsAfter <= 0 {
		return decimal.Zero
	}

	adj := ce.Rules.BenefitAdjustments
	maxMonths := (adj.MaxCreditAge - fra.Years) * 12
	if monthsAfter > maxMonths {
		monthsAfter = maxMonths
	}
	return adj.DelayedCreditMonthlyRate.Mul(decimal.NewFromInt(int64(monthsAfter)))
}

// CalculateBenefit computes the monthly and annual benefit for a claiming age,
// applying the early reduction or delayed credit relative to FRA. The claiming
// age must be within [62, 70].
func (ce *CalculationEngine) CalculateBenefit(baseAmount decimal.Decimal, birthDate time.Time, claimingAge decimal.Decimal) (domain.BenefitCalculation, error) {
	if claimingAge.LessThan(minClaimingAge) || claimingAge.GreaterThan(maxClaimingAge) {
		return domain.BenefitCalculation{}, fmt.Errorf("%w: got %s", ErrClaimingAgeOutOfRange, claimingAge.String())
	}

	fra := ce.CalculateFRA(birthDate)

	var adjustment decimal.Decimal
	claimMonths := claimingAgeMonths(claimingAge)
	switch {
	case claimMonths < fra.TotalMonths():
		adjustment = ce.EarlyReductionFraction(claimingAge, fra)
	case claimMonths > fra.TotalMonths():
		adjustment = ce.DelayedCreditFraction(claimingAge, fra)
	default:
		adjustment = decimal.Zero
	}

	monthly := baseAmount.Mul(onePlus(adjustment)).Round(2)
	return domain.BenefitCalculation{
		MonthlyBenefit:       monthly,
		AnnualBenefit:        monthly.Mul(decimalTwelve),
		AdjustmentPercentage: adjustment.Mul(decimalHundred),
		FRA:                  fra,
	}, nil
}

// CalculateSpousalBenefit selects between a spouse's own benefit and the
// spousal benefit derived from the partner's record. The spousal base is half
// the partner's PIA, reduced by the same early formula when claimed before the
// spouse's FRA; delayed credits never raise it above 50%. Ties go to "own".
func (ce *CalculationEngine) CalculateSpousalBenefit(ownBaseAmount, partnerBaseAmount decimal.Decimal, spouseBirthDate time.Time, spouseClaimingAge decimal.Decimal) (domain.SpousalBenefitResult, error) {
	ownCalc, err := ce.CalculateBenefit(ownBaseAmount, spouseBirthDate, spouseClaimingAge)
	if err != nil {
		return domain.SpousalBenefitResult{}, err
	}
	ownBenefit := ownCalc.MonthlyBenefit

	fra := ce.CalculateFRA(spouseBirthDate)
	spousalBase := partnerBaseAmount.Mul(ce.Rules.BenefitAdjustments.SpousalFactor)
	spousalBenefit := spousalBase
	if claimingAgeMonths(spouseClaimingAge) < fra.TotalMonths() {
		reduction := ce.EarlyReductionFraction(spouseClaimingAge, fra)
		spousalBenefit = spousalBase.Mul(onePlus(reduction))
	}
	spousalBenefit = spousalBenefit.Round(2)

	result := domain.SpousalBenefitResult{
		OwnBenefit:     ownBenefit,
		SpousalBenefit: spousalBenefit,
	}
	if ownBenefit.GreaterThanOrEqual(spousalBenefit) {
		result.MonthlyBenefit = ownBenefit
		result.Source = domain.SourceOwn
	} else {
		result.MonthlyBenefit = spousalBenefit
		result.Source = domain.SourceSpousal
	}
	return result, nil
}

// ProjectMaxBenefitAtFRA projects the statutory maximum monthly benefit
// forward to the year the subject reaches FRA, compounding at colaRatePct
// annually. No growth applies when the FRA year is not in the future.
func (ce *CalculationEngine) ProjectMaxBenefitAtFRA(birthDate time.Time, colaRatePct decimal.Decimal, currentYear int) decimal.Decimal {
	fra := ce.CalculateFRA(birthDate)
	fraYear := birthDate.Year() + fra.Years

	currentMax := ce.Rules.MaxBenefitForYear(currentYear)
	if fraYear <= currentYear {
		return currentMax.Round(0)
	}

	factor := powInt(pctFactor(colaRatePct), fraYear-currentYear)
	return currentMax.Mul(factor).Round(0)
}
