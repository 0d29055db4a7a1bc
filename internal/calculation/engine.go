package calculation

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssplan/internal/domain"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// CalculationEngine performs all benefit and projection calculations against a
// set of SSA rules. Every method is a pure function of its inputs and the
// rules; engines are safe for concurrent use.
type CalculationEngine struct {
	Rules  domain.SSARules
	Logger zerolog.Logger
}

// NewCalculationEngine creates an engine with the compiled-in SSA rules
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Rules:  domain.DefaultSSARules(),
		Logger: zerolog.Nop(),
	}
}

// NewCalculationEngineWithRules creates an engine with externally loaded rules
func NewCalculationEngineWithRules(rules domain.SSARules) *CalculationEngine {
	return &CalculationEngine{
		Rules:  rules,
		Logger: zerolog.Nop(),
	}
}

// WithLogger returns a copy of the engine carrying the given logger for
// calculation tracing. The receiver is left untouched, so an engine already
// shared across goroutines stays safe.
func (ce CalculationEngine) WithLogger(logger zerolog.Logger) *CalculationEngine {
	ce.Logger = logger
	return &ce
}

// onePlus returns 1 + value
func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}

// pctFactor converts an annual percent rate (2.5 for 2.5%) into the growth
// factor 1 + rate/100
func pctFactor(ratePct decimal.Decimal) decimal.Decimal {
	return onePlus(ratePct.Div(decimalHundred))
}

// powInt raises base to an integer power; negative exponents invert
func powInt(base decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		return decimalOne.Div(powInt(base, -n))
	}
	result := decimalOne
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	return result
}

// claimingAgeMonths converts a possibly fractional claiming age to whole months
func claimingAgeMonths(claimingAge decimal.Decimal) int {
	return int(claimingAge.Mul(decimalTwelve).Round(0).IntPart())
}
