package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DescribeBreakeven renders a pair comparison in natural language. With a
// crossover, the scenario that ends ahead is described as overtaking the
// other at the (rounded) breakeven age. Without one, whichever scenario's
// final cumulative value is higher is "always better".
func DescribeBreakeven(a, b ScenarioSeries, breakevenAge *decimal.Decimal) string {
	finalA := finalValue(a.Cumulative)
	finalB := finalValue(b.Cumulative)

	if breakevenAge == nil {
		switch {
		case finalA.GreaterThan(finalB):
			return fmt.Sprintf("%s is always better than %s", a.Name, b.Name)
		case finalB.GreaterThan(finalA):
			return fmt.Sprintf("%s is always better than %s", b.Name, a.Name)
		default:
			return fmt.Sprintf("%s and %s are equivalent over the projection", a.Name, b.Name)
		}
	}

	age := breakevenAge.Round(0).IntPart()
	leader, trailer := a.Name, b.Name
	if finalB.GreaterThan(finalA) {
		leader, trailer = b.Name, a.Name
	}
	return fmt.Sprintf("%s overtakes %s at about age %d", leader, trailer, age)
}
