package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder

	sb.WriteString("SOCIAL SECURITY CLAIMING COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n\n")

	nameWidth := 24
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		8, "Claim",
		numWidth, "Monthly",
		numWidth, fmt.Sprintf("Total @%d", compSet.Horizons.ShortTermAge),
		numWidth, fmt.Sprintf("Total @%d", compSet.Horizons.MediumTermAge),
		numWidth, fmt.Sprintf("Total @%d", compSet.Horizons.LongTermAge)))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, r := range compSet.Results {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
			nameWidth, truncate(r.Name, nameWidth),
			8, r.ClaimingAge.StringFixed(1),
			numWidth, "$"+formatDecimal(r.MonthlyAtClaim),
			numWidth, "$"+formatDecimal(r.ShortTermTotal),
			numWidth, "$"+formatDecimal(r.MediumTermTotal),
			numWidth, "$"+formatDecimal(r.LongTermTotal)))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.Breakevens) > 0 {
		sb.WriteString("\nBREAKEVEN ANALYSIS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, b := range compSet.Breakevens {
			if b.BreakevenAge != nil {
				sb.WriteString(fmt.Sprintf("  %s vs %s: breakeven at age %s - %s\n",
					b.ScenarioAName, b.ScenarioBName, b.BreakevenAge.StringFixed(1), b.Description))
			} else {
				sb.WriteString(fmt.Sprintf("  %s vs %s: no crossover - %s\n",
					b.ScenarioAName, b.ScenarioBName, b.Description))
			}
		}
	}

	sb.WriteString("\nBEST SCENARIO BY HORIZON\n")
	sb.WriteString(strings.Repeat("-", 96) + "\n")
	sb.WriteString(fmt.Sprintf("  Short term (age %d):  %s\n", compSet.Horizons.ShortTermAge, nameForID(compSet, compSet.Winners.ShortTerm)))
	sb.WriteString(fmt.Sprintf("  Medium term (age %d): %s\n", compSet.Horizons.MediumTermAge, nameForID(compSet, compSet.Winners.MediumTerm)))
	sb.WriteString(fmt.Sprintf("  Long term (age %d):   %s\n", compSet.Horizons.LongTermAge, nameForID(compSet, compSet.Winners.LongTerm)))

	return sb.String(), nil
}

func nameForID(compSet *ComparisonSet, id string) string {
	for _, r := range compSet.Results {
		if r.ID == id {
			return r.Name
		}
	}
	return id
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// formatDecimal renders a decimal with thousands separators and no cents
func formatDecimal(d decimal.Decimal) string {
	s := d.Round(0).String()
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	result := strings.Join(parts, ",")
	if negative {
		result = "-" + result
	}
	return result
}
