package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario ID",
		"Scenario",
		"Claiming Age",
		"Monthly Benefit",
		"Adjustment %",
		"Short Term Total",
		"Medium Term Total",
		"Long Term Total",
		"Final Age",
		"Final Cumulative",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, r := range compSet.Results {
		row := []string{
			r.ID,
			r.Name,
			r.ClaimingAge.StringFixed(1),
			r.MonthlyAtClaim.StringFixed(2),
			r.AdjustmentPercentage.StringFixed(2),
			r.ShortTermTotal.StringFixed(2),
			r.MediumTermTotal.StringFixed(2),
			r.LongTermTotal.StringFixed(2),
			strconv.Itoa(r.FinalAge),
			r.FinalCumulative.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	// Breakeven pairs as a second block
	if err := writer.Write([]string{}); err != nil {
		return "", err
	}
	if err := writer.Write([]string{"Scenario A", "Scenario B", "Breakeven Age", "Description"}); err != nil {
		return "", err
	}
	for _, b := range compSet.Breakevens {
		age := ""
		if b.BreakevenAge != nil {
			age = b.BreakevenAge.StringFixed(2)
		}
		if err := writer.Write([]string{b.ScenarioAName, b.ScenarioBName, age, b.Description}); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
