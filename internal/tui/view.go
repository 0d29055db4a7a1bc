package tui

import (
	"fmt"
	"strings"
)

// View renders the current scene (required by tea.Model)
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nq: quit  esc: back")
	}
	if m.config == nil {
		return titleStyle.Render("ssplan") + "\nLoading configuration..."
	}

	switch m.currentScene {
	case sceneProjection:
		return m.viewProjection()
	case sceneCompare:
		return m.viewCompare()
	default:
		return m.viewScenarios()
	}
}

func (m Model) viewScenarios() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Claiming Scenarios"))
	sb.WriteString("\n")

	for i, s := range m.config.Scenarios {
		line := fmt.Sprintf("%s  (claim at %s, benefit $%s)", s.Name, s.ClaimingAge.StringFixed(1), s.BenefitAmount.StringFixed(0))
		if i == m.cursor {
			sb.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			sb.WriteString(unselectedItemStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("enter: project  c: compare all  q: quit"))
	return sb.String()
}

func (m Model) viewProjection() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Projection: " + m.projection.ScenarioName))
	sb.WriteString("\n")

	calc := m.projection.Calculation
	summary := fmt.Sprintf("FRA %d yr %d mo   Monthly at claim $%s   Adjustment %s%%",
		calc.FRA.Years, calc.FRA.Months,
		calc.MonthlyBenefit.StringFixed(2),
		calc.AdjustmentPercentage.StringFixed(2))
	sb.WriteString(summaryStyle.Render(summary))
	sb.WriteString("\n")
	sb.WriteString(m.projectionTable.View())
	sb.WriteString(helpStyle.Render("\nesc: back  q: quit"))
	return sb.String()
}

func (m Model) viewCompare() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Scenario Comparison"))
	sb.WriteString("\n")

	for _, b := range m.compSet.Breakevens {
		sb.WriteString("  " + b.Description + "\n")
	}

	sb.WriteString("\n")
	winners := fmt.Sprintf("Short term (%d): %s   Medium term (%d): %s   Long term (%d): %s",
		m.compSet.Horizons.ShortTermAge, m.compSet.Winners.ShortTerm,
		m.compSet.Horizons.MediumTermAge, m.compSet.Winners.MediumTerm,
		m.compSet.Horizons.LongTermAge, m.compSet.Winners.LongTerm)
	sb.WriteString(summaryStyle.Render(winners))
	sb.WriteString(helpStyle.Render("\nesc: back  q: quit"))
	return sb.String()
}
