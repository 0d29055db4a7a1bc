package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/compare"
	"github.com/rgehrsitz/ssplan/internal/config"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

type scene int

const (
	sceneScenarios scene = iota
	sceneProjection
	sceneCompare
)

// Model is the interactive scenario browser state
type Model struct {
	configPath string
	config     *domain.Configuration
	engine     *calculation.CalculationEngine

	currentScene scene
	cursor       int

	projection      *domain.ScenarioProjection
	projectionTable table.Model
	compSet         *compare.ComparisonSet

	width  int
	height int
	err    error
}

// NewModel creates the browser model for a configuration file
func NewModel(configPath string) Model {
	return Model{
		configPath:   configPath,
		engine:       calculation.NewCalculationEngine(),
		currentScene: sceneScenarios,
		width:        80,
		height:       24,
	}
}

type configLoadedMsg struct{ config *domain.Configuration }

type projectionMsg struct {
	projection *domain.ScenarioProjection
	err        error
}

type compareMsg struct {
	compSet *compare.ComparisonSet
	err     error
}

type errorMsg struct{ err error }

// Init loads the configuration file
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return errorMsg{err: err}
		}
		return configLoadedMsg{config: cfg}
	}
}

func (m Model) projectScenarioCmd(scenario *domain.Scenario) tea.Cmd {
	return func() tea.Msg {
		projection, err := m.engine.ProjectScenario(scenario)
		return projectionMsg{projection: projection, err: err}
	}
}

func (m Model) compareCmd() tea.Cmd {
	return func() tea.Msg {
		compareEngine := compare.NewCompareEngine(m.engine)
		compSet, err := compareEngine.Compare(context.Background(), m.config)
		return compareMsg{compSet: compSet, err: err}
	}
}

// Update handles messages (required by tea.Model)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configLoadedMsg:
		m.config = msg.config
		m.err = nil
		return m, nil

	case projectionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projection = msg.projection
		m.projectionTable = newProjectionTable(msg.projection, m.height)
		m.currentScene = sceneProjection
		return m, nil

	case compareMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.compSet = msg.compSet
		m.currentScene = sceneCompare
		return m, nil

	case errorMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.currentScene != sceneScenarios {
			m.currentScene = sceneScenarios
		}
		return m, nil

	case "up", "k":
		if m.currentScene == sceneScenarios && m.cursor > 0 {
			m.cursor--
		} else if m.currentScene == sceneProjection {
			var cmd tea.Cmd
			m.projectionTable, cmd = m.projectionTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case "down", "j":
		if m.currentScene == sceneScenarios && m.config != nil && m.cursor < len(m.config.Scenarios)-1 {
			m.cursor++
		} else if m.currentScene == sceneProjection {
			var cmd tea.Cmd
			m.projectionTable, cmd = m.projectionTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case "enter":
		if m.currentScene == sceneScenarios && m.config != nil && len(m.config.Scenarios) > 0 {
			return m, m.projectScenarioCmd(&m.config.Scenarios[m.cursor])
		}
		return m, nil

	case "c":
		if m.config != nil {
			return m, m.compareCmd()
		}
		return m, nil
	}

	return m, nil
}

func newProjectionTable(projection *domain.ScenarioProjection, height int) table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 5},
		{Title: "Year", Width: 6},
		{Title: "Monthly", Width: 12},
		{Title: "Annual", Width: 12},
		{Title: "Cumulative", Width: 14},
		{Title: "Adjusted", Width: 14},
	}

	cumulativeByAge := make(map[int]domain.CumulativeBenefit, len(projection.CumulativeBenefits))
	for _, c := range projection.CumulativeBenefits {
		cumulativeByAge[c.Age] = c
	}

	rows := make([]table.Row, 0, len(projection.YearlyBenefits))
	for _, y := range projection.YearlyBenefits {
		c := cumulativeByAge[y.Age]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", y.Age),
			fmt.Sprintf("%d", y.Year),
			y.MonthlyBenefit.StringFixed(0),
			y.AnnualBenefit.StringFixed(0),
			c.Cumulative.StringFixed(0),
			c.CumulativeAdjusted.StringFixed(0),
		})
	}

	tableHeight := height - 10
	if tableHeight < 5 {
		tableHeight = 5
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
}
