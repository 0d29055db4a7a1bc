package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ssplan/internal/domain"
)

func validScenario() domain.Scenario {
	return domain.Scenario{
		ID:            "base",
		Name:          "Claim at FRA",
		BirthDate:     time.Date(1960, 6, 15, 0, 0, 0, 0, time.UTC),
		BenefitAmount: decimal.NewFromInt(3000),
		ClaimingAge:   decimal.NewFromInt(67),
		COLARate:      decimal.NewFromFloat(2.5),
		InflationRate: decimal.NewFromFloat(2.5),
		LifetimeAge:   90,
	}
}

func TestValidateScenario_Valid(t *testing.T) {
	parser := NewInputParser()
	scenario := validScenario()
	assert.NoError(t, parser.ValidateScenario(&scenario))
}

func TestValidateScenario_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.Scenario)
		errorMsg string
	}{
		{"missing id", func(s *domain.Scenario) { s.ID = "" }, "id is required"},
		{"missing name", func(s *domain.Scenario) { s.Name = "" }, "name is required"},
		{"missing birth date", func(s *domain.Scenario) { s.BirthDate = time.Time{} }, "birth date is required"},
		{"claiming age too low", func(s *domain.Scenario) { s.ClaimingAge = decimal.NewFromInt(61) }, "claiming age must be between 62 and 70"},
		{"claiming age too high", func(s *domain.Scenario) { s.ClaimingAge = decimal.NewFromFloat(70.5) }, "claiming age must be between 62 and 70"},
		{"zero benefit", func(s *domain.Scenario) { s.BenefitAmount = decimal.Zero }, "benefit amount must be positive"},
		{"negative benefit", func(s *domain.Scenario) { s.BenefitAmount = decimal.NewFromInt(-100) }, "benefit amount must be positive"},
		{"benefit over cap", func(s *domain.Scenario) { s.BenefitAmount = decimal.NewFromInt(6000) }, "exceeds 125%"},
		{"lifetime before claiming", func(s *domain.Scenario) { s.LifetimeAge = 65 }, "lifetime age must be greater"},
		{"lifetime equals claiming", func(s *domain.Scenario) { s.LifetimeAge = 67 }, "lifetime age must be greater"},
		{"lifetime too high", func(s *domain.Scenario) { s.LifetimeAge = 130 }, "at most 120"},
		{"cola rate too high", func(s *domain.Scenario) { s.COLARate = decimal.NewFromInt(16) }, "COLA rate"},
		{"negative cola", func(s *domain.Scenario) { s.COLARate = decimal.NewFromInt(-1) }, "COLA rate"},
		{"inflation too low", func(s *domain.Scenario) { s.InflationRate = decimal.NewFromInt(-11) }, "inflation rate"},
		{"inflation too high", func(s *domain.Scenario) { s.InflationRate = decimal.NewFromInt(21) }, "inflation rate"},
		{"growth too high", func(s *domain.Scenario) { s.InvestmentGrowthRate = decimal.NewFromInt(31) }, "investment growth rate"},
		{"birth date in the future", func(s *domain.Scenario) { s.BirthDate = time.Now().AddDate(1, 0, 0) }, "must be between 18 and 150"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := validScenario()
			tt.mutate(&scenario)
			err := parser.ValidateScenario(&scenario)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidateScenario_BenefitCapProjectsToFRAYear(t *testing.T) {
	parser := NewInputParser()

	near := validScenario()
	near.BenefitAmount = decimal.NewFromInt(6000)
	err := parser.ValidateScenario(&near)
	require.Error(t, err, "6000 exceeds the cap for a claimant already at or near FRA")
	assert.Contains(t, err.Error(), "exceeds 125%")

	// A 1990-born claimant reaches FRA decades out; compounding the statutory
	// maximum at 2.5% COLA lifts the cap well above the same amount
	far := validScenario()
	far.BirthDate = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	far.BenefitAmount = decimal.NewFromInt(6000)
	assert.NoError(t, parser.ValidateScenario(&far))
}

func TestValidateScenario_FractionalClaimingAge(t *testing.T) {
	parser := NewInputParser()
	scenario := validScenario()
	scenario.ClaimingAge = decimal.NewFromFloat(62.5)
	assert.NoError(t, parser.ValidateScenario(&scenario))
}

func TestValidateScenario_Spouse(t *testing.T) {
	spouseBirth := time.Date(1962, 3, 1, 0, 0, 0, 0, time.UTC)
	spouseBenefit := decimal.NewFromInt(1200)
	spouseAge := decimal.NewFromInt(67)

	completeSpouse := func(s *domain.Scenario) {
		s.IncludeSpouse = true
		s.SpouseBirthDate = &spouseBirth
		s.SpouseBenefitAmount = &spouseBenefit
		s.SpouseClaimingAge = &spouseAge
	}

	parser := NewInputParser()

	t.Run("complete spouse passes", func(t *testing.T) {
		scenario := validScenario()
		completeSpouse(&scenario)
		assert.NoError(t, parser.ValidateScenario(&scenario))
	})

	t.Run("missing birth date", func(t *testing.T) {
		scenario := validScenario()
		completeSpouse(&scenario)
		scenario.SpouseBirthDate = nil
		err := parser.ValidateScenario(&scenario)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spouse birth date is required")
	})

	t.Run("missing benefit amount", func(t *testing.T) {
		scenario := validScenario()
		completeSpouse(&scenario)
		scenario.SpouseBenefitAmount = nil
		err := parser.ValidateScenario(&scenario)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spouse benefit amount is required")
	})

	t.Run("claiming age out of range", func(t *testing.T) {
		scenario := validScenario()
		completeSpouse(&scenario)
		bad := decimal.NewFromInt(75)
		scenario.SpouseClaimingAge = &bad
		err := parser.ValidateScenario(&scenario)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spouse claiming age")
	})

	t.Run("spouse fields ignored without the flag", func(t *testing.T) {
		scenario := validScenario()
		scenario.SpouseBirthDate = &spouseBirth
		assert.NoError(t, parser.ValidateScenario(&scenario))
	})
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	t.Run("empty configuration", func(t *testing.T) {
		err := parser.ValidateConfiguration(&domain.Configuration{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no scenarios")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		config := domain.Configuration{Scenarios: []domain.Scenario{validScenario(), validScenario()}}
		err := parser.ValidateConfiguration(&config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate scenario id")
	})

	t.Run("defaults horizons when absent", func(t *testing.T) {
		config := domain.Configuration{Scenarios: []domain.Scenario{validScenario()}}
		require.NoError(t, parser.ValidateConfiguration(&config))
		assert.Equal(t, domain.DefaultHorizons(), config.Horizons)
	})

	t.Run("rejects non-increasing horizons", func(t *testing.T) {
		config := domain.Configuration{
			Scenarios: []domain.Scenario{validScenario()},
			Horizons:  domain.Horizons{ShortTermAge: 80, MediumTermAge: 80, LongTermAge: 90},
		}
		err := parser.ValidateConfiguration(&config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strictly increasing")
	})

	t.Run("invalid scenario names its index", func(t *testing.T) {
		bad := validScenario()
		bad.ID = "bad"
		bad.ClaimingAge = decimal.NewFromInt(75)
		config := domain.Configuration{Scenarios: []domain.Scenario{validScenario(), bad}}
		err := parser.ValidateConfiguration(&config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scenario 1 (bad)")
	})
}

func TestLoadFromFile(t *testing.T) {
	yamlContent := `
scenarios:
  - id: early
    name: "Claim at 62"
    birth_date: 1960-06-15T00:00:00Z
    benefit_amount: 3000
    claiming_age: 62
    cola_rate: 2.5
    inflation_rate: 2.5
    lifetime_age: 90
  - id: delayed
    name: "Claim at 70"
    birth_date: 1960-06-15T00:00:00Z
    benefit_amount: 3000
    claiming_age: 70
    cola_rate: 2.5
    inflation_rate: 2.5
    lifetime_age: 90
horizons:
  short_term_age: 75
  medium_term_age: 82
  long_term_age: 90
`
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "early", config.Scenarios[0].ID)
	assert.True(t, config.Scenarios[0].ClaimingAge.Equal(decimal.NewFromInt(62)))
	assert.True(t, config.Scenarios[0].BenefitAmount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 82, config.Horizons.MediumTermAge)
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadFromFile("/nonexistent/scenarios.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("scenarios: [}"), 0o644))
		_, err := parser.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		content := `
scenarios:
  - id: bad
    name: "Too early"
    birth_date: 1960-06-15T00:00:00Z
    benefit_amount: 3000
    claiming_age: 55
    lifetime_age: 90
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := parser.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestLoadRulesFromFile(t *testing.T) {
	content := `
max_benefit_by_year:
  2026: 4200
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRulesFromFile(path)
	require.NoError(t, err)

	assert.True(t, rules.MaxBenefitForYear(2026).Equal(decimal.NewFromInt(4200)),
		"Overlay year should be present")
	fra := rules.FRAForBirthYear(1960)
	assert.Equal(t, 67, fra.Years, "Defaults should survive a partial overlay")
}
