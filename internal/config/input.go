package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

var (
	minClaimingAge = decimal.NewFromInt(62)
	maxClaimingAge = decimal.NewFromInt(70)
	maxBenefitCap  = decimal.NewFromFloat(1.25)
)

// InputParser handles parsing and validation of scenario configuration files
type InputParser struct {
	Rules domain.SSARules
}

// NewInputParser creates a parser backed by the compiled-in SSA rules
func NewInputParser() *InputParser {
	return &InputParser{Rules: domain.DefaultSSARules()}
}

// LoadFromFile loads and validates a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromFileWithRules loads a configuration plus an SSA rules override file.
// The rules file replaces the compiled-in statutory tables before validation,
// so annual updates need no rebuild.
func (ip *InputParser) LoadFromFileWithRules(filename, rulesFile string) (*domain.Configuration, error) {
	rules, err := LoadRulesFromFile(rulesFile)
	if err != nil {
		return nil, err
	}
	ip.Rules = rules
	return ip.LoadFromFile(filename)
}

// LoadRulesFromFile loads SSA rules from a YAML file
func LoadRulesFromFile(filename string) (domain.SSARules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.SSARules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	rules := domain.DefaultSSARules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.SSARules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	return rules, nil
}

// ValidateConfiguration validates the loaded configuration and fills defaults
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.ValidateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.ID, err)
		}
		if seen[scenario.ID] {
			return fmt.Errorf("duplicate scenario id: %s", scenario.ID)
		}
		seen[scenario.ID] = true
	}

	if config.Horizons == (domain.Horizons{}) {
		config.Horizons = domain.DefaultHorizons()
	}
	if err := validateHorizons(config.Horizons); err != nil {
		return err
	}

	return nil
}

// ValidateScenario validates a single scenario
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.ID == "" {
		return fmt.Errorf("scenario id is required")
	}
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}

	age := ageAt(scenario.BirthDate, time.Now())
	if age < 18 || age > 150 {
		return fmt.Errorf("birth date yields age %d, must be between 18 and 150", age)
	}

	if scenario.ClaimingAge.LessThan(minClaimingAge) || scenario.ClaimingAge.GreaterThan(maxClaimingAge) {
		return fmt.Errorf("claiming age must be between 62 and 70, got %s", scenario.ClaimingAge.String())
	}

	// rate bounds first: the benefit cap projects the statutory maximum
	// forward at the scenario's COLA rate
	if err := validateRates(scenario); err != nil {
		return err
	}

	if scenario.BenefitAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("benefit amount must be positive")
	}
	engine := calculation.NewCalculationEngineWithRules(ip.Rules)
	maxAtFRA := engine.ProjectMaxBenefitAtFRA(scenario.BirthDate, scenario.COLARate, time.Now().Year())
	benefitCap := maxAtFRA.Mul(maxBenefitCap)
	if scenario.BenefitAmount.GreaterThan(benefitCap) {
		return fmt.Errorf("benefit amount %s exceeds 125%% of the statutory maximum at FRA (%s)",
			scenario.BenefitAmount.StringFixed(2), benefitCap.StringFixed(2))
	}

	if scenario.LifetimeAge <= scenario.ClaimingAgeYears() {
		return fmt.Errorf("lifetime age must be greater than the claiming age")
	}
	if scenario.LifetimeAge > 120 {
		return fmt.Errorf("lifetime age must be at most 120")
	}

	if scenario.IncludeSpouse {
		if err := ip.validateSpouse(scenario); err != nil {
			return fmt.Errorf("spouse validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateSpouse(scenario *domain.Scenario) error {
	if scenario.SpouseBirthDate == nil {
		return fmt.Errorf("spouse birth date is required")
	}
	if scenario.SpouseBenefitAmount == nil {
		return fmt.Errorf("spouse benefit amount is required")
	}
	if scenario.SpouseClaimingAge == nil {
		return fmt.Errorf("spouse claiming age is required")
	}

	if scenario.SpouseBenefitAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("spouse benefit amount must be positive")
	}
	if scenario.SpouseClaimingAge.LessThan(minClaimingAge) || scenario.SpouseClaimingAge.GreaterThan(maxClaimingAge) {
		return fmt.Errorf("spouse claiming age must be between 62 and 70, got %s", scenario.SpouseClaimingAge.String())
	}

	spouseAge := ageAt(*scenario.SpouseBirthDate, time.Now())
	if spouseAge < 18 || spouseAge > 150 {
		return fmt.Errorf("spouse birth date yields age %d, must be between 18 and 150", spouseAge)
	}

	return nil
}

func validateRates(scenario *domain.Scenario) error {
	if scenario.COLARate.LessThan(decimal.Zero) || scenario.COLARate.GreaterThan(decimal.NewFromInt(15)) {
		return fmt.Errorf("COLA rate must be between 0%% and 15%%")
	}
	if scenario.InflationRate.LessThan(decimal.NewFromInt(-10)) || scenario.InflationRate.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%")
	}
	if scenario.InvestmentGrowthRate.LessThan(decimal.Zero) || scenario.InvestmentGrowthRate.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("investment growth rate must be between 0%% and 30%%")
	}
	return nil
}

func validateHorizons(h domain.Horizons) error {
	if h.ShortTermAge >= h.MediumTermAge || h.MediumTermAge >= h.LongTermAge {
		return fmt.Errorf("horizon ages must be strictly increasing (short < medium < long)")
	}
	return nil
}

func ageAt(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.YearDay() < birthDate.YearDay() {
		age--
	}
	return age
}
