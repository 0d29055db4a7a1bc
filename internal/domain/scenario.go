package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario is one claiming strategy to evaluate. Rates are annual percentages
// (2.5 means 2.5%). Scenarios are value objects: the engine only reads them.
type Scenario struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	BirthDate     time.Time       `yaml:"birth_date" json:"birth_date"`
	BenefitAmount decimal.Decimal `yaml:"benefit_amount" json:"benefit_amount"` // monthly PIA in today's dollars
	ClaimingAge   decimal.Decimal `yaml:"claiming_age" json:"claiming_age"`

	IncludeSpouse       bool             `yaml:"include_spouse" json:"include_spouse"`
	SpouseBirthDate     *time.Time       `yaml:"spouse_birth_date,omitempty" json:"spouse_birth_date,omitempty"`
	SpouseBenefitAmount *decimal.Decimal `yaml:"spouse_benefit_amount,omitempty" json:"spouse_benefit_amount,omitempty"`
	SpouseClaimingAge   *decimal.Decimal `yaml:"spouse_claiming_age,omitempty" json:"spouse_claiming_age,omitempty"`

	COLARate             decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentGrowthRate decimal.Decimal `yaml:"investment_growth_rate" json:"investment_growth_rate"`
	LifetimeAge          int             `yaml:"lifetime_age" json:"lifetime_age"`
}

// HasCompleteSpouse reports whether the scenario carries everything needed to
// project a spouse alongside the individual
func (s *Scenario) HasCompleteSpouse() bool {
	return s.IncludeSpouse && s.SpouseBirthDate != nil && s.SpouseBenefitAmount != nil && s.SpouseClaimingAge != nil
}

// ClaimingAgeYears returns the claiming age rounded up to the first whole age
// with a full year of benefits (the first projected row)
func (s *Scenario) ClaimingAgeYears() int {
	return int(s.ClaimingAge.Ceil().IntPart())
}

// Horizons are the ages used to pick short/medium/long term winners
type Horizons struct {
	ShortTermAge  int `yaml:"short_term_age" json:"short_term_age"`
	MediumTermAge int `yaml:"medium_term_age" json:"medium_term_age"`
	LongTermAge   int `yaml:"long_term_age" json:"long_term_age"`
}

// DefaultHorizons returns the standard comparison ages
func DefaultHorizons() Horizons {
	return Horizons{ShortTermAge: 75, MediumTermAge: 82, LongTermAge: 90}
}

// Configuration is the complete parsed input
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
	Horizons  Horizons   `yaml:"horizons" json:"horizons"`
}

// ScenarioByID returns the scenario with the given id, or nil
func (c *Configuration) ScenarioByID(id string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].ID == id {
			return &c.Scenarios[i]
		}
	}
	return nil
}
