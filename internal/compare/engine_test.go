package compare

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/domain"
)

func testConfiguration() *domain.Configuration {
	birth := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	scenario := func(id string, claimingAge int64) domain.Scenario {
		return domain.Scenario{
			ID:            id,
			Name:          id,
			BirthDate:     birth,
			BenefitAmount: decimal.NewFromInt(3000),
			ClaimingAge:   decimal.NewFromInt(claimingAge),
			COLARate:      decimal.NewFromFloat(2.5),
			InflationRate: decimal.NewFromFloat(2.5),
			LifetimeAge:   90,
		}
	}
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			scenario("claim-62", 62),
			scenario("claim-67", 67),
			scenario("claim-70", 70),
		},
		Horizons: domain.DefaultHorizons(),
	}
}

func TestCompare(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	compSet, err := engine.Compare(context.Background(), testConfiguration())
	require.NoError(t, err)

	require.Len(t, compSet.Results, 3)
	require.Len(t, compSet.Breakevens, 3, "Three scenarios yield three pairs")

	early := compSet.Results[0]
	assert.Equal(t, "claim-62", early.ID)
	assert.True(t, early.MonthlyAtClaim.Equal(decimal.NewFromInt(2100)))
	assert.Equal(t, 67, early.FRA.Years)
	assert.Equal(t, 90, early.FinalAge)
	assert.True(t, early.ShortTermTotal.GreaterThan(decimal.Zero))

	delayed := compSet.Results[2]
	assert.True(t, delayed.MonthlyAtClaim.Equal(decimal.NewFromInt(3720)))
	assert.True(t, delayed.ShortTermTotal.LessThan(early.ShortTermTotal),
		"At 75 the early claimer is still ahead")
	assert.True(t, delayed.LongTermTotal.GreaterThan(early.LongTermTotal),
		"By 90 the delayed claimer has overtaken")

	assert.Equal(t, "claim-62", compSet.Winners.ShortTerm)
	assert.Equal(t, "claim-70", compSet.Winners.LongTerm)
}

func TestCompare_CancelledContext(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compare(ctx, testConfiguration())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare_InvalidScenario(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	config := testConfiguration()
	config.Scenarios[1].ClaimingAge = decimal.NewFromInt(75)

	_, err := engine.Compare(context.Background(), config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claim-67")
}

func TestFormatters(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	compSet, err := engine.Compare(context.Background(), testConfiguration())
	require.NoError(t, err)

	t.Run("table", func(t *testing.T) {
		out, err := (&TableFormatter{}).Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, out, "SOCIAL SECURITY CLAIMING COMPARISON")
		assert.Contains(t, out, "claim-62")
		assert.Contains(t, out, "$2,100")
		assert.Contains(t, out, "BREAKEVEN ANALYSIS")
		assert.Contains(t, out, "BEST SCENARIO BY HORIZON")
	})

	t.Run("csv", func(t *testing.T) {
		out, err := (&CSVFormatter{}).Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, out, "Scenario ID,Scenario,Claiming Age")
		assert.Contains(t, out, "claim-70")
		assert.Contains(t, out, "3720.00")
		assert.Contains(t, out, "Breakeven Age")
	})

	t.Run("json", func(t *testing.T) {
		out, err := (&JSONFormatter{Pretty: true}).Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, out, `"results"`)
		assert.Contains(t, out, `"breakevens"`)
		assert.Contains(t, out, `"claim-62"`)
	})
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("table"))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName(""))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("console"))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 24))
	assert.Equal(t, "a very long scenario ...", truncate("a very long scenario name that overflows", 24))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "2,100", formatDecimal(decimal.NewFromInt(2100)))
	assert.Equal(t, "1,234,568", formatDecimal(decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, "999", formatDecimal(decimal.NewFromInt(999)))
	assert.Equal(t, "-25,200", formatDecimal(decimal.NewFromInt(-25200)))
}
