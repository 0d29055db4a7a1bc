package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ssplan/internal/breakeven"
	"github.com/rgehrsitz/ssplan/internal/calculation"
	"github.com/rgehrsitz/ssplan/internal/compare"
	"github.com/rgehrsitz/ssplan/internal/config"
	"github.com/rgehrsitz/ssplan/internal/domain"
	"github.com/rgehrsitz/ssplan/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "ssplan",
	Short: "Social Security claiming strategy calculator",
	Long:  "Computes and compares Social Security retirement claiming strategies, with COLA/inflation projection and breakeven analysis",
}

func main() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("rules", "", "SSA rules YAML file (overrides compiled-in statutory tables)")

	calculateCmd.Flags().String("scenario", "", "Calculate a single scenario by id (default: all)")
	calculateCmd.Flags().Bool("discount", false, "Discount the adjusted series to present value instead of using the net-growth model")

	compareCmd.Flags().String("format", "table", "Output format: table, csv, json")

	breakevenCmd.Flags().String("scenarios", "", "Comma-separated pair of scenario ids (required)")
	breakevenCmd.Flags().Bool("inflation", true, "Compare inflation-adjusted values")
	breakevenCmd.Flags().Bool("investment", false, "Apply the investment overlay before comparing")
	breakevenCmd.Flags().Float64("growth-rate", 5.0, "Annual investment growth rate percent")
	breakevenCmd.Flags().Float64("investment-ratio", 100.0, "Percent of each year's benefit diverted to investment")

	serveCmd.Flags().String("addr", ":8080", "Listen address")

	rootCmd.AddCommand(calculateCmd, compareCmd, breakevenCmd, serveCmd, versionCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// loadConfig loads the input file plus optional rules override and builds the
// calculation engine
func loadConfig(cmd *cobra.Command, inputFile string) (*domain.Configuration, *calculation.CalculationEngine, error) {
	parser := config.NewInputParser()
	rulesFile, _ := cmd.Flags().GetString("rules")

	var cfg *domain.Configuration
	var err error
	if rulesFile != "" {
		cfg, err = parser.LoadFromFileWithRules(inputFile, rulesFile)
	} else {
		cfg, err = parser.LoadFromFile(inputFile)
	}
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewCalculationEngineWithRules(parser.Rules)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine = engine.WithLogger(logger.Level(zerolog.DebugLevel))
	}
	return cfg, engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Project yearly and cumulative benefits for scenarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		scenarioID, _ := cmd.Flags().GetString("scenario")
		discount, _ := cmd.Flags().GetBool("discount")

		for i := range cfg.Scenarios {
			scenario := &cfg.Scenarios[i]
			if scenarioID != "" && scenario.ID != scenarioID {
				continue
			}

			projection, err := engine.ProjectScenario(scenario)
			if err != nil {
				return err
			}
			if discount {
				yearly := calculation.DiscountToPresentValue(projection.YearlyBenefits, scenario.InflationRate, projection.YearlyBenefits[0].Year)
				projection.YearlyBenefits = yearly
				projection.CumulativeBenefits = calculation.CumulativeBenefits(yearly, true)
			}
			printProjection(projection)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare all scenarios: pairwise breakevens and horizon winners",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		compareEngine := compare.NewCompareEngine(engine)
		compSet, err := compareEngine.Compare(context.Background(), cfg)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		formatter := compare.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unknown output format: %s", format)
		}
		out, err := formatter.Format(compSet)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven [input-file]",
	Short: "Find the breakeven age between two scenarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		pair, _ := cmd.Flags().GetString("scenarios")
		ids := strings.Split(pair, ",")
		if len(ids) != 2 {
			return fmt.Errorf("--scenarios requires exactly two comma-separated ids, got %q", pair)
		}

		series := make([]breakeven.ScenarioSeries, 0, 2)
		for _, id := range ids {
			scenario := cfg.ScenarioByID(strings.TrimSpace(id))
			if scenario == nil {
				return fmt.Errorf("scenario %s not found in configuration", id)
			}
			projection, err := engine.ProjectScenario(scenario)
			if err != nil {
				return err
			}
			series = append(series, breakeven.ScenarioSeries{
				ID:         scenario.ID,
				Name:       scenario.Name,
				Cumulative: projection.CumulativeBenefits,
				Yearly:     projection.YearlyBenefits,
			})
		}

		withInflation, _ := cmd.Flags().GetBool("inflation")
		withInvestment, _ := cmd.Flags().GetBool("investment")
		growthRate, _ := cmd.Flags().GetFloat64("growth-rate")
		investmentRatio, _ := cmd.Flags().GetFloat64("investment-ratio")

		opts := breakeven.ToggleOptions{
			WithInflation:   withInflation,
			WithInvestment:  withInvestment,
			GrowthRate:      decimal.NewFromFloat(growthRate),
			InvestmentRatio: decimal.NewFromFloat(investmentRatio),
		}

		age := breakeven.FindBreakevenAgeWithToggles(series[0], series[1], opts)
		fmt.Println(breakeven.DescribeBreakeven(series[0], series[1], age))
		if age != nil {
			fmt.Printf("Breakeven age: %s\n", age.StringFixed(2))
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFile, _ := cmd.Flags().GetString("rules")

		rules := domain.DefaultSSARules()
		if rulesFile != "" {
			var err error
			rules, err = config.LoadRulesFromFile(rulesFile)
			if err != nil {
				return err
			}
		}

		engine := calculation.NewCalculationEngineWithRules(rules)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine = engine.WithLogger(logger.Level(zerolog.DebugLevel))
		}

		addr, _ := cmd.Flags().GetString("addr")
		srv := server.NewServer(compare.NewCompareEngine(engine), logger)
		srv.Parser.Rules = rules
		return srv.ListenAndServe(addr)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ssplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func printProjection(projection *domain.ScenarioProjection) {
	fmt.Printf("\nScenario: %s (%s)\n", projection.ScenarioName, projection.ScenarioID)
	fmt.Printf("FRA: %d years %d months  Monthly at claim: $%s  Adjustment: %s%%\n",
		projection.Calculation.FRA.Years, projection.Calculation.FRA.Months,
		projection.Calculation.MonthlyBenefit.StringFixed(2),
		projection.Calculation.AdjustmentPercentage.StringFixed(2))
	fmt.Printf("%-5s %-6s %14s %14s %16s %16s\n", "Age", "Year", "Monthly", "Annual", "Cumulative", "Cumulative(adj)")
	fmt.Println(strings.Repeat("-", 78))

	cumulativeByAge := make(map[int]domain.CumulativeBenefit, len(projection.CumulativeBenefits))
	for _, c := range projection.CumulativeBenefits {
		cumulativeByAge[c.Age] = c
	}
	for _, y := range projection.YearlyBenefits {
		c := cumulativeByAge[y.Age]
		fmt.Printf("%-5d %-6d %14s %14s %16s %16s\n",
			y.Age, y.Year,
			y.MonthlyBenefit.StringFixed(2),
			y.AnnualBenefit.StringFixed(2),
			c.Cumulative.StringFixed(2),
			c.CumulativeAdjusted.StringFixed(2))
	}
}
