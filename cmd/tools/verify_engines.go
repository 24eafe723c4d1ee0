package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/benchmark"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/capacity"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/debt"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/forecast"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/roi"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/store"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/utils"

	"github.com/joho/godotenv"
)

// Scenario bundles one practice's inputs for all four engines. Written by
// hand as Hjson so analysts can keep comments next to the numbers.
type Scenario struct {
	PracticeID string `json:"practice_id"`

	Forecast forecast.ForecastInput `json:"forecast"`

	Loans               []debt.Loan `json:"loans"`
	ExtraMonthlyPayment float64     `json:"extra_monthly_payment"`

	RealEstate *roi.RealEstateInput `json:"real_estate,omitempty"`

	AnnualNOI         float64 `json:"annual_noi"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	AnnualRevenue     float64 `json:"annual_revenue"`
}

func main() {
	godotenv.Load()

	scenarioPath := flag.String("scenario", "", "Hjson scenario file (built-in demo scenario if empty)")
	configPath := flag.String("config", "", "YAML benchmark config (defaults if empty)")
	persist := flag.Bool("persist", false, "save the snapshot to the database (requires DATABASE_URL)")
	flag.Parse()

	cfg := benchmark.Default()
	if *configPath != "" {
		var err error
		if cfg, err = benchmark.LoadFile(*configPath); err != nil {
			fmt.Printf("[WARNING] %v, using defaults\n", err)
		}
	}

	scenario := demoScenario(cfg)
	if *scenarioPath != "" {
		if err := utils.DecodeFile(*scenarioPath, &scenario); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fcReport := forecast.Forecast(scenario.Forecast)
	printForecast(fcReport)

	debtReport := debt.Analyze(debt.DebtInput{
		Loans:               scenario.Loans,
		ExtraMonthlyPayment: scenario.ExtraMonthlyPayment,
		MarketRates:         cfg.MarketRates,
	})
	printDebt(debtReport)

	if scenario.RealEstate != nil {
		printROI("REAL ESTATE", roi.AnalyzeRealEstate(*scenario.RealEstate))
	}

	capReport := capacity.Analyze(capacity.CapacityInput{
		AnnualNOI:         scenario.AnnualNOI,
		AnnualDebtService: scenario.AnnualDebtService,
		AnnualRevenue:     scenario.AnnualRevenue,
		TargetDSCR:        cfg.TargetDSCR,
		MarketRate:        cfg.SizingRate,
	})
	printCapacity(capReport)

	if *persist {
		if err := saveSnapshot(scenario.PracticeID, &fcReport, &debtReport); err != nil {
			fmt.Printf("[WARNING] persist failed: %v\n", err)
		} else {
			fmt.Printf("\nSnapshot saved for practice %s\n", scenario.PracticeID)
		}
	}
}

// demoScenario is a representative solo practice: two years of seasonal
// cash-flow history, a practice note plus an equipment lease, and a financed
// office purchase under consideration.
func demoScenario(cfg benchmark.Config) Scenario {
	history := make([]float64, 0, 24)
	for i := 0; i < 24; i++ {
		base := 18000 + 150*float64(i)
		history = append(history, base*cfg.Seasonality[i%12])
	}
	expenses := make([]float64, 24)
	revenue := make([]float64, 24)
	for i := range history {
		revenue[i] = history[i] + 52000
		expenses[i] = 52000
	}

	return Scenario{
		PracticeID: "demo-practice",
		Forecast: forecast.ForecastInput{
			History:        history,
			HorizonMonths:  12,
			Seasonality:    cfg.Seasonality,
			CashBalance:    145000,
			ExpenseHistory: expenses,
			RevenueHistory: revenue,
		},
		Loans: []debt.Loan{
			{ID: "practice-note", Type: "practice", Balance: 385000, AnnualRate: 0.082, MonthlyPayment: 4715, RemainingMonths: 108},
			{ID: "cbct-lease", Type: "equipment", Balance: 62000, AnnualRate: 0.091, MonthlyPayment: 1290, RemainingMonths: 54},
		},
		ExtraMonthlyPayment: 1500,
		RealEstate: &roi.RealEstateInput{
			PurchasePrice:    500000,
			DownPayment:      100000,
			AnnualRate:       0.065,
			LoanTermYears:    30,
			MonthlyRent:      4000,
			MonthlyExpenses:  800,
			VacancyRate:      0.05,
			AppreciationRate: 0.03,
			HoldYears:        10,
		},
		AnnualNOI:         240000,
		AnnualDebtService: 72060,
		AnnualRevenue:     900000,
	}
}

func printForecast(report forecast.ForecastReport) {
	fmt.Println("====================================================================")
	fmt.Println("                     CASH FLOW FORECAST")
	fmt.Println("====================================================================")
	fmt.Printf("History months: %d   Trend: %s\n", len(report.Historical), report.Metrics.Trend)
	fmt.Printf("Cash runway: %.1f months   Projected overhead: %.1f%%\n",
		report.Metrics.CashRunwayMonths, report.Metrics.ProjectedOverheadRatio*100)
	fmt.Printf("%-6s | %12s | %12s | %12s\n", "MONTH", "PREDICTED", "LOW (95%)", "HIGH (95%)")
	fmt.Println("--------------------------------------------------------------------")
	for _, p := range report.Projected {
		fmt.Printf("%-6d | %12.0f | %12.0f | %12.0f\n", p.Month, p.Predicted, p.Lower95, p.Upper95)
	}
}

func printDebt(report debt.DebtReport) {
	fmt.Println("====================================================================")
	fmt.Println("                     DEBT ANALYSIS")
	fmt.Println("====================================================================")
	fmt.Printf("Total debt: %.0f   Weighted avg cost: %.2f%%\n",
		report.TotalDebt, report.WeightedAverageCost*100)
	for _, opp := range report.RefinanceOpportunities {
		fmt.Printf("Refi %s: %.2f%% -> %.2f%%, saves %.0f/mo, break-even %d months\n",
			opp.LoanID, opp.CurrentRate*100, opp.MarketRate*100, opp.MonthlySavings, opp.BreakEvenMonths)
	}
	fmt.Printf("%-10s | %14s | %10s\n", "STRATEGY", "INTEREST SAVED", "DEBT-FREE")
	fmt.Println("--------------------------------------------------------------------")
	fmt.Printf("%-10s | %14.0f | %7d mo\n", "avalanche", report.Avalanche.TotalInterestSaved, report.Avalanche.DebtFreeMonth)
	fmt.Printf("%-10s | %14.0f | %7d mo\n", "snowball", report.Snowball.TotalInterestSaved, report.Snowball.DebtFreeMonth)
	fmt.Printf("Avalanche advantage: %.0f of interest, %d months\n",
		report.Comparison.InterestAdvantage, report.Comparison.MonthsDelta)
}

func printROI(label string, result roi.ROIResult) {
	fmt.Println("====================================================================")
	fmt.Printf("                     INVESTMENT: %s\n", label)
	fmt.Println("====================================================================")
	fmt.Printf("Monthly cash flow: %.2f   Cash-on-cash: %.2f%%\n",
		result.MonthlyCashFlow, result.CashOnCashReturn*100)
	if result.IRRConverged {
		fmt.Printf("IRR: %.2f%%   Total ROI: %.1f%%   Payback: %d months\n",
			result.IRR*100, result.TotalROI*100, result.PaybackPeriodMonths)
	} else {
		fmt.Printf("IRR: did not converge   Total ROI: %.1f%%   Payback: %d months\n",
			result.TotalROI*100, result.PaybackPeriodMonths)
	}
	fmt.Printf("%-6s | %12s | %12s | %12s\n", "YEAR", "CASH FLOW", "CUMULATIVE", "EQUITY")
	fmt.Println("--------------------------------------------------------------------")
	for _, y := range result.YearlyProjection {
		fmt.Printf("%-6d | %12.0f | %12.0f | %12.0f\n", y.Year, y.CashFlow, y.CumulativeCashFlow, y.Equity)
	}
}

func printCapacity(report capacity.CapacityReport) {
	fmt.Println("====================================================================")
	fmt.Println("                     DEBT CAPACITY")
	fmt.Println("====================================================================")
	fmt.Printf("DSCR: %.2f   Max annual service: %.0f   Available: %.0f\n",
		report.DSCR, report.MaxAnnualDebtService, report.AvailableCapacity)
	fmt.Printf("%-6s | %12s\n", "TERM", "MAX LOAN")
	fmt.Println("--------------------------------------------------------------------")
	for _, opt := range report.LoanOptions {
		fmt.Printf("%4dyr | %12.0f\n", opt.TermYears, opt.MaxLoan)
	}
	fmt.Printf("%-7s | %12s | %8s | %s\n", "SHOCK", "ADJ NOI", "ADJ DSCR", "SERVICEABLE")
	fmt.Println("--------------------------------------------------------------------")
	for _, s := range report.StressScenarios {
		fmt.Printf("%6.0f%% | %12.0f | %8.2f | %v\n",
			s.RevenueShock*100, s.AdjustedNOI, s.AdjustedDSCR, s.CanServiceExistingDebt)
	}
}

func saveSnapshot(practiceID string, fc *forecast.ForecastReport, dbt *debt.DebtReport) error {
	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}
	ctx := context.Background()
	if err := store.InitDB(ctx); err != nil {
		return err
	}
	defer store.Close()
	return store.NewSnapshotRepo().Save(ctx, practiceID, fc, dbt)
}
