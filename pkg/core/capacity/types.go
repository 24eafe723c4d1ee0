// Package capacity sizes how much additional debt a practice can carry from
// its net operating income, and stress-tests that headroom against revenue
// declines.
package capacity

// dscrUnconstrained is reported when the practice carries no debt but earns
// positive NOI; the true ratio is unbounded.
const dscrUnconstrained = 99.99

// loanTermOptions are the term lengths quoted when sizing a new loan.
var loanTermOptions = []int{5, 7, 10, 15, 20, 25, 30}

// revenueShocks are the downside scenarios applied during stress testing.
var revenueShocks = []float64{-0.10, -0.20, -0.30, -0.40, -0.50}

// CapacityInput carries already-aggregated annual figures. AnnualRevenue is
// needed by the stress tests to separate revenue from (sticky) expenses.
type CapacityInput struct {
	AnnualNOI         float64 `json:"annual_noi"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	AnnualRevenue     float64 `json:"annual_revenue"`
	TargetDSCR        float64 `json:"target_dscr"`
	MarketRate        float64 `json:"market_rate"`
}

// LoanOption is the maximum loan supportable at one term length.
type LoanOption struct {
	TermYears      int     `json:"term_years"`
	MaxLoan        float64 `json:"max_loan"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// StressScenario is the practice's debt position under one revenue shock.
type StressScenario struct {
	RevenueShock           float64 `json:"revenue_shock"`
	AdjustedNOI            float64 `json:"adjusted_noi"`
	AdjustedDSCR           float64 `json:"adjusted_dscr"`
	RemainingCapacity      float64 `json:"remaining_capacity"`
	CanServiceExistingDebt bool    `json:"can_service_existing_debt"`
}

// CapacityReport is the full analyzer output.
type CapacityReport struct {
	DSCR                 float64          `json:"dscr"`
	MaxAnnualDebtService float64          `json:"max_annual_debt_service"`
	AvailableCapacity    float64          `json:"available_capacity"`
	LoanOptions          []LoanOption     `json:"loan_options"`
	StressScenarios      []StressScenario `json:"stress_scenarios"`
}
