// Package debt implements loan amortization math, multi-loan payoff-order
// simulation (avalanche/snowball), and refinance-opportunity detection.
//
// Input loans are never mutated; simulations operate on private copies. All
// rates are annual decimals and all durations are months. Simulations cap at
// MaxSimulationMonths to guarantee termination.
package debt

// MaxSimulationMonths bounds every payoff simulation (50 years). The cap
// substitutes for cancellation semantics: worst-case compute is deterministic.
const MaxSimulationMonths = 600

// paidOffThreshold treats sub-cent balances as retired.
const paidOffThreshold = 0.01

// Strategy selects the payoff ordering for the waterfall simulation.
type Strategy string

const (
	// StrategyAvalanche pays highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball pays lowest balance first.
	StrategySnowball Strategy = "snowball"
)

// Loan is one outstanding liability of the practice. Immutable as input.
type Loan struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"` // keys the market-rate lookup, e.g. "practice", "equipment"
	Balance         float64 `json:"balance"`
	AnnualRate      float64 `json:"annual_rate"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	RemainingMonths int     `json:"remaining_months"`
}

func (l Loan) monthlyRate() float64 {
	return l.AnnualRate / 12
}

// DebtInput is the full engine input.
type DebtInput struct {
	Loans []Loan `json:"loans"`

	// ExtraMonthlyPayment is directed at the highest-priority unpaid loan in
	// each payoff scenario.
	ExtraMonthlyPayment float64 `json:"extra_monthly_payment"`

	// MarketRates maps loan type to the current benchmark annual rate.
	MarketRates map[string]float64 `json:"market_rates"`
}

// PayoffOutcome is the result of simulating a single loan to payoff. A loan
// whose payment does not cover accruing interest can never amortize; that
// case is tagged rather than mixed silently into normal results, while the
// numeric fields keep the documented sentinel values (months = cap,
// interest = balance * rate * cap).
type PayoffOutcome struct {
	Months         int     `json:"months"`
	TotalInterest  float64 `json:"total_interest"`
	NeverAmortizes bool    `json:"never_amortizes"`
}

// LoanPayoff is the per-loan line of a payoff plan.
type LoanPayoff struct {
	LoanID                 string  `json:"loan_id"`
	OriginalPayoffMonth    int     `json:"original_payoff_month"`
	AcceleratedPayoffMonth int     `json:"accelerated_payoff_month"`
	InterestSaved          float64 `json:"interest_saved"`
}

// PayoffPlan is one full waterfall scenario.
type PayoffPlan struct {
	Strategy           Strategy     `json:"strategy"`
	Loans              []LoanPayoff `json:"loans"`
	TotalInterestSaved float64      `json:"total_interest_saved"`
	// DebtFreeMonth is the latest payoff month across all loans.
	DebtFreeMonth int `json:"debt_free_month"`
}

// RefinanceOpportunity flags a loan priced above its market benchmark.
// Only emitted when MonthlySavings > 0.
type RefinanceOpportunity struct {
	LoanID          string  `json:"loan_id"`
	CurrentRate     float64 `json:"current_rate"`
	MarketRate      float64 `json:"market_rate"`
	MonthlySavings  float64 `json:"monthly_savings"`
	TotalSavings    float64 `json:"total_savings"`
	BreakEvenMonths int     `json:"break_even_months"`
}

// StrategyComparison summarizes avalanche vs snowball head to head.
type StrategyComparison struct {
	// InterestAdvantage is avalanche's total interest saved minus snowball's
	// (non-negative by the classic debt-payoff theorem).
	InterestAdvantage float64 `json:"interest_advantage"`
	// MonthsDelta is snowball's debt-free month minus avalanche's.
	MonthsDelta int `json:"months_delta"`
}

// DebtReport is the engine output.
type DebtReport struct {
	WeightedAverageCost    float64                `json:"weighted_average_cost"`
	TotalDebt              float64                `json:"total_debt"`
	RefinanceOpportunities []RefinanceOpportunity `json:"refinance_opportunities"`
	Avalanche              PayoffPlan             `json:"avalanche"`
	Snowball               PayoffPlan             `json:"snowball"`
	Comparison             StrategyComparison     `json:"comparison"`
}
