// Package roi computes investment-return metrics for the three deal
// archetypes the dashboard models: rental real estate, practice acquisition,
// and equipment purchases. All three share annuity math from calc and the
// Newton-Raphson IRR solver, and emit the common ROIResult shape.
package roi

// YearProjection is one row of the deal's year-by-year projection.
type YearProjection struct {
	Year               int     `json:"year"`
	CashFlow           float64 `json:"cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	// Equity is the archetype's equity proxy: market value minus loan
	// balance for real estate, assumed practice value minus loan balance
	// for acquisitions, straight-line book value for equipment.
	Equity float64 `json:"equity"`
}

// ROIResult is the common output shape across archetypes. Rates are annual
// decimals; monetary values are raw amounts.
type ROIResult struct {
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
	TotalROI         float64 `json:"total_roi"`

	// IRR is 0 when the solver fails to converge; IRRConverged separates a
	// genuine 0% return from "could not solve".
	IRR          float64 `json:"irr"`
	IRRConverged bool    `json:"irr_converged"`

	// PaybackPeriodMonths is the full projection horizon when the deal
	// never recovers its investment from cash flow (a reported outcome,
	// not an error).
	PaybackPeriodMonths int `json:"payback_period_months"`

	MonthlyCashFlow  float64          `json:"monthly_cash_flow"`
	AnnualCashFlow   float64          `json:"annual_cash_flow"`
	YearlyProjection []YearProjection `json:"yearly_projection"`
	TotalInvested    float64          `json:"total_invested"`
	TotalReturns     float64          `json:"total_returns"`
	NetProfit        float64          `json:"net_profit"`
}

// paybackMonths returns the months needed to recover invested capital from a
// positive monthly cash flow, or the full horizon when cash flow is
// non-positive.
func paybackMonths(invested, monthlyCashFlow float64, horizonMonths int) int {
	if monthlyCashFlow <= 0 || invested <= 0 {
		return horizonMonths
	}
	months := int(invested / monthlyCashFlow)
	if float64(months)*monthlyCashFlow < invested {
		months++
	}
	if months > horizonMonths {
		return horizonMonths
	}
	return months
}
