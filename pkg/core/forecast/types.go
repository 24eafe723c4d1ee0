// Package forecast implements seasonal cash-flow forecasting for a practice's
// monthly net cash-flow series. History of at least two full seasons is fit
// with Holt-Winters triple exponential smoothing (multiplicative seasonality);
// shorter history falls back to an OLS linear trend combined with an
// externally supplied seasonality profile.
//
// Forecast is a pure function: same inputs, same outputs, no I/O. Snapshot
// persistence is a separate concern handled by the store package.
package forecast

// SeasonLength is the number of months in one seasonal cycle.
const SeasonLength = 12

// Smoothing constants for the Holt-Winters recursion.
const (
	alpha = 0.3 // level
	beta  = 0.1 // trend
	gamma = 0.3 // seasonal
)

// TrendClass labels the recent direction of the series.
type TrendClass string

const (
	TrendImproving TrendClass = "improving"
	TrendDeclining TrendClass = "declining"
	TrendStable    TrendClass = "stable"
)

// ForecastInput carries the historical series and forecast parameters.
// All monetary values are raw decimal amounts in the practice's base currency.
type ForecastInput struct {
	// History is the ordered monthly net cash-flow series, insertion order =
	// calendar order, no gaps assumed.
	History []float64 `json:"history"`

	// HorizonMonths is the number of months to forecast.
	HorizonMonths int `json:"horizon_months"`

	// Seasonality optionally supplies 12 multiplicative indices around 1.0
	// (an industry profile). It is used directly by the linear fallback;
	// the Holt-Winters path adapts its own indices from the data. Arrays of
	// any other length are ignored in favor of a flat profile.
	Seasonality []float64 `json:"seasonality,omitempty"`

	// CashBalance is the latest month's cash balance, used for the runway
	// metric.
	CashBalance float64 `json:"cash_balance"`

	// ExpenseHistory and RevenueHistory are the matching monthly expense and
	// revenue sub-series, used for the runway and projected-overhead metrics.
	// Either may be empty, in which case the dependent metric reports 0.
	ExpenseHistory []float64 `json:"expense_history,omitempty"`
	RevenueHistory []float64 `json:"revenue_history,omitempty"`
}

// HistoryPoint is one observed month, indexed 1..n.
type HistoryPoint struct {
	Month  int     `json:"month"`
	Actual float64 `json:"actual"`
}

// ForecastPoint is one projected month with 80% and 95% confidence bands.
type ForecastPoint struct {
	Month     int     `json:"month"`
	Predicted float64 `json:"predicted"`
	Lower80   float64 `json:"lower_80"`
	Upper80   float64 `json:"upper_80"`
	Lower95   float64 `json:"lower_95"`
	Upper95   float64 `json:"upper_95"`
}

// HealthMetrics are the derived indicators the dashboard surfaces next to the
// forecast chart.
type HealthMetrics struct {
	// CashRunwayMonths = cash balance / average monthly expenses over the
	// last 3 months (0 when expenses are 0).
	CashRunwayMonths float64 `json:"cash_runway_months"`

	// ProjectedOverheadRatio = projected expenses / projected revenue,
	// each aggregated over the next 3 months.
	ProjectedOverheadRatio float64 `json:"projected_overhead_ratio"`

	Trend TrendClass `json:"trend"`
}

// ForecastReport is the full output handed to the presentation layer.
type ForecastReport struct {
	Historical         []HistoryPoint  `json:"historical"`
	Projected          []ForecastPoint `json:"projected"`
	Metrics            HealthMetrics   `json:"metrics"`
	SeasonalityIndices []float64       `json:"seasonality_indices"`
}

// seasonalModel is the fitted state shared by both algorithms: a level, a
// per-month trend, 12 multiplicative seasonal indices, and the residual
// standard deviation used to width the confidence bands.
type seasonalModel struct {
	Level    float64
	Trend    float64
	Seasonal []float64
	Sigma    float64
}
