package forecast

import (
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// Forecast fits the history and produces HorizonMonths forecast points with
// confidence bands plus the derived health metrics. An empty history yields
// an all-zero report rather than an error.
func Forecast(input ForecastInput) ForecastReport {
	horizon := input.HorizonMonths
	if horizon < 0 {
		horizon = 0
	}

	n := len(input.History)
	if n == 0 {
		return zeroReport(horizon, input.Seasonality)
	}

	model := fitSeries(input.History, input.Seasonality)

	historical := make([]HistoryPoint, 0, n)
	for i, v := range input.History {
		historical = append(historical, HistoryPoint{Month: i + 1, Actual: v})
	}

	return ForecastReport{
		Historical: historical,
		Projected:  model.project(n, horizon),
		Metrics: HealthMetrics{
			CashRunwayMonths:       cashRunway(input.CashBalance, input.ExpenseHistory),
			ProjectedOverheadRatio: projectedOverheadRatio(input),
			Trend:                  classifyTrend(input.History),
		},
		SeasonalityIndices: model.Seasonal,
	}
}

// classifyTrend compares the average of the last 3 months against the average
// of the last 6: more than 5% above is improving, more than 5% below is
// declining. Series shorter than 6 months read as stable.
func classifyTrend(history []float64) TrendClass {
	n := len(history)
	if n < 6 {
		return TrendStable
	}
	recent := calc.Mean(history[n-3:])
	baseline := calc.Mean(history[n-6:])
	switch {
	case recent > baseline*1.05:
		return TrendImproving
	case recent < baseline*0.95:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// cashRunway = cash balance / average monthly expenses over the last 3
// months. Zero expenses mean the runway is unconstrained; report 0.
func cashRunway(cashBalance float64, expenses []float64) float64 {
	n := len(expenses)
	if n == 0 {
		return 0
	}
	start := n - 3
	if start < 0 {
		start = 0
	}
	avg := calc.Mean(expenses[start:])
	return calc.SafeDiv(cashBalance, avg)
}

// projectedOverheadRatio forecasts the expense and revenue sub-series three
// months ahead with the same model selection and returns the aggregate ratio.
func projectedOverheadRatio(input ForecastInput) float64 {
	const lookahead = 3
	if len(input.ExpenseHistory) == 0 || len(input.RevenueHistory) == 0 {
		return 0
	}

	sumProjected := func(series []float64) float64 {
		model := fitSeries(series, input.Seasonality)
		total := 0.0
		for _, p := range model.project(len(series), lookahead) {
			total += p.Predicted
		}
		return total
	}

	return calc.SafeDiv(sumProjected(input.ExpenseHistory), sumProjected(input.RevenueHistory))
}

func zeroReport(horizon int, seasonality []float64) ForecastReport {
	projected := make([]ForecastPoint, 0, horizon)
	for h := 1; h <= horizon; h++ {
		projected = append(projected, ForecastPoint{Month: h})
	}
	seasonal := flatSeasonality()
	if len(seasonality) == SeasonLength {
		copy(seasonal, seasonality)
	}
	return ForecastReport{
		Historical:         []HistoryPoint{},
		Projected:          projected,
		Metrics:            HealthMetrics{Trend: TrendStable},
		SeasonalityIndices: seasonal,
	}
}
