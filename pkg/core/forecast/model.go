package forecast

import (
	"math"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// minSeasonalHistory is the shortest history Holt-Winters will fit: two full
// seasons, so every seasonal index sees at least one update.
const minSeasonalHistory = 2 * SeasonLength

// fitHoltWinters runs the triple exponential smoothing recursion over data
// (len(data) >= minSeasonalHistory).
func fitHoltWinters(data []float64) seasonalModel {
	// Initialization over the first season:
	//   level    = mean of the first 12 months
	//   trend    = mean season-over-season first difference, per month
	//   seasonal = first-season ratios around the initial level
	level := calc.Mean(data[:SeasonLength])
	trend := 0.0
	for i := 0; i < SeasonLength; i++ {
		trend += (data[i+SeasonLength] - data[i]) / float64(SeasonLength)
	}
	trend /= float64(SeasonLength)

	seasonal := make([]float64, SeasonLength)
	for i := 0; i < SeasonLength; i++ {
		seasonal[i] = data[i] / nonZero(level)
	}

	var residuals []float64
	for t := SeasonLength; t < len(data); t++ {
		idx := t % SeasonLength

		// One-step-ahead residual before updating state.
		residuals = append(residuals, data[t]-(level+trend)*seasonal[idx])

		prevLevel := level
		level = alpha*(data[t]/nonZero(seasonal[idx])) + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
		seasonal[idx] = gamma*(data[t]/nonZero(level)) + (1-gamma)*seasonal[idx]
	}

	sigma := calc.SampleStdDev(residuals)
	if len(residuals) < 2 {
		// Too few residuals to compute a variance; fall back to a heuristic
		// proportional to the level. Kept as-is for behavioral compatibility.
		sigma = math.Abs(level) * 0.1
	}

	return seasonalModel{Level: level, Trend: trend, Seasonal: seasonal, Sigma: sigma}
}

// fitLinear fits the short-history fallback: OLS trend over the whole series,
// with the supplied seasonality profile substituted directly (no adaptation).
func fitLinear(data []float64, seasonality []float64) seasonalModel {
	level := calc.Mean(data)
	trend := calc.LinearSlope(data)

	seasonal := flatSeasonality()
	if len(seasonality) == SeasonLength {
		copy(seasonal, seasonality)
	}

	// Residuals against the fitted line, for the band width.
	xMean := float64(len(data)-1) / 2.0
	var residuals []float64
	for i, v := range data {
		fitted := level + trend*(float64(i)-xMean)
		residuals = append(residuals, v-fitted)
	}
	sigma := calc.SampleStdDev(residuals)
	if len(residuals) < 2 {
		sigma = math.Abs(level) * 0.1
	}

	return seasonalModel{Level: level, Trend: trend, Seasonal: seasonal, Sigma: sigma}
}

// fitSeries picks the algorithm by history length.
func fitSeries(data []float64, seasonality []float64) seasonalModel {
	if len(data) >= minSeasonalHistory {
		return fitHoltWinters(data)
	}
	return fitLinear(data, seasonality)
}

// project produces horizon forecast points from the fitted model, with months
// numbered from n+1.
func (m seasonalModel) project(n, horizon int) []ForecastPoint {
	const (
		z80 = 1.28
		z95 = 1.96
	)
	points := make([]ForecastPoint, 0, horizon)
	for h := 1; h <= horizon; h++ {
		seasonalIdx := m.Seasonal[(n+h-1)%SeasonLength]
		predicted := (m.Level + float64(h)*m.Trend) * seasonalIdx

		// Band width grows with sqrt(h): each step ahead compounds the
		// one-step residual variance.
		spread := m.Sigma * math.Sqrt(float64(h))
		points = append(points, ForecastPoint{
			Month:     n + h,
			Predicted: predicted,
			Lower80:   predicted - z80*spread,
			Upper80:   predicted + z80*spread,
			Lower95:   predicted - z95*spread,
			Upper95:   predicted + z95*spread,
		})
	}
	return points
}

// nonZero guards the multiplicative updates against a zero divisor.
func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func flatSeasonality() []float64 {
	s := make([]float64, SeasonLength)
	for i := range s {
		s[i] = 1.0
	}
	return s
}
