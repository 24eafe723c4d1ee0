package roi

import "math"

const (
	irrInitialGuess  = 0.1
	irrMaxIterations = 100
	irrNPVTolerance  = 1e-4

	// Newton steps iterate inside [-0.5, 5]; the final answer passes a wider
	// [-1, 10] sanity band before being reported.
	irrClampLow   = -0.5
	irrClampHigh  = 5.0
	irrAcceptLow  = -1.0
	irrAcceptHigh = 10.0
)

// SolveIRR finds the periodic internal rate of return of a cash-flow series
// via Newton-Raphson. cashFlows[0] is the initial outlay (negative) and each
// subsequent entry is one period's net flow. Returns (0, false) when the
// solver fails to converge or lands outside a plausible band, so callers can
// distinguish "no solution" from a genuine 0% return.
func SolveIRR(cashFlows []float64) (float64, bool) {
	if len(cashFlows) < 2 {
		return 0, false
	}

	rate := irrInitialGuess
	converged := false
	for i := 0; i < irrMaxIterations; i++ {
		npv, derivative := npvAndDerivative(cashFlows, rate)
		if math.Abs(npv) < irrNPVTolerance {
			converged = true
			break
		}
		if math.Abs(derivative) < 1e-10 {
			break
		}
		rate -= npv / derivative
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return 0, false
		}
		// A Newton step near a flat NPV curve can fling the guess past
		// -100%; keep the iterate inside the stable band.
		if rate < irrClampLow {
			rate = irrClampLow
		} else if rate > irrClampHigh {
			rate = irrClampHigh
		}
	}

	if !converged || math.IsNaN(rate) || math.IsInf(rate, 0) ||
		rate < irrAcceptLow || rate > irrAcceptHigh {
		return 0, false
	}
	return rate, true
}

func npvAndDerivative(cashFlows []float64, rate float64) (npv, derivative float64) {
	for t, cf := range cashFlows {
		discount := math.Pow(1+rate, float64(t))
		npv += cf / discount
		if t > 0 {
			derivative -= float64(t) * cf / (discount * (1 + rate))
		}
	}
	return npv, derivative
}
