// Package calc provides the numeric helpers shared by the modeling engines:
// annuity math, series statistics, and guarded division. It has no
// dependencies on the engine packages so that each engine stays independent.
package calc

import "math"

// SafeDiv divides numerator by denominator, returning 0 on a zero denominator
// instead of NaN/Inf. Expected degenerate inputs (zero revenue, zero balance)
// resolve to 0 throughout the engines.
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// Fewer than two values cannot yield a variance; the caller decides the
// fallback, so this returns 0.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// LinearSlope fits an ordinary least-squares line y = a + b*x over the series
// (x = 0..n-1) and returns the slope b. Series shorter than two points have
// no trend.
func LinearSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	// x mean for 0..n-1 is (n-1)/2
	xMean := float64(n-1) / 2.0
	yMean := Mean(values)
	var num, den float64
	for i, v := range values {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	return SafeDiv(num, den)
}

// =============================================================================
// ANNUITY MATH
// =============================================================================

// AnnuityPayment returns the level monthly payment that fully amortizes
// principal over months at the given monthly rate:
//
//	P * r(1+r)^n / ((1+r)^n - 1)
//
// A zero rate degrades to straight-line repayment (principal / months).
func AnnuityPayment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * factor / (factor - 1)
}

// PresentValueAnnuity returns the lump sum equivalent today of a stream of
// equal monthly payments at the given monthly discount rate:
//
//	PMT * (1 - (1+r)^-n) / r
//
// A zero rate degrades to PMT * n exactly.
func PresentValueAnnuity(payment, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(months)
	}
	return payment * (1 - math.Pow(1+monthlyRate, -float64(months))) / monthlyRate
}

// RemainingBalance returns the outstanding principal on a fully amortizing
// loan after paymentsMade of totalMonths scheduled payments:
//
//	B * ((1+r)^n - (1+r)^k) / ((1+r)^n - 1)
//
// Once the term is exceeded the balance is 0.
func RemainingBalance(principal, monthlyRate float64, totalMonths, paymentsMade int) float64 {
	if totalMonths <= 0 || paymentsMade >= totalMonths {
		return 0
	}
	if paymentsMade <= 0 {
		return principal
	}
	if monthlyRate == 0 {
		return principal * (1 - float64(paymentsMade)/float64(totalMonths))
	}
	full := math.Pow(1+monthlyRate, float64(totalMonths))
	paid := math.Pow(1+monthlyRate, float64(paymentsMade))
	return principal * (full - paid) / (full - 1)
}
