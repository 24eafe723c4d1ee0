package debt

import (
	"math"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

const (
	// refinanceSpread: loans within 1% of the market benchmark are not worth
	// flagging.
	refinanceSpread = 0.01

	// closingCostRate estimates refinance closing costs at 1.5% of balance.
	closingCostRate = 0.015

	// breakEvenNever marks an opportunity that never recoups its costs.
	breakEvenNever = 999
)

// FindRefinanceOpportunities scans loans against type-keyed market rates and
// returns the opportunities with positive monthly savings.
func FindRefinanceOpportunities(loans []Loan, marketRates map[string]float64) []RefinanceOpportunity {
	opportunities := make([]RefinanceOpportunity, 0)
	for _, l := range loans {
		if l.Balance <= 0 {
			continue
		}
		marketRate, ok := marketRates[l.Type]
		if !ok || l.AnnualRate <= marketRate+refinanceSpread {
			continue
		}

		// New payment at the market rate over the same remaining term.
		newPayment := calc.AnnuityPayment(l.Balance, marketRate/12, l.RemainingMonths)
		monthlySavings := l.MonthlyPayment - newPayment
		if monthlySavings <= 0 {
			continue
		}

		oldInterest := RemainingInterest(l.Balance, l.monthlyRate(), l.MonthlyPayment, l.RemainingMonths)
		newInterest := RemainingInterest(l.Balance, marketRate/12, newPayment, l.RemainingMonths)

		closingCosts := l.Balance * closingCostRate
		breakEven := breakEvenNever
		if monthlySavings > 0 {
			breakEven = int(math.Ceil(closingCosts / monthlySavings))
		}

		opportunities = append(opportunities, RefinanceOpportunity{
			LoanID:          l.ID,
			CurrentRate:     l.AnnualRate,
			MarketRate:      marketRate,
			MonthlySavings:  monthlySavings,
			TotalSavings:    oldInterest - newInterest,
			BreakEvenMonths: breakEven,
		})
	}
	return opportunities
}

// WeightedAverageCost returns the balance-weighted average annual rate across
// loans, 0 when there is no outstanding debt.
func WeightedAverageCost(loans []Loan) float64 {
	var weighted, total float64
	for _, l := range loans {
		weighted += l.AnnualRate * l.Balance
		total += l.Balance
	}
	return calc.SafeDiv(weighted, total)
}
