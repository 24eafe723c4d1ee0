package capacity

import (
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// DebtServiceCoverage returns annual NOI over annual debt service with the
// documented sentinels: 99.99 when there is income but no debt (the ratio is
// effectively unconstrained), 0 when there is neither.
func DebtServiceCoverage(annualNOI, annualDebtService float64) float64 {
	if annualDebtService == 0 {
		if annualNOI > 0 {
			return dscrUnconstrained
		}
		return 0
	}
	return annualNOI / annualDebtService
}

// Analyze computes current coverage, remaining borrowing capacity at the
// target DSCR, sized loan options across standard terms, and revenue-shock
// stress scenarios. Pure computation; the caller supplies aggregated figures.
func Analyze(input CapacityInput) CapacityReport {
	dscr := DebtServiceCoverage(input.AnnualNOI, input.AnnualDebtService)

	maxDebtService := calc.SafeDiv(input.AnnualNOI, input.TargetDSCR)
	available := maxDebtService - input.AnnualDebtService
	if available < 0 {
		available = 0
	}

	return CapacityReport{
		DSCR:                 dscr,
		MaxAnnualDebtService: maxDebtService,
		AvailableCapacity:    available,
		LoanOptions:          sizeLoanOptions(available, input.MarketRate),
		StressScenarios:      stressTest(input),
	}
}

// sizeLoanOptions converts available annual capacity into the largest loan
// supportable at each standard term: the present value of an ordinary annuity
// whose payment is the monthly capacity.
func sizeLoanOptions(availableCapacity, marketRate float64) []LoanOption {
	monthlyPayment := availableCapacity / 12
	options := make([]LoanOption, 0, len(loanTermOptions))
	for _, term := range loanTermOptions {
		options = append(options, LoanOption{
			TermYears:      term,
			MaxLoan:        calc.PresentValueAnnuity(monthlyPayment, marketRate/12, term*12),
			MonthlyPayment: monthlyPayment,
		})
	}
	return options
}

// stressTest recomputes coverage under each revenue shock. Expenses are
// treated as fully sticky: only revenue falls, the cost base does not.
func stressTest(input CapacityInput) []StressScenario {
	expenses := input.AnnualRevenue - input.AnnualNOI

	scenarios := make([]StressScenario, 0, len(revenueShocks))
	for _, shock := range revenueShocks {
		adjustedRevenue := input.AnnualRevenue * (1 + shock)
		adjustedNOI := adjustedRevenue - expenses
		adjustedDSCR := DebtServiceCoverage(adjustedNOI, input.AnnualDebtService)

		remaining := calc.SafeDiv(adjustedNOI, input.TargetDSCR) - input.AnnualDebtService
		if remaining < 0 {
			remaining = 0
		}

		scenarios = append(scenarios, StressScenario{
			RevenueShock:           shock,
			AdjustedNOI:            adjustedNOI,
			AdjustedDSCR:           adjustedDSCR,
			RemainingCapacity:      remaining,
			CanServiceExistingDebt: adjustedDSCR >= 1.0,
		})
	}
	return scenarios
}
