package debt

import "sort"

// BuildPayoffPlan simulates paying all loans in priority order with the extra
// monthly payment rolled onto the first unpaid loan. Minimum payments from
// retired loans roll over into the pool from the following month.
func BuildPayoffPlan(loans []Loan, extraPayment float64, strategy Strategy) PayoffPlan {
	ordered := prioritize(loans, strategy)

	type loanState struct {
		loan        Loan
		baseline    PayoffOutcome
		balance     float64
		interest    float64
		payoffMonth int
		paid        bool
	}

	states := make([]*loanState, 0, len(ordered))
	for _, l := range ordered {
		st := &loanState{loan: l, baseline: baselineOutcome(l), balance: l.Balance}
		if l.Balance <= 0 {
			st.paid = true
		}
		states = append(states, st)
	}

	freed := 0.0
	for month := 1; month <= MaxSimulationMonths; month++ {
		remaining := false
		for _, st := range states {
			if !st.paid {
				remaining = true
				break
			}
		}
		if !remaining {
			break
		}

		// Freed minimum payments become available the month after payoff.
		availableFreed := freed
		targeted := false
		for _, st := range states {
			if st.paid {
				continue
			}
			payment := st.loan.MonthlyPayment
			if !targeted {
				// First unpaid loan in priority order absorbs the extra
				// payment plus everything freed by retired loans.
				payment += extraPayment + availableFreed
				targeted = true
			}

			interest := st.balance * st.loan.monthlyRate()
			st.interest += interest
			st.balance -= payment - interest

			if st.balance <= paidOffThreshold {
				st.paid = true
				st.payoffMonth = month
				freed += st.loan.MonthlyPayment
			}
		}
	}

	plan := PayoffPlan{Strategy: strategy, Loans: make([]LoanPayoff, 0, len(states))}
	for _, st := range states {
		accMonth := st.payoffMonth
		accInterest := st.interest
		if !st.paid {
			// Failed to retire within the cap: retain the unaccelerated
			// baseline rather than report a partial simulation.
			accMonth = st.baseline.Months
			accInterest = st.baseline.TotalInterest
		}

		saved := st.baseline.TotalInterest - accInterest
		if saved < 0 {
			saved = 0
		}

		plan.Loans = append(plan.Loans, LoanPayoff{
			LoanID:                 st.loan.ID,
			OriginalPayoffMonth:    st.baseline.Months,
			AcceleratedPayoffMonth: accMonth,
			InterestSaved:          saved,
		})
		plan.TotalInterestSaved += saved
		if accMonth > plan.DebtFreeMonth {
			plan.DebtFreeMonth = accMonth
		}
	}
	return plan
}

// prioritize returns a copied slice ordered by payoff priority: avalanche is
// descending interest rate, snowball is ascending balance.
func prioritize(loans []Loan, strategy Strategy) []Loan {
	ordered := make([]Loan, len(loans))
	copy(ordered, loans)
	switch strategy {
	case StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate > ordered[j].AnnualRate
		})
	}
	return ordered
}
