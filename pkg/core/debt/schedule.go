package debt

// RemainingInterest iterates the amortization schedule month by month and
// returns the total interest paid over at most remainingMonths, stopping
// early when the balance reaches zero.
func RemainingInterest(balance, monthlyRate, monthlyPayment float64, remainingMonths int) float64 {
	total := 0.0
	for month := 0; month < remainingMonths && balance > 0; month++ {
		interest := balance * monthlyRate
		principal := monthlyPayment - interest
		total += interest
		balance -= principal
		if balance < 0 {
			balance = 0
		}
	}
	return total
}

// SimulatePayoff runs a single loan to payoff at the given payment. If the
// payment ever fails to cover accruing interest the loan can never amortize:
// the simulation aborts with the tagged sentinel outcome instead of looping
// to the cap.
func SimulatePayoff(balance, monthlyRate, monthlyPayment float64) PayoffOutcome {
	totalInterest := 0.0
	for month := 1; month <= MaxSimulationMonths; month++ {
		interest := balance * monthlyRate
		if monthlyPayment <= interest {
			return PayoffOutcome{
				Months:         MaxSimulationMonths,
				TotalInterest:  balance * monthlyRate * MaxSimulationMonths,
				NeverAmortizes: true,
			}
		}
		totalInterest += interest
		balance -= monthlyPayment - interest
		if balance <= paidOffThreshold {
			return PayoffOutcome{Months: month, TotalInterest: totalInterest}
		}
	}
	return PayoffOutcome{Months: MaxSimulationMonths, TotalInterest: totalInterest}
}

// baselineOutcome is the loan's standalone payoff with no extra payment.
func baselineOutcome(l Loan) PayoffOutcome {
	if l.Balance <= 0 {
		return PayoffOutcome{}
	}
	return SimulatePayoff(l.Balance, l.monthlyRate(), l.MonthlyPayment)
}
