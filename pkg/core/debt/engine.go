package debt

// Analyze runs the full debt analysis: weighted cost of capital, refinance
// scan, and both payoff scenarios. The input loans are left untouched.
func Analyze(input DebtInput) DebtReport {
	totalDebt := 0.0
	for _, l := range input.Loans {
		totalDebt += l.Balance
	}

	avalanche := BuildPayoffPlan(input.Loans, input.ExtraMonthlyPayment, StrategyAvalanche)
	snowball := BuildPayoffPlan(input.Loans, input.ExtraMonthlyPayment, StrategySnowball)

	return DebtReport{
		WeightedAverageCost:    WeightedAverageCost(input.Loans),
		TotalDebt:              totalDebt,
		RefinanceOpportunities: FindRefinanceOpportunities(input.Loans, input.MarketRates),
		Avalanche:              avalanche,
		Snowball:               snowball,
		Comparison: StrategyComparison{
			InterestAdvantage: avalanche.TotalInterestSaved - snowball.TotalInterestSaved,
			MonthsDelta:       snowball.DebtFreeMonth - avalanche.DebtFreeMonth,
		},
	}
}
