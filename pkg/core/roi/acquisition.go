package roi

import (
	"math"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// AcquisitionInput describes buying an existing practice with seller or bank
// financing. OpExRatio is operating expenses as a fraction of revenue;
// AdditionalStaffCost is the annual cost of staff added post-acquisition.
type AcquisitionInput struct {
	PurchasePrice       float64 `json:"purchase_price"`
	DownPayment         float64 `json:"down_payment"`
	AnnualRate          float64 `json:"annual_rate"`
	LoanTermYears       int     `json:"loan_term_years"`
	AnnualRevenue       float64 `json:"annual_revenue"`
	RevenueGrowthRate   float64 `json:"revenue_growth_rate"`
	OpExRatio           float64 `json:"opex_ratio"`
	AdditionalStaffCost float64 `json:"additional_staff_cost"`
}

// AnalyzePracticeAcquisition projects an acquired practice over
// max(loanTermYears, 10) years. Revenue compounds at the growth rate; the
// equity proxy values the practice at 1.0x revenue net of the remaining loan
// balance.
func AnalyzePracticeAcquisition(input AcquisitionInput) ROIResult {
	if input.PurchasePrice <= 0 {
		return ROIResult{}
	}

	horizon := input.LoanTermYears
	if horizon < 10 {
		horizon = 10
	}

	loanAmount := input.PurchasePrice - input.DownPayment
	termMonths := input.LoanTermYears * 12
	monthlyRate := input.AnnualRate / 12

	annualDebtService := 0.0
	if loanAmount > 0 && termMonths > 0 {
		annualDebtService = calc.AnnuityPayment(loanAmount, monthlyRate, termMonths) * 12
	}

	invested := input.DownPayment

	projection := make([]YearProjection, 0, horizon)
	irrFlows := make([]float64, 0, horizon+1)
	irrFlows = append(irrFlows, -invested)

	cumulative := 0.0
	firstYearCashFlow := 0.0
	terminalEquity := 0.0
	for year := 1; year <= horizon; year++ {
		revenue := input.AnnualRevenue * math.Pow(1+input.RevenueGrowthRate, float64(year))
		noi := revenue*(1-input.OpExRatio) - input.AdditionalStaffCost

		debtService := annualDebtService
		if year*12 > termMonths {
			debtService = 0
		}
		remaining := 0.0
		if loanAmount > 0 && year*12 < termMonths {
			remaining = calc.RemainingBalance(loanAmount, monthlyRate, termMonths, year*12)
		}

		cashFlow := noi - debtService
		if year == 1 {
			firstYearCashFlow = cashFlow
		}

		// 1.0x revenue is the assumed practice value multiple.
		equity := revenue - remaining

		cumulative += cashFlow
		projection = append(projection, YearProjection{
			Year:               year,
			CashFlow:           cashFlow,
			CumulativeCashFlow: cumulative,
			Equity:             equity,
		})

		flow := cashFlow
		if year == horizon {
			terminalEquity = equity
			flow += terminalEquity
		}
		irrFlows = append(irrFlows, flow)
	}

	irr, converged := SolveIRR(irrFlows)

	totalReturns := cumulative + terminalEquity
	netProfit := totalReturns - invested
	monthlyCashFlow := firstYearCashFlow / 12

	return ROIResult{
		CashOnCashReturn:    calc.SafeDiv(firstYearCashFlow, invested),
		TotalROI:            calc.SafeDiv(netProfit, invested),
		IRR:                 irr,
		IRRConverged:        converged,
		PaybackPeriodMonths: paybackMonths(invested, monthlyCashFlow, horizon*12),
		MonthlyCashFlow:     monthlyCashFlow,
		AnnualCashFlow:      firstYearCashFlow,
		YearlyProjection:    projection,
		TotalInvested:       invested,
		TotalReturns:        totalReturns,
		NetProfit:           netProfit,
	}
}
