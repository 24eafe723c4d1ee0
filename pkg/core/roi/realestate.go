package roi

import (
	"math"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// RealEstateInput describes a financed rental property purchase. Rates are
// annual decimals; VacancyRate is the expected fraction of rent lost to
// vacancy.
type RealEstateInput struct {
	PurchasePrice    float64 `json:"purchase_price"`
	DownPayment      float64 `json:"down_payment"`
	AnnualRate       float64 `json:"annual_rate"`
	LoanTermYears    int     `json:"loan_term_years"`
	MonthlyRent      float64 `json:"monthly_rent"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	VacancyRate      float64 `json:"vacancy_rate"`
	AppreciationRate float64 `json:"appreciation_rate"`
	HoldYears        int     `json:"hold_years"`
}

// AnalyzeRealEstate projects a rental property over the hold period. Equity
// each year is appreciated market value minus the remaining loan balance; the
// terminal IRR flow includes net sale proceeds at exit.
func AnalyzeRealEstate(input RealEstateInput) ROIResult {
	if input.HoldYears <= 0 || input.PurchasePrice <= 0 {
		return ROIResult{}
	}

	loanAmount := input.PurchasePrice - input.DownPayment
	termMonths := input.LoanTermYears * 12
	monthlyRate := input.AnnualRate / 12

	mortgagePayment := 0.0
	if loanAmount > 0 && termMonths > 0 {
		mortgagePayment = calc.AnnuityPayment(loanAmount, monthlyRate, termMonths)
	}

	effectiveRent := input.MonthlyRent * (1 - input.VacancyRate)
	monthlyCashFlow := effectiveRent - input.MonthlyExpenses - mortgagePayment
	annualCashFlow := monthlyCashFlow * 12

	invested := input.DownPayment

	projection := make([]YearProjection, 0, input.HoldYears)
	irrFlows := make([]float64, 0, input.HoldYears+1)
	irrFlows = append(irrFlows, -invested)

	cumulative := 0.0
	saleProceeds := 0.0
	for year := 1; year <= input.HoldYears; year++ {
		value := input.PurchasePrice * math.Pow(1+input.AppreciationRate, float64(year))

		remaining := 0.0
		if loanAmount > 0 && year*12 < termMonths {
			remaining = calc.RemainingBalance(loanAmount, monthlyRate, termMonths, year*12)
		}
		equity := value - remaining

		cumulative += annualCashFlow
		projection = append(projection, YearProjection{
			Year:               year,
			CashFlow:           annualCashFlow,
			CumulativeCashFlow: cumulative,
			Equity:             equity,
		})

		flow := annualCashFlow
		if year == input.HoldYears {
			saleProceeds = equity
			flow += saleProceeds
		}
		irrFlows = append(irrFlows, flow)
	}

	irr, converged := SolveIRR(irrFlows)

	totalReturns := cumulative + saleProceeds
	netProfit := totalReturns - invested

	return ROIResult{
		CashOnCashReturn:    calc.SafeDiv(annualCashFlow, invested),
		TotalROI:            calc.SafeDiv(netProfit, invested),
		IRR:                 irr,
		IRRConverged:        converged,
		PaybackPeriodMonths: paybackMonths(invested, monthlyCashFlow, input.HoldYears*12),
		MonthlyCashFlow:     monthlyCashFlow,
		AnnualCashFlow:      annualCashFlow,
		YearlyProjection:    projection,
		TotalInvested:       invested,
		TotalReturns:        totalReturns,
		NetProfit:           netProfit,
	}
}
