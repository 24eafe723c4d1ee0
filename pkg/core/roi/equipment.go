package roi

import (
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// EquipmentInput describes a financed equipment purchase (CBCT, chairs,
// CAD/CAM). Revenue increase and maintenance are annual figures.
type EquipmentInput struct {
	EquipmentCost           float64 `json:"equipment_cost"`
	DownPayment             float64 `json:"down_payment"`
	AnnualRate              float64 `json:"annual_rate"`
	FinancingTermYears      int     `json:"financing_term_years"`
	ExpectedRevenueIncrease float64 `json:"expected_revenue_increase"`
	MaintenanceCost         float64 `json:"maintenance_cost"`
	UsefulLifeYears         int     `json:"useful_life_years"`
}

// AnalyzeEquipment projects an equipment purchase over its useful life.
// Financing payments stop after the term; the equity proxy is straight-line
// book value floored at zero.
func AnalyzeEquipment(input EquipmentInput) ROIResult {
	if input.EquipmentCost <= 0 || input.UsefulLifeYears <= 0 {
		return ROIResult{}
	}

	loanAmount := input.EquipmentCost - input.DownPayment
	termMonths := input.FinancingTermYears * 12

	annualDebtService := 0.0
	if loanAmount > 0 && termMonths > 0 {
		annualDebtService = calc.AnnuityPayment(loanAmount, input.AnnualRate/12, termMonths) * 12
	}

	invested := input.DownPayment
	annualDepreciation := input.EquipmentCost / float64(input.UsefulLifeYears)

	projection := make([]YearProjection, 0, input.UsefulLifeYears)
	irrFlows := make([]float64, 0, input.UsefulLifeYears+1)
	irrFlows = append(irrFlows, -invested)

	cumulative := 0.0
	firstYearBenefit := 0.0
	terminalBookValue := 0.0
	for year := 1; year <= input.UsefulLifeYears; year++ {
		debtService := annualDebtService
		if year > input.FinancingTermYears {
			debtService = 0
		}
		netBenefit := input.ExpectedRevenueIncrease - input.MaintenanceCost - debtService
		if year == 1 {
			firstYearBenefit = netBenefit
		}

		bookValue := input.EquipmentCost - annualDepreciation*float64(year)
		if bookValue < 0 {
			bookValue = 0
		}

		cumulative += netBenefit
		projection = append(projection, YearProjection{
			Year:               year,
			CashFlow:           netBenefit,
			CumulativeCashFlow: cumulative,
			Equity:             bookValue,
		})

		flow := netBenefit
		if year == input.UsefulLifeYears {
			terminalBookValue = bookValue
			flow += terminalBookValue
		}
		irrFlows = append(irrFlows, flow)
	}

	irr, converged := SolveIRR(irrFlows)

	totalReturns := cumulative + terminalBookValue
	netProfit := totalReturns - invested
	monthlyCashFlow := firstYearBenefit / 12

	return ROIResult{
		CashOnCashReturn:    calc.SafeDiv(firstYearBenefit, invested),
		TotalROI:            calc.SafeDiv(netProfit, invested),
		IRR:                 irr,
		IRRConverged:        converged,
		PaybackPeriodMonths: paybackMonths(invested, monthlyCashFlow, input.UsefulLifeYears*12),
		MonthlyCashFlow:     monthlyCashFlow,
		AnnualCashFlow:      firstYearBenefit,
		YearlyProjection:    projection,
		TotalInvested:       invested,
		TotalReturns:        totalReturns,
		NetProfit:           netProfit,
	}
}
