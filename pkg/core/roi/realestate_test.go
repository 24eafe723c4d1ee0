package roi

import (
	"math"
	"testing"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

// The canonical deal used throughout: $500k purchase, $100k down, 6.5%/30yr,
// $4,000 rent, $800 expenses, 5% vacancy, 3% appreciation, 10-year hold.
func canonicalDeal() RealEstateInput {
	return RealEstateInput{
		PurchasePrice:    500000,
		DownPayment:      100000,
		AnnualRate:       0.065,
		LoanTermYears:    30,
		MonthlyRent:      4000,
		MonthlyExpenses:  800,
		VacancyRate:      0.05,
		AppreciationRate: 0.03,
		HoldYears:        10,
	}
}

func TestRealEstateCashFlow(t *testing.T) {
	result := AnalyzeRealEstate(canonicalDeal())

	// Mortgage on $400k at 6.5%/360mo is $2,528.27; effective rent is
	// 4000*0.95 = 3800, so monthly cash flow = 3800 - 800 - 2528.27.
	payment := calc.AnnuityPayment(400000, 0.065/12, 360)
	if math.Abs(payment-2528.27) > 0.01 {
		t.Fatalf("mortgage payment sanity check failed: %f", payment)
	}
	wantMonthly := 3800 - 800 - payment
	if math.Abs(result.MonthlyCashFlow-wantMonthly) > 1e-6 {
		t.Errorf("monthly cash flow: expected %.2f, got %.2f", wantMonthly, result.MonthlyCashFlow)
	}
	if math.Abs(result.AnnualCashFlow-wantMonthly*12) > 1e-6 {
		t.Errorf("annual cash flow: expected %.2f, got %.2f", wantMonthly*12, result.AnnualCashFlow)
	}
	if math.Abs(result.CashOnCashReturn-wantMonthly*12/100000) > 1e-9 {
		t.Errorf("cash-on-cash mismatch: %f", result.CashOnCashReturn)
	}
}

func TestRealEstateYearTenEquity(t *testing.T) {
	result := AnalyzeRealEstate(canonicalDeal())

	if len(result.YearlyProjection) != 10 {
		t.Fatalf("expected 10 projection rows, got %d", len(result.YearlyProjection))
	}
	final := result.YearlyProjection[9]

	// Value after 10 years of 3% appreciation: 500000 * 1.03^10 = 671,958.19.
	wantValue := 500000 * math.Pow(1.03, 10)
	if math.Abs(wantValue-671958.19) > 0.01 {
		t.Fatalf("appreciation sanity check failed: %f", wantValue)
	}
	wantBalance := calc.RemainingBalance(400000, 0.065/12, 360, 120)
	wantEquity := wantValue - wantBalance
	if math.Abs(final.Equity-wantEquity) > 0.01 {
		t.Errorf("year-10 equity: expected %.2f, got %.2f", wantEquity, final.Equity)
	}
}

func TestRealEstateIRRAndTotals(t *testing.T) {
	result := AnalyzeRealEstate(canonicalDeal())

	if !result.IRRConverged {
		t.Fatal("expected IRR to converge for a conventional deal")
	}
	// Levered appreciation plus positive cash flow: low double digits.
	if result.IRR < 0.05 || result.IRR > 0.25 {
		t.Errorf("IRR outside plausible band: %f", result.IRR)
	}

	wantReturns := result.AnnualCashFlow*10 + result.YearlyProjection[9].Equity
	if math.Abs(result.TotalReturns-wantReturns) > 0.01 {
		t.Errorf("total returns: expected %.2f, got %.2f", wantReturns, result.TotalReturns)
	}
	if math.Abs(result.NetProfit-(wantReturns-100000)) > 0.01 {
		t.Errorf("net profit mismatch: %f", result.NetProfit)
	}
	if math.Abs(result.TotalROI-result.NetProfit/100000) > 1e-9 {
		t.Errorf("total ROI mismatch: %f", result.TotalROI)
	}
}

func TestRealEstatePaybackCapsAtHold(t *testing.T) {
	// ~$471.73/month against $100k invested would take 212 months; the
	// projection only runs 120, so payback reports the full horizon.
	result := AnalyzeRealEstate(canonicalDeal())
	if result.PaybackPeriodMonths != 120 {
		t.Errorf("expected payback capped at 120 months, got %d", result.PaybackPeriodMonths)
	}
}

func TestRealEstateNegativeCashFlowPayback(t *testing.T) {
	deal := canonicalDeal()
	deal.MonthlyRent = 2000 // cash-flow negative
	result := AnalyzeRealEstate(deal)

	if result.MonthlyCashFlow >= 0 {
		t.Fatal("test setup expects negative cash flow")
	}
	if result.PaybackPeriodMonths != 120 {
		t.Errorf("negative cash flow must report the full horizon, got %d", result.PaybackPeriodMonths)
	}
}

func TestRealEstateDegenerateInput(t *testing.T) {
	if got := AnalyzeRealEstate(RealEstateInput{}); len(got.YearlyProjection) != 0 {
		t.Error("zero-value input should produce an empty result")
	}
}

func TestRealEstateAllCashPurchase(t *testing.T) {
	deal := canonicalDeal()
	deal.DownPayment = 500000 // no loan
	result := AnalyzeRealEstate(deal)

	wantMonthly := 3800.0 - 800.0
	if math.Abs(result.MonthlyCashFlow-wantMonthly) > 1e-9 {
		t.Errorf("all-cash monthly cash flow: expected %.2f, got %.2f", wantMonthly, result.MonthlyCashFlow)
	}
	// No loan: equity is pure appreciated value.
	wantEquity := 500000 * math.Pow(1.03, 3)
	if math.Abs(result.YearlyProjection[2].Equity-wantEquity) > 0.01 {
		t.Errorf("year-3 equity: expected %.2f, got %.2f", wantEquity, result.YearlyProjection[2].Equity)
	}
}
