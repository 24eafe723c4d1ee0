package capacity

import (
	"math"
	"testing"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/calc"
)

func TestDebtServiceCoverageSentinels(t *testing.T) {
	tests := []struct {
		name string
		noi  float64
		ds   float64
		want float64
	}{
		{"normal", 150000, 100000, 1.5},
		{"no debt, positive income", 100000, 0, 99.99},
		{"no debt, no income", 0, 0, 0},
		{"no debt, negative income", -50000, 0, 0},
		{"negative income with debt", -60000, 100000, -0.6},
	}
	for _, tc := range tests {
		if got := DebtServiceCoverage(tc.noi, tc.ds); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: expected %.2f, got %.2f", tc.name, tc.want, got)
		}
	}
}

func baselineInput() CapacityInput {
	return CapacityInput{
		AnnualNOI:         240000,
		AnnualDebtService: 100000,
		AnnualRevenue:     1000000,
		TargetDSCR:        1.25,
		MarketRate:        0.07,
	}
}

func TestAnalyzeCapacity(t *testing.T) {
	report := Analyze(baselineInput())

	if math.Abs(report.DSCR-2.4) > 1e-9 {
		t.Errorf("DSCR: expected 2.4, got %f", report.DSCR)
	}
	// 240000 / 1.25 = 192000 max service; 92000 of headroom.
	if math.Abs(report.MaxAnnualDebtService-192000) > 1e-9 {
		t.Errorf("max debt service: expected 192000, got %f", report.MaxAnnualDebtService)
	}
	if math.Abs(report.AvailableCapacity-92000) > 1e-9 {
		t.Errorf("available capacity: expected 92000, got %f", report.AvailableCapacity)
	}
}

func TestLoanOptionsAcrossTerms(t *testing.T) {
	report := Analyze(baselineInput())

	if len(report.LoanOptions) != 7 {
		t.Fatalf("expected 7 term options, got %d", len(report.LoanOptions))
	}
	wantTerms := []int{5, 7, 10, 15, 20, 25, 30}
	monthlyPayment := 92000.0 / 12
	for i, opt := range report.LoanOptions {
		if opt.TermYears != wantTerms[i] {
			t.Errorf("option %d: expected term %d, got %d", i, wantTerms[i], opt.TermYears)
		}
		want := calc.PresentValueAnnuity(monthlyPayment, 0.07/12, opt.TermYears*12)
		if math.Abs(opt.MaxLoan-want) > 0.01 {
			t.Errorf("term %d: expected max loan %.2f, got %.2f", opt.TermYears, want, opt.MaxLoan)
		}
		// Same payment over a longer term always supports a larger loan.
		if i > 0 && opt.MaxLoan <= report.LoanOptions[i-1].MaxLoan {
			t.Errorf("max loan not increasing with term at %d years", opt.TermYears)
		}
	}
}

func TestLoanSizingZeroRate(t *testing.T) {
	input := baselineInput()
	input.MarketRate = 0
	report := Analyze(input)

	// Rate 0 degrades to PMT * n exactly, no discounting.
	monthlyPayment := 92000.0 / 12
	for _, opt := range report.LoanOptions {
		want := monthlyPayment * float64(opt.TermYears*12)
		if opt.MaxLoan != want {
			t.Errorf("term %d: expected %.2f exactly, got %.2f", opt.TermYears, want, opt.MaxLoan)
		}
	}
}

func TestOverLeveredPracticeHasNoCapacity(t *testing.T) {
	input := baselineInput()
	input.AnnualDebtService = 250000 // above the 192000 ceiling

	report := Analyze(input)
	if report.AvailableCapacity != 0 {
		t.Errorf("expected zero capacity, got %f", report.AvailableCapacity)
	}
	for _, opt := range report.LoanOptions {
		if opt.MaxLoan != 0 {
			t.Errorf("term %d: zero capacity must size a zero loan, got %f", opt.TermYears, opt.MaxLoan)
		}
	}
}

func TestStressScenarios(t *testing.T) {
	report := Analyze(baselineInput())

	if len(report.StressScenarios) != 5 {
		t.Fatalf("expected 5 stress scenarios, got %d", len(report.StressScenarios))
	}

	// Expenses are sticky at 1,000,000 - 240,000 = 760,000.
	// -10%: NOI = 900000 - 760000 = 140000, DSCR = 1.4, still serviceable.
	first := report.StressScenarios[0]
	if first.RevenueShock != -0.10 {
		t.Fatalf("expected first shock -0.10, got %f", first.RevenueShock)
	}
	if math.Abs(first.AdjustedNOI-140000) > 1e-6 {
		t.Errorf("-10%% NOI: expected 140000, got %f", first.AdjustedNOI)
	}
	if math.Abs(first.AdjustedDSCR-1.4) > 1e-9 {
		t.Errorf("-10%% DSCR: expected 1.4, got %f", first.AdjustedDSCR)
	}
	if !first.CanServiceExistingDebt {
		t.Error("-10% scenario should still service debt")
	}

	// -30%: NOI = 700000 - 760000 = -60000; debt is no longer serviceable
	// and no capacity remains.
	third := report.StressScenarios[2]
	if math.Abs(third.AdjustedNOI+60000) > 1e-6 {
		t.Errorf("-30%% NOI: expected -60000, got %f", third.AdjustedNOI)
	}
	if third.CanServiceExistingDebt {
		t.Error("-30% scenario cannot service debt")
	}
	if third.RemainingCapacity != 0 {
		t.Errorf("-30%% capacity: expected 0, got %f", third.RemainingCapacity)
	}
}
