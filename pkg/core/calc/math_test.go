package calc

import (
	"math"
	"testing"
)

func TestAnnuityPayment(t *testing.T) {
	// $400,000 @ 6.5% over 30 years.
	// r = 0.065/12, n = 360
	// P*r(1+r)^n/((1+r)^n - 1) = 2528.27 (standard mortgage tables)
	pmt := AnnuityPayment(400000, 0.065/12, 360)
	if math.Abs(pmt-2528.27) > 0.05 {
		t.Errorf("expected payment ~2528.27, got %.4f", pmt)
	}
}

func TestAnnuityPaymentZeroRate(t *testing.T) {
	pmt := AnnuityPayment(12000, 0, 24)
	if pmt != 500 {
		t.Errorf("zero-rate payment should be straight-line 500, got %f", pmt)
	}
}

func TestPresentValueAnnuityZeroRate(t *testing.T) {
	// PV at rate 0 is exactly PMT * n.
	pv := PresentValueAnnuity(1000, 0, 120)
	if pv != 120000 {
		t.Errorf("expected 120000, got %f", pv)
	}
}

func TestPresentValueAnnuityRoundTrip(t *testing.T) {
	// The PV of the payment that amortizes B must be B itself.
	r := 0.07 / 12
	pmt := AnnuityPayment(250000, r, 240)
	pv := PresentValueAnnuity(pmt, r, 240)
	if math.Abs(pv-250000) > 0.01 {
		t.Errorf("PV round trip: expected 250000, got %.4f", pv)
	}
}

func TestRemainingBalance(t *testing.T) {
	if b := RemainingBalance(100000, 0.005, 360, 0); b != 100000 {
		t.Errorf("balance before first payment should be principal, got %f", b)
	}
	if b := RemainingBalance(100000, 0.005, 360, 360); b != 0 {
		t.Errorf("balance at term end should be 0, got %f", b)
	}
	// Zero-rate loans amortize linearly.
	if b := RemainingBalance(100000, 0, 100, 25); b != 75000 {
		t.Errorf("expected 75000, got %f", b)
	}
	// Balance decreases monotonically.
	prev := RemainingBalance(100000, 0.005, 360, 1)
	for k := 2; k <= 360; k++ {
		cur := RemainingBalance(100000, 0.005, 360, k)
		if cur >= prev {
			t.Fatalf("balance not strictly decreasing at payment %d", k)
		}
		prev = cur
	}
}

func TestSampleStdDev(t *testing.T) {
	// Values 2,4,4,4,5,5,7,9: sample variance = 32/7
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := math.Sqrt(32.0 / 7.0)
	if got := SampleStdDev(vals); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
	if got := SampleStdDev([]float64{42}); got != 0 {
		t.Errorf("single value has no variance, got %f", got)
	}
}

func TestLinearSlope(t *testing.T) {
	// Perfect line y = 3 + 2x
	vals := []float64{3, 5, 7, 9, 11}
	if got := LinearSlope(vals); math.Abs(got-2) > 1e-9 {
		t.Errorf("expected slope 2, got %f", got)
	}
	if got := LinearSlope([]float64{1000, 1000, 1000}); math.Abs(got) > 1e-9 {
		t.Errorf("flat series should have slope 0, got %f", got)
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(10, 0); got != 0 {
		t.Errorf("division by zero should resolve to 0, got %f", got)
	}
	if got := SafeDiv(10, 4); got != 2.5 {
		t.Errorf("expected 2.5, got %f", got)
	}
}
