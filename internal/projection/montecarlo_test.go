package projection

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
)

func runMonteCarlo(t *testing.T, assets models.AssetSnapshot, s models.SimulationSettings, events []models.LifeEvent, paths int, src rand.Source) []PathStats {
	t.Helper()
	out, err := SimulateMonteCarlo(context.Background(), assets, s, events, start, paths, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func volatileSettings() models.SimulationSettings {
	s := flatSettings(10)
	s.MonthlyInvestment = 50000
	s.InvestmentReturn = 5
	s.RiskProfile = models.RiskProfileHigh
	return s
}

func TestSimulateMonteCarlo_Deterministic(t *testing.T) {
	assets := models.AssetSnapshot{Investment: 1_000_000}
	s := volatileSettings()

	a := runMonteCarlo(t, assets, s, nil, 200, rand.NewPCG(1, 2))
	b := runMonteCarlo(t, assets, s, nil, 200, rand.NewPCG(1, 2))
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical results for identical seeds")
	}

	c := runMonteCarlo(t, assets, s, nil, 200, rand.NewPCG(3, 4))
	if reflect.DeepEqual(a, c) {
		t.Error("expected different seeds to produce different results")
	}
}

func TestSimulateMonteCarlo_Ordering(t *testing.T) {
	out := runMonteCarlo(t, models.AssetSnapshot{Investment: 1_000_000}, volatileSettings(), nil, 300, rand.NewPCG(7, 7))
	if len(out) != 10 {
		t.Fatalf("expected 10 years, got %d", len(out))
	}
	for _, y := range out {
		if !(y.Min <= y.P25 && y.P25 <= y.P75 && y.P75 <= y.Max) {
			t.Errorf("year %d: expected min <= p25 <= p75 <= max, got %+v", y.Year, y)
		}
		if y.Average < y.Min || y.Average > y.Max {
			t.Errorf("year %d: average %v outside [%v, %v]", y.Year, y.Average, y.Min, y.Max)
		}
	}
	if last := out[9]; last.Min == last.Max {
		t.Error("expected spread between paths")
	}
}

func TestSimulateMonteCarlo_NoInvestmentIsFlat(t *testing.T) {
	s := flatSettings(3)
	s.MonthlySavings = 10000
	s.InvestmentReturn = 5

	out := runMonteCarlo(t, models.AssetSnapshot{Savings: 1000}, s, nil, 50, rand.NewPCG(1, 1))
	for _, y := range out {
		if y.Min != y.Max {
			t.Errorf("year %d: expected identical paths without investments, got %+v", y.Year, y)
		}
	}
	if out[2].Average != 361000 {
		t.Errorf("expected 361000, got %v", out[2].Average)
	}
}

func TestSimulateMonteCarlo_DefaultPaths(t *testing.T) {
	out := runMonteCarlo(t, models.AssetSnapshot{}, flatSettings(1), nil, 0, rand.NewPCG(1, 1))
	if len(out) != 1 {
		t.Errorf("expected 1 year, got %d", len(out))
	}
	if runMonteCarlo(t, models.AssetSnapshot{}, flatSettings(0), nil, 10, rand.NewPCG(1, 1)) != nil {
		t.Error("expected nil for zero years")
	}
}

func TestVolatility(t *testing.T) {
	tests := map[models.RiskProfile]float64{
		models.RiskProfileLow:    0.05,
		models.RiskProfileMedium: 0.10,
		models.RiskProfileHigh:   0.18,
		"":                       0.10,
	}
	for p, want := range tests {
		if got := Volatility(p); got != want {
			t.Errorf("%q: expected %v, got %v", p, want, got)
		}
	}
}

func TestSimulateMonteCarlo_EventInStartMonth(t *testing.T) {
	events := []models.LifeEvent{{Name: "Deposit", YearMonth: start.String(), Amount: 700}}

	out := runMonteCarlo(t, models.AssetSnapshot{Savings: 1000}, flatSettings(1), events, 20, rand.NewPCG(1, 1))
	if out[0].Min != 300 || out[0].Max != 300 {
		t.Errorf("expected every path at 300, got %+v", out[0])
	}
}

func TestSimulateMonteCarlo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := SimulateMonteCarlo(ctx, models.AssetSnapshot{}, volatileSettings(), nil, start, 100, rand.NewPCG(1, 1))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Errorf("expected no stats, got %v", out)
	}
}
