package services

import (
	"context"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/testutil"
)

func baseSettings() SettingsInput {
	return SettingsInput{
		Years:          2,
		MonthlySavings: 10000,
		RiskProfile:    models.RiskProfileMedium,
	}
}

func TestSimulationSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSimulationService(db, today, 0)

		s, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if s.Years != 30 || !s.UseTaxAdvantaged || s.RiskProfile != models.RiskProfileMedium {
			t.Errorf("unexpected defaults %+v", s)
		}

		again, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if again.ID != s.ID {
			t.Error("expected a single settings row")
		}
	})

	t.Run("update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSimulationService(db, today, 0)

		in := baseSettings()
		in.LumpSumEnabled = true
		in.LumpSumAmount = 100000
		in.LumpSumMonths = []int{6, 12}
		_, err := svc.UpdateSettings(in)
		testutil.AssertNoError(t, err)

		s, err := svc.GetSettings()
		testutil.AssertNoError(t, err)
		if s.Years != 2 || s.UseTaxAdvantaged || !reflect.DeepEqual(s.LumpSumMonths, []int{6, 12}) {
			t.Errorf("settings not stored: %+v", s)
		}
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSimulationService(db, today, 0)

		in := baseSettings()
		in.Years = 0
		_, err := svc.UpdateSettings(in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		in = baseSettings()
		in.InvestmentReturn = math.Inf(1)
		_, err = svc.UpdateSettings(in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		in = baseSettings()
		in.MonthlyInvestment = -1
		_, err = svc.UpdateSettings(in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		in = baseSettings()
		in.LumpSumMonths = []int{13}
		_, err = svc.UpdateSettings(in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestLifeEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSimulationService(db, today, 0)

	late, err := svc.CreateLifeEvent("Car", "2030-04", 2000000)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateLifeEvent("Wedding", "2027-10", 3000000)
	testutil.AssertNoError(t, err)

	events, err := svc.GetLifeEvents()
	testutil.AssertNoError(t, err)
	if len(events) != 2 || events[0].Name != "Wedding" {
		t.Errorf("expected events in date order, got %+v", events)
	}

	_, err = svc.CreateLifeEvent("", "2027-10", 1)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
	_, err = svc.CreateLifeEvent("Trip", "2027-13", 1)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
	_, err = svc.CreateLifeEvent("Trip", "2027-10", 0)
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	testutil.AssertNoError(t, svc.DeleteLifeEvent(late.ID))
	err = svc.DeleteLifeEvent(late.ID)
	testutil.AssertAppError(t, err, "LIFE_EVENT_NOT_FOUND")
}

func TestProject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CreateTestAssets(t, db, 1000000, 0, 0, 0)
	svc := NewSimulationService(db, today, 0)

	_, err := svc.UpdateSettings(baseSettings())
	testutil.AssertNoError(t, err)

	years, err := svc.Project()
	testutil.AssertNoError(t, err)
	if len(years) != 2 {
		t.Fatalf("expected 2 years, got %d", len(years))
	}
	if years[0].Total != 1120000 || years[1].Total != 1240000 {
		t.Errorf("unexpected totals %v, %v", years[0].Total, years[1].Total)
	}
	if years[0].CalendarYear != 2027 {
		t.Errorf("expected first year to end in 2027, got %d", years[0].CalendarYear)
	}

	testutil.CreateTestLifeEvent(t, db, "2026-06", 100000)
	years, err = svc.Project()
	testutil.AssertNoError(t, err)
	if years[0].Total != 1020000 {
		t.Errorf("expected life event to reduce year one to 1020000, got %v", years[0].Total)
	}

	testutil.CreateTestLifeEvent(t, db, "2026-03", 20000)
	years, err = svc.Project()
	testutil.AssertNoError(t, err)
	if years[0].Total != 1000000 {
		t.Errorf("expected current-month event to reduce year one to 1000000, got %v", years[0].Total)
	}
}

func TestMonteCarlo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CreateTestAssets(t, db, 0, 1000000, 0, 0)
	svc := NewSimulationService(db, today, 20)

	in := baseSettings()
	in.MonthlyInvestment = 10000
	in.InvestmentReturn = 5
	in.RiskProfile = models.RiskProfileHigh
	_, err := svc.UpdateSettings(in)
	testutil.AssertNoError(t, err)

	a, err := svc.MonteCarlo(context.Background(), 0, rand.NewPCG(1, 2))
	testutil.AssertNoError(t, err)
	b, err := svc.MonteCarlo(context.Background(), 0, rand.NewPCG(1, 2))
	testutil.AssertNoError(t, err)

	if len(a) != 2 {
		t.Fatalf("expected 2 years, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical results for the same seed")
	}
	for _, y := range a {
		if y.Min > y.P25 || y.P25 > y.P75 || y.P75 > y.Max {
			t.Errorf("year %d: statistics out of order %+v", y.Year, y)
		}
	}

	unseeded, err := svc.MonteCarlo(context.Background(), 5, nil)
	testutil.AssertNoError(t, err)
	if len(unseeded) != 2 {
		t.Errorf("expected 2 years, got %d", len(unseeded))
	}
}
