package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/ledger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/testutil"
)

func monthlyObligation(day int, amount int64) ObligationInput {
	return ObligationInput{
		Name:       "Rent",
		Amount:     amount,
		Category:   "Housing",
		Kind:       models.RecurrenceMonthlyDate,
		DayOfMonth: day,
	}
}

func weeklyObligation(amount int64) ObligationInput {
	return ObligationInput{
		Name:          "Lessons",
		Amount:        amount,
		Category:      "Education",
		Kind:          models.RecurrenceWeekly,
		Weekday:       time.Monday,
		IntervalWeeks: 1,
	}
}

func recurringEntries(t *testing.T, db *gorm.DB, obligationID string) []models.Transaction {
	t.Helper()
	var entries []models.Transaction
	if err := db.Where("recurring_id = ? AND is_settlement = ?", obligationID, false).
		Order("date ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to load entries: %v", err)
	}
	return entries
}

func TestCreateObligation(t *testing.T) {
	t.Run("generates_current_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		ob, err := svc.CreateObligation(monthlyObligation(25, 80000))
		testutil.AssertNoError(t, err)
		if ob.PaymentMethod != models.PaymentMethodCash || ob.Type != models.ObligationTypeExpense {
			t.Errorf("expected cash expense defaults, got %q/%q", ob.PaymentMethod, ob.Type)
		}

		entries := recurringEntries(t, db, ob.ID)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		e := entries[0]
		if e.ID != ledger.OccurrenceID(ob.ID, calendar.Date(2026, time.March, 25)) {
			t.Errorf("unexpected entry id %s", e.ID)
		}
		if e.Amount != -80000 || e.Settled {
			t.Errorf("expected unsettled -80000, got %d settled=%v", e.Amount, e.Settled)
		}
		if e.RecurringType != models.ObligationTypeExpense {
			t.Errorf("expected recurring type expense, got %q", e.RecurringType)
		}
	})

	t.Run("past_date_is_settled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		ob, err := svc.CreateObligation(monthlyObligation(10, 5000))
		testutil.AssertNoError(t, err)

		entries := recurringEntries(t, db, ob.ID)
		if len(entries) != 1 || !entries[0].Settled {
			t.Fatalf("expected one settled entry, got %+v", entries)
		}
	})

	t.Run("credit_obligation_is_paired", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)
		card := testutil.CreateTestCard(t, db)

		in := monthlyObligation(20, 3000)
		in.Name = "Phone"
		in.PaymentMethod = models.PaymentMethodCredit
		in.CardID = &card.ID
		ob, err := svc.CreateObligation(in)
		testutil.AssertNoError(t, err)

		entries := recurringEntries(t, db, ob.ID)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		pair := findSettlement(t, db, entries[0].ID)
		if pair == nil {
			t.Fatal("expected a settlement entry")
		}
		testutil.AssertDay(t, pair.Date, "2026-05-10")
	})

	t.Run("not_started_yet", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		in := monthlyObligation(1, 1000)
		start := calendar.Date(2026, time.April, 1)
		in.StartDate = &start
		ob, err := svc.CreateObligation(in)
		testutil.AssertNoError(t, err)

		if entries := recurringEntries(t, db, ob.ID); len(entries) != 0 {
			t.Errorf("expected no entries before the start date, got %d", len(entries))
		}
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		cases := map[string]func(in *ObligationInput){
			"no_name":      func(in *ObligationInput) { in.Name = "" },
			"zero_amount":  func(in *ObligationInput) { in.Amount = 0 },
			"bad_day":      func(in *ObligationInput) { in.DayOfMonth = 32 },
			"bad_kind":     func(in *ObligationInput) { in.Kind = "yearly" },
			"bad_weekday":  func(in *ObligationInput) { in.Weekday = 7 },
			"bad_ordinal": func(in *ObligationInput) {
				in.Kind = models.RecurrenceMonthlyWeekday
				in.WeekOrdinal = 6
			},
			"end_before_start": func(in *ObligationInput) {
				start := calendar.Date(2026, time.May, 1)
				end := calendar.Date(2026, time.April, 1)
				in.StartDate, in.EndDate = &start, &end
			},
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				in := monthlyObligation(10, 1000)
				mutate(&in)
				_, err := svc.CreateObligation(in)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		_, err := svc.CreateObligation(weeklyObligation(1000))
		testutil.AssertNoError(t, err)
		before := countTransactions(t, db)
		if before != 5 {
			t.Fatalf("expected 5 Monday entries in March, got %d", before)
		}

		res, err := svc.Generate()
		testutil.AssertNoError(t, err)
		if len(res.Added) != 0 || len(res.Settled) != 0 {
			t.Errorf("expected no changes, got %d added %d settled", len(res.Added), len(res.Settled))
		}
		if res.Month != "2026-03" {
			t.Errorf("expected month 2026-03, got %s", res.Month)
		}
		if after := countTransactions(t, db); after != before {
			t.Errorf("expected %d entries, got %d", before, after)
		}
	})

	t.Run("settles_arrived_entries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ob := testutil.CreateTestObligation(t, db, 25, 80000)

		_, err := NewRecurringService(db, today).Generate()
		testutil.AssertNoError(t, err)

		later := NewRecurringService(db, FixedClock(calendar.Date(2026, time.March, 26)))
		res, err := later.Generate()
		testutil.AssertNoError(t, err)

		want := ledger.OccurrenceID(ob.ID, calendar.Date(2026, time.March, 25))
		if len(res.Settled) != 1 || res.Settled[0] != want {
			t.Fatalf("expected %s to be settled, got %v", want, res.Settled)
		}
		entries := recurringEntries(t, db, ob.ID)
		if !entries[0].Settled {
			t.Error("expected stored entry to be settled")
		}

		res, err = later.Generate()
		testutil.AssertNoError(t, err)
		if len(res.Settled) != 0 {
			t.Errorf("expected rerun to settle nothing, got %v", res.Settled)
		}
	})

	t.Run("manual_entries_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, today)

		pending := false
		in := expense(calendar.Date(2026, time.March, 2), 100)
		in.Settled = &pending
		tx, err := txSvc.CreateTransaction(in)
		testutil.AssertNoError(t, err)

		_, err = NewRecurringService(db, today).Generate()
		testutil.AssertNoError(t, err)

		stored, err := txSvc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		if stored.Settled {
			t.Error("expected manual entry to keep its status")
		}
	})

	t.Run("new_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ob := testutil.CreateTestObligation(t, db, 31, 1000)

		april := NewRecurringService(db, FixedClock(calendar.Date(2026, time.April, 1)))
		res, err := april.Generate()
		testutil.AssertNoError(t, err)
		if len(res.Added) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(res.Added))
		}
		testutil.AssertDay(t, res.Added[0].Date, "2026-04-30")
		if *res.Added[0].RecurringID != ob.ID {
			t.Errorf("expected link to %s", ob.ID)
		}
	})

	t.Run("edited_entry_not_reported_as_added", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		ob := testutil.CreateTestObligation(t, db, 25, 80000)
		svc := NewRecurringService(db, today)

		res, err := svc.Generate()
		testutil.AssertNoError(t, err)
		if len(res.Added) != 1 {
			t.Fatalf("expected 1 entry added, got %d", len(res.Added))
		}
		if err := db.Model(&models.Transaction{}).Where("recurring_id = ?", ob.ID).Update("amount", -85000).Error; err != nil {
			t.Fatalf("failed to edit entry: %v", err)
		}
		before := countTransactions(t, db)

		res, err = svc.Generate()
		testutil.AssertNoError(t, err)
		if len(res.Added) != 0 {
			t.Errorf("expected nothing added, got %d", len(res.Added))
		}
		if after := countTransactions(t, db); after != before {
			t.Errorf("expected %d entries, got %d", before, after)
		}
		if entries := recurringEntries(t, db, ob.ID); entries[0].Amount != -85000 {
			t.Errorf("expected edited amount to survive, got %d", entries[0].Amount)
		}
	})
}

func TestUpdateObligation(t *testing.T) {
	t.Run("reschedules_upcoming", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		ob, err := svc.CreateObligation(monthlyObligation(25, 80000))
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateObligation(ob.ID, monthlyObligation(28, 85000))
		testutil.AssertNoError(t, err)
		if updated.ID != ob.ID || updated.DayOfMonth != 28 {
			t.Errorf("unexpected update result %+v", updated)
		}

		entries := recurringEntries(t, db, ob.ID)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if want := calendar.Date(2026, time.March, 28); !entries[0].Date.Equal(want) {
			t.Errorf("expected entry on %s, got %s", want.Format(time.DateOnly), entries[0].Date.Format(time.DateOnly))
		}
		if entries[0].Amount != -85000 {
			t.Errorf("expected amount -85000, got %d", entries[0].Amount)
		}
	})

	t.Run("keeps_past_entries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		ob, err := svc.CreateObligation(weeklyObligation(1000))
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateObligation(ob.ID, weeklyObligation(1500))
		testutil.AssertNoError(t, err)

		entries := recurringEntries(t, db, ob.ID)
		if len(entries) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(entries))
		}
		for _, e := range entries {
			want := int64(-1500)
			if !e.Date.After(today.Today()) {
				want = -1000
			}
			if e.Amount != want {
				t.Errorf("entry %s: expected %d, got %d", e.Date.Format(time.DateOnly), want, e.Amount)
			}
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db, today)

		_, err := svc.UpdateObligation("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", monthlyObligation(1, 1))
		testutil.AssertAppError(t, err, "OBLIGATION_NOT_FOUND")
	})
}

func TestDeleteObligation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRecurringService(db, today)

	ob, err := svc.CreateObligation(weeklyObligation(1000))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteObligation(ob.ID))

	entries := recurringEntries(t, db, ob.ID)
	if len(entries) != 2 {
		t.Fatalf("expected the 2 past Mondays to remain, got %d", len(entries))
	}

	_, err = svc.GetObligationByID(ob.ID)
	testutil.AssertAppError(t, err, "OBLIGATION_NOT_FOUND")

	res, err := svc.Generate()
	testutil.AssertNoError(t, err)
	if len(res.Added) != 0 {
		t.Errorf("expected deleted obligation to generate nothing, got %d", len(res.Added))
	}

	err = svc.DeleteObligation(ob.ID)
	testutil.AssertAppError(t, err, "OBLIGATION_NOT_FOUND")
}

func TestRecurringSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRecurringService(db, today)

	_, err := svc.CreateObligation(monthlyObligation(25, 80000))
	testutil.AssertNoError(t, err)
	_, err = svc.CreateObligation(weeklyObligation(1000))
	testutil.AssertNoError(t, err)

	summary, err := svc.Summary(calendar.NewYearMonth(2026, time.March))
	testutil.AssertNoError(t, err)

	if summary.Total != 85000 {
		t.Errorf("expected total 85000, got %d", summary.Total)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(summary.Items))
	}
	if n := len(summary.Items[1].Occurrences); n != 5 {
		t.Errorf("expected 5 weekly occurrences, got %d", n)
	}

	obligations, err := svc.GetObligations()
	testutil.AssertNoError(t, err)
	if len(obligations) != 2 || obligations[0].Name != "Rent" {
		t.Errorf("expected obligations in creation order, got %+v", obligations)
	}
}
