package services

import (
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/testutil"
)

func TestAssetService(t *testing.T) {
	t.Run("empty_snapshot_created_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, today)

		a, err := svc.GetAssets()
		testutil.AssertNoError(t, err)
		b, err := svc.GetAssets()
		testutil.AssertNoError(t, err)
		if a.ID != b.ID || a.Total() != 0 {
			t.Errorf("expected one empty snapshot, got %s and %s", a.ID, b.ID)
		}
	})

	t.Run("update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, today)

		a, err := svc.UpdateAssets(AssetInput{Savings: 1000, Investment: 2000, TaxAdvantaged: 3000, DryPowder: 4000})
		testutil.AssertNoError(t, err)
		if a.Total() != 10000 {
			t.Errorf("expected total 10000, got %v", a.Total())
		}

		_, err = svc.UpdateAssets(AssetInput{Savings: -1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.UpdateAssets(AssetInput{Investment: math.NaN()})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("transfer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, today)
		testutil.CreateTestAssets(t, db, 100000, 0, 0, 0)

		a, err := svc.Transfer(models.AssetBucketSavings, models.AssetBucketDryPowder, 30000)
		testutil.AssertNoError(t, err)
		if a.Savings != 70000 || a.DryPowder != 30000 {
			t.Errorf("unexpected balances %+v", a)
		}

		_, err = svc.Transfer(models.AssetBucketSavings, models.AssetBucketInvestment, 70001)
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
		_, err = svc.Transfer("cash", models.AssetBucketInvestment, 1)
		testutil.AssertAppError(t, err, "INVALID_BUCKET")
		_, err = svc.Transfer(models.AssetBucketSavings, models.AssetBucketSavings, 1)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.Transfer(models.AssetBucketSavings, models.AssetBucketInvestment, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		stored, err := svc.GetAssets()
		testutil.AssertNoError(t, err)
		if stored.Savings != 70000 {
			t.Errorf("expected failed transfers to change nothing, got savings %v", stored.Savings)
		}
	})
}

func TestCloseMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	seedLedger(t, db)
	testutil.CreateTestAssets(t, db, 1000000, 500000, 0, 0)
	svc := NewAssetService(db, today)
	march := calendar.NewYearMonth(2026, time.March)

	h, err := svc.CloseMonth(march)
	testutil.AssertNoError(t, err)

	if h.YearMonth != "2026-03" || h.CFBalance != 155000 || h.InvestmentTransfer != 40000 {
		t.Errorf("unexpected history %+v", h)
	}
	if h.Savings != 1115000 || h.Investment != 540000 || h.Total != 1655000 {
		t.Errorf("unexpected closing balances %+v", h)
	}
	if !h.RecordedAt.Equal(time.Time(today)) {
		t.Errorf("expected recorded at %v, got %v", time.Time(today), h.RecordedAt)
	}

	assets, err := svc.GetAssets()
	testutil.AssertNoError(t, err)
	if assets.Savings != 1115000 {
		t.Errorf("expected snapshot savings 1115000, got %v", assets.Savings)
	}

	_, err = svc.CloseMonth(march)
	testutil.AssertAppError(t, err, "MONTH_ALREADY_CLOSED")
	testutil.AssertStatus(t, err, http.StatusConflict)

	_, err = svc.CloseMonth(calendar.NewYearMonth(2026, time.April))
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.CloseMonth(calendar.NewYearMonth(2026, time.February))
	testutil.AssertNoError(t, err)

	page, err := svc.GetHistory(pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 {
		t.Fatalf("expected 2 closed months, got %d", page.TotalItems)
	}
	if page.Data[0].YearMonth != "2026-03" || page.Data[1].YearMonth != "2026-02" {
		t.Errorf("expected most recent first, got %s, %s", page.Data[0].YearMonth, page.Data[1].YearMonth)
	}
}

func TestCloseMonth_NetWorthGrowsByCashSurplus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	card := testutil.CreateTestCard(t, db)
	testutil.CreateTestTransaction(t, db, calendar.Date(2026, time.March, 1), "Salary", 100000)
	testutil.CreateTestAssets(t, db, 0, 0, 0, 0)

	recSvc := NewRecurringService(db, today)
	fund := monthlyObligation(10, 30000)
	fund.Name = "Index fund"
	fund.Category = "Investment"
	fund.Type = models.ObligationTypeInvestment
	_, err := recSvc.CreateObligation(fund)
	testutil.AssertNoError(t, err)

	onCard := monthlyObligation(12, 20000)
	onCard.Name = "Card fund"
	onCard.Category = "Investment"
	onCard.Type = models.ObligationTypeFund
	onCard.PaymentMethod = models.PaymentMethodCredit
	onCard.CardID = &card.ID
	_, err = recSvc.CreateObligation(onCard)
	testutil.AssertNoError(t, err)

	h, err := NewAssetService(db, today).CloseMonth(calendar.NewYearMonth(2026, time.March))
	testutil.AssertNoError(t, err)

	if h.CFBalance != 100000 || h.InvestmentTransfer != 30000 {
		t.Errorf("expected cf 100000 and transfer 30000, got %d/%d", h.CFBalance, h.InvestmentTransfer)
	}
	if h.Savings != 70000 || h.Investment != 30000 {
		t.Errorf("expected savings 70000 and investment 30000, got %v/%v", h.Savings, h.Investment)
	}
	if h.Total != 100000 {
		t.Errorf("expected net worth to grow by the cash surplus 100000, got %v", h.Total)
	}
}
