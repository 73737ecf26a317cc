package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(in services.TransactionInput) (*models.Transaction, error)
	getTransactionsFn    func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn func(id string) (*models.Transaction, error)
	updateTransactionFn  func(id string, in services.TransactionInput) (*models.Transaction, error)
	deleteTransactionFn  func(id string) error
	settleSplitFn        func(id, person string) (*services.SplitSettlement, error)
}

func (m *mockTransactionService) CreateTransaction(in services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(page, filter)
	}
	page.Defaults()
	resp := pagination.NewPageResponse([]models.Transaction{}, page, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, in services.TransactionInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) SettleSplit(id, person string) (*services.SplitSettlement, error) {
	if m.settleSplitFn != nil {
		return m.settleSplitFn(id, person)
	}
	return &services.SplitSettlement{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/:id", handler.GetTransactionByID)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	r.POST("/transactions/:id/splits/settle", handler.SettleSplit)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.TransactionInput
		svc := &mockTransactionService{
			createTransactionFn: func(in services.TransactionInput) (*models.Transaction, error) {
				got = in
				return &models.Transaction{Base: models.Base{ID: testID}, Amount: -in.Amount, Type: in.Type}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2026-03-14","category":"Electronics","amount":60000,"type":"expense","payment_method":"credit","card_id":"`+testID+`","splits":[{"person":"Aki","amount":20000}]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Date.Equal(calendar.Date(2026, time.March, 14)) {
			t.Errorf("expected date 2026-03-14, got %s", got.Date)
		}
		if got.PaymentMethod != models.PaymentMethodCredit || got.CardID == nil || *got.CardID != testID {
			t.Errorf("expected credit purchase on %s, got %+v", testID, got)
		}
		if len(got.Splits) != 1 || got.Splits[0].Person != "Aki" {
			t.Errorf("expected split for Aki, got %+v", got.Splits)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != -60000 {
			t.Errorf("expected amount -60000, got %v", tx["amount"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"category":"Food","amount":0,"type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"category":"Food","amount":100,"type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid payment method", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"category":"Food","amount":100,"type":"expense","payment_method":"cheque"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"date":"14/03/2026","category":"Food","amount":100,"type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		var gotPage pagination.PageRequest
		var gotFilter services.TransactionFilter
		svc := &mockTransactionService{
			getTransactionsFn: func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotPage, gotFilter = page, filter
				resp := pagination.NewPageResponse([]models.Transaction{}, pagination.PageRequest{Page: 1, PageSize: 10}, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?page=2&page_size=10&from_date=2026-03-01&type=expense&category=Food&settled=false&hide_settlement=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("unexpected page %+v", gotPage)
		}
		if gotFilter.FromDate == nil || gotFilter.Type == nil || *gotFilter.Category != "Food" {
			t.Errorf("unexpected filter %+v", gotFilter)
		}
		if gotFilter.Settled == nil || *gotFilter.Settled || !gotFilter.HideSettlement {
			t.Errorf("expected unsettled filter with drawdowns hidden, got %+v", gotFilter)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/42", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockTransactionService{
			getTransactionByIDFn: func(string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/"+testID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("rejects drawdown entries", func(t *testing.T) {
		svc := &mockTransactionService{
			updateTransactionFn: func(string, services.TransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrSettlementNotEditable
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+testID, `{"category":"Food","amount":100,"type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SETTLEMENT_NOT_EDITABLE")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID string
		svc := &mockTransactionService{
			updateTransactionFn: func(id string, in services.TransactionInput) (*models.Transaction, error) {
				gotID = id
				return &models.Transaction{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+testID, `{"category":"Food","amount":100,"type":"expense"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testID {
			t.Errorf("expected id %s, got %s", testID, gotID)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	deleted := ""
	svc := &mockTransactionService{
		deleteTransactionFn: func(id string) error {
			deleted = id
			return nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(svc))

	rec := doRequest(r, "DELETE", "/transactions/"+testID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != testID {
		t.Errorf("expected %s to be deleted, got %q", testID, deleted)
	}
}

func TestTransactionHandler_SettleSplit(t *testing.T) {
	t.Run("returns recovery", func(t *testing.T) {
		svc := &mockTransactionService{
			settleSplitFn: func(id, person string) (*services.SplitSettlement, error) {
				return &services.SplitSettlement{
					Transaction: &models.Transaction{Base: models.Base{ID: id}},
					Recovery:    &models.Transaction{Amount: 2000, Description: person},
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/"+testID+"/splits/settle", `{"person":"Aki"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		recovery := parseJSON(t, rec)["recovery"].(map[string]interface{})
		if recovery["amount"].(float64) != 2000 {
			t.Errorf("expected recovery 2000, got %v", recovery["amount"])
		}
	})

	t.Run("returns 404 when share missing", func(t *testing.T) {
		svc := &mockTransactionService{
			settleSplitFn: func(string, string) (*services.SplitSettlement, error) {
				return nil, apperrors.ErrSplitShareNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions/"+testID+"/splits/settle", `{"person":"Ren"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SPLIT_SHARE_NOT_FOUND")
	})

	t.Run("returns 400 without person", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions/"+testID+"/splits/settle", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
