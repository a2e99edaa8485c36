package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fluxoapp/fluxo/internal/handlers"
)

// Невалидные записи отклоняются до обращения к базе, поэтому пул не нужен.
func newTransactionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/transactions", handlers.CreateTransactionHandler(nil))
	r.PUT("/api/transactions/:id", handlers.UpdateTransactionHandler(nil))
	return r
}

func TestCreateTransactionRejectsNonPositiveAmount(t *testing.T) {
	r := newTransactionRouter()

	bodies := []string{
		`{"amount": -100, "type": "expense"}`,
		`{"amount": 0, "type": "income"}`,
		`{"type": "expense"}`,
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("тело %s: получили статус %d, хотели 400", body, w.Code)
		}
	}
}

func TestCreateTransactionRejectsUnknownType(t *testing.T) {
	r := newTransactionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount": 50, "type": "transfer"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("неизвестный тип: получили статус %d, хотели 400", w.Code)
	}
}

func TestUpdateTransactionRevalidates(t *testing.T) {
	r := newTransactionRouter()

	// обновление проходит те же проверки, что и создание
	bodies := []string{
		`{"amount": -100, "type": "expense"}`,
		`{"amount": 50, "type": "transfer"}`,
		`{"amount": 50, "type": "expense", "recurring_day": 40}`,
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/transactions/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("тело %s: получили статус %d, хотели 400", body, w.Code)
		}
	}
}
