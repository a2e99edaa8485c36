package utils_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fluxoapp/fluxo/utils"
)

func TestRateTableUsesConfiguredEndpoint(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"bitcoin":{"usd":90000},"eur":{"usd":1.08},"usd":{"usd":1}}`)
	}))
	defer server.Close()

	utils.SetRatesAPIURL(server.URL)
	defer utils.SetRatesAPIURL("")

	if err := utils.RefreshRateTable("USD"); err != nil {
		t.Fatalf("ошибка обновления курсов: %v", err)
	}
	if gotQuery == "" {
		t.Fatal("запрос не дошёл до настроенного эндпоинта")
	}

	rates := utils.GetRateTable("USD")
	if rates["BTC"] != 90000 {
		t.Errorf("курс BTC: получили %v, хотели 90000", rates["BTC"])
	}
	if rates["EUR"] != 1.08 {
		t.Errorf("курс EUR: получили %v, хотели 1.08", rates["EUR"])
	}
}
