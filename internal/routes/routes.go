package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fluxoapp/fluxo/internal/functions"
)

// SetupFunctionsRouter собирает маршруты сервера функций. Имена совпадают с
// прежними облачными функциями, чтобы клиент не заметил переезда.
func SetupFunctionsRouter(svc *functions.Service) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/functions/chat-financial-advisor", svc.ChatAdvisorHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/functions/connect-binance", svc.ConnectBinanceHandler).Methods("POST", "OPTIONS")

	r.Use(corsMiddleware)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
