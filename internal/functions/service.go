package functions

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fluxoapp/fluxo/internal/config"
)

// Service — обработчики второго HTTP-сервера с "функциями": ИИ-советник и
// интеграция с биржей. Держится отдельно от основного API, как и в облаке.
type Service struct {
	Pool   *pgxpool.Pool
	Config *config.Config
	Log    *logrus.Logger
	Client *http.Client
}

func NewService(pool *pgxpool.Pool, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		Pool:   pool,
		Config: cfg,
		Log:    log,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.Log.WithError(err).Error("не удалось записать ответ")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// userIDFromRequest проверяет Bearer-токен основного API и возвращает
// идентификатор пользователя.
func (s *Service) userIDFromRequest(r *http.Request) (int, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return 0, false
	}

	token, err := jwt.Parse(header[len(prefix):], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.Config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(userID), true
}
