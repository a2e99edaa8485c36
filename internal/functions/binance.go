package functions

import (
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

// ConnectBinanceHandler обслуживает два действия:
// connect — сохранить зашифрованные ключи биржи,
// fetch — расшифровать ключи, подписать запрос и вернуть состояние счёта.
func (s *Service) ConnectBinanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromRequest(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}
	if s.Config.EncryptionKey == "" {
		s.Log.Error("ENCRYPTION_KEY не задан")
		s.writeError(w, http.StatusInternalServerError, "Сервер не настроен: нет ключа шифрования")
		return
	}

	var body struct {
		Action    string `json:"action"`
		APIKey    string `json:"apiKey"`
		APISecret string `json:"apiSecret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Некорректный формат данных")
		return
	}

	switch body.Action {
	case "connect":
		s.connectBinance(w, userID, body.APIKey, body.APISecret)
	case "fetch":
		s.fetchBinanceAccount(w, userID)
	default:
		s.writeError(w, http.StatusBadRequest, "Неизвестное действие")
	}
}

func (s *Service) connectBinance(w http.ResponseWriter, userID int, apiKey, apiSecret string) {
	if apiKey == "" || apiSecret == "" {
		s.writeError(w, http.StatusBadRequest, "Нужны оба ключа")
		return
	}

	encryptedKey, err := Encrypt(apiKey, s.Config.EncryptionKey)
	if err != nil {
		s.Log.WithError(err).Error("не удалось зашифровать API-ключ")
		s.writeError(w, http.StatusInternalServerError, "Ошибка шифрования")
		return
	}
	encryptedSecret, err := Encrypt(apiSecret, s.Config.EncryptionKey)
	if err != nil {
		s.Log.WithError(err).Error("не удалось зашифровать API-секрет")
		s.writeError(w, http.StatusInternalServerError, "Ошибка шифрования")
		return
	}

	integration := &models.Integration{
		UserID:             userID,
		Provider:           "binance",
		EncryptedAPIKey:    encryptedKey,
		EncryptedAPISecret: encryptedSecret,
	}
	if err := database.UpsertIntegration(s.Pool, integration); err != nil {
		s.Log.WithError(err).Error("не удалось сохранить интеграцию")
		s.writeError(w, http.StatusInternalServerError, "Не удалось сохранить ключи")
		return
	}

	s.Log.WithField("user_id", userID).Info("биржа подключена")
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) fetchBinanceAccount(w http.ResponseWriter, userID int) {
	integration, err := database.GetIntegration(s.Pool, userID, "binance")
	if err != nil {
		s.writeError(w, http.StatusNotFound, "Биржа не подключена")
		return
	}

	apiKey, err := Decrypt(integration.EncryptedAPIKey, s.Config.EncryptionKey)
	if err != nil {
		s.Log.WithError(err).Error("не удалось расшифровать API-ключ")
		s.writeError(w, http.StatusInternalServerError, "Ошибка расшифровки")
		return
	}
	apiSecret, err := Decrypt(integration.EncryptedAPISecret, s.Config.EncryptionKey)
	if err != nil {
		s.Log.WithError(err).Error("не удалось расшифровать API-секрет")
		s.writeError(w, http.StatusInternalServerError, "Ошибка расшифровки")
		return
	}

	query := fmt.Sprintf("timestamp=%d", time.Now().UnixMilli())
	signature := SignPayload(apiSecret, query)
	url := fmt.Sprintf("%s/api/v3/account?%s&signature=%s", s.Config.BinanceAPIURL, query, signature)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Не удалось сформировать запрос")
		return
	}
	req.Header.Set("X-MBX-APIKEY", apiKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.WithError(err).Error("запрос к бирже не удался")
		s.writeError(w, http.StatusBadGateway, "Биржа не ответила")
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, "Не удалось прочитать ответ биржи")
		return
	}
	if resp.StatusCode != http.StatusOK {
		s.Log.WithField("status", resp.StatusCode).Error("биржа вернула ошибку")
		s.writeError(w, http.StatusBadGateway, fmt.Sprintf("Ошибка биржи: %s", payload))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
