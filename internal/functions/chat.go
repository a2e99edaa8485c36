package functions

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/fluxoapp/fluxo/internal/database"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
const openAIChatURL = "https://api.openai.com/v1/chat/completions"
const geminiModel = "gemini-1.5-flash"

const advisorPrompt = `You are Fluxo AI, a helpful and friendly financial advisor.
Your goal is to help the user manage their money, stay within budget, and understand their spending habits.

Here is the user's current financial context:
%s

Instructions:
1. Be concise and encouraging.
2. Use the context provided to give specific answers.
3. If the user asks about something not in the context, refer to general financial advice but mention you only explicitly see the data provided.
4. Format your response in Markdown if needed.`

// ChatAdvisorHandler — прокси к LLM. Собирает финансовый контекст
// пользователя, добавляет его в системный промпт и спрашивает модель.
// Предпочитаем Gemini, при отсутствии ключа падаем на OpenAI.
func (s *Service) ChatAdvisorHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromRequest(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Message == "" {
		s.writeError(w, http.StatusBadRequest, "Сообщение обязательно")
		return
	}

	context, err := s.gatherContext(userID)
	if err != nil {
		s.Log.WithError(err).Error("не удалось собрать финансовый контекст")
		s.writeError(w, http.StatusInternalServerError, "Не удалось собрать контекст")
		return
	}
	systemPrompt := fmt.Sprintf(advisorPrompt, context)

	var reply string
	switch {
	case s.Config.GoogleAPIKey != "":
		reply, err = s.askGemini(systemPrompt, body.Message)
	case s.Config.OpenAIAPIKey != "":
		reply, err = s.askOpenAI(systemPrompt, body.Message)
	default:
		s.writeError(w, http.StatusServiceUnavailable, "ИИ-советник не настроен: нет API-ключа")
		return
	}
	if err != nil {
		s.Log.WithError(err).Error("запрос к LLM не удался")
		s.writeError(w, http.StatusBadGateway, "Модель не ответила")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// gatherContext формирует текстовую сводку: итоги месяца, строки бюджетов и
// последние пять транзакций.
func (s *Service) gatherContext(userID int) (string, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := database.GetTransactionsByPeriod(s.Pool, userID, start, end)
	if err != nil {
		return "", err
	}
	categories, err := database.GetAllCategories(s.Pool, userID)
	if err != nil {
		return "", err
	}

	var totalIncome, totalSpent float64
	spending := make(map[int]float64)
	for _, tx := range transactions {
		switch tx.Type {
		case "income":
			totalIncome += tx.Amount
		case "expense":
			totalSpent += tx.Amount
			if tx.CategoryID != nil {
				spending[*tx.CategoryID] += tx.Amount
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Current Financial Context (Month to Date):\n")
	fmt.Fprintf(&sb, "- Total Income: %.2f\n", totalIncome)
	fmt.Fprintf(&sb, "- Total Expenses: %.2f\n", totalSpent)
	fmt.Fprintf(&sb, "- Net Cash Flow: %.2f\n", totalIncome-totalSpent)

	sb.WriteString("\nBudgets:\n")
	for _, cat := range categories {
		if cat.Type != "expense" || cat.MonthlyLimit <= 0 {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %.2f / %.2f\n", cat.Name, spending[cat.ID], cat.MonthlyLimit)
	}

	sb.WriteString("\nRecent Transactions (Last 5):\n")
	for i, tx := range transactions {
		if i >= 5 {
			break
		}
		currency := tx.Currency
		if currency == "" {
			currency = "USD"
		}
		fmt.Fprintf(&sb, "- %s: %s (%.2f %s)\n", tx.Date.Format("2006-01-02"), tx.Description, tx.Amount, currency)
	}

	return sb.String(), nil
}

func (s *Service) askGemini(systemPrompt, userMessage string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, geminiModel, s.Config.GoogleAPIKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{
				{"text": systemPrompt + "\n\nUser Question: " + userMessage},
			}},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	resp, err := s.Client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("ошибка при запросе к Gemini: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("ошибка при разборе ответа Gemini: %v", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("ошибка Gemini: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("пустой ответ Gemini")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func (s *Service) askOpenAI(systemPrompt, userMessage string) (string, error) {
	payload := map[string]interface{}{
		"model": "gpt-3.5-turbo",
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userMessage},
		},
		"temperature": 0.7,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, openAIChatURL, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.OpenAIAPIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка при запросе к OpenAI: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("ошибка при разборе ответа OpenAI: %v", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("пустой ответ OpenAI")
	}
	return result.Choices[0].Message.Content, nil
}
