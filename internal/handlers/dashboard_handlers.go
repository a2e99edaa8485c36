package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/internal/database"
)

// DashboardSummaryHandler собирает верхнюю панель: доходы и расходы периода,
// общий баланс счетов и число активных подписок. Всё в базовой валюте.
func DashboardSummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		base, rates := baseCurrencyAndRates(pool, userID)

		start, end := periodFromQuery(c)
		transactions, err := database.GetTransactionsByPeriod(pool, userID, start, end)
		if err != nil {
			log.Printf("Ошибка при получении транзакций за период: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать сводку"})
			return
		}
		accounts, err := database.GetAllAccounts(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении счетов: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать сводку"})
			return
		}

		allTransactions, err := database.GetAllTransactions(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении транзакций: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать сводку"})
			return
		}
		subscriptions, monthlyTotal := analytics.InferSubscriptions(allTransactions, time.Now(), base, rates)

		income := analytics.TotalByType(transactions, "income", base, rates)
		expense := analytics.TotalByType(transactions, "expense", base, rates)

		c.JSON(http.StatusOK, gin.H{
			"base_currency":       base,
			"income":              income,
			"expense":             expense,
			"net":                 income - expense,
			"total_balance":       analytics.TotalAccountsBalance(accounts, base, rates),
			"subscription_count":  len(subscriptions),
			"subscriptions_total": monthlyTotal,
		})
	}
}

// CashFlowHandler отдаёт дневной ряд доходов и расходов за период.
func CashFlowHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		base, rates := baseCurrencyAndRates(pool, userID)

		start, end := periodFromQuery(c)
		transactions, err := database.GetTransactionsByPeriod(pool, userID, start, end)
		if err != nil {
			log.Printf("Ошибка при получении транзакций за период: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось построить денежный поток"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"base_currency": base,
			"points":        analytics.TotalByDate(transactions, base, rates),
		})
	}
}

// ExpenseBreakdownHandler отдаёт расходы периода, сгруппированные по категориям.
func ExpenseBreakdownHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		start, end := periodFromQuery(c)
		transactions, err := database.GetTransactionsByPeriod(pool, userID, start, end)
		if err != nil {
			log.Printf("Ошибка при получении транзакций за период: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось построить разбивку"})
			return
		}
		categories, err := database.GetAllCategories(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении категорий: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось построить разбивку"})
			return
		}

		c.JSON(http.StatusOK, analytics.ExpenseBreakdown(transactions, categories))
	}
}

// SubscriptionsHandler восстанавливает подписки из повторяющихся расходов.
func SubscriptionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		base, rates := baseCurrencyAndRates(pool, userID)

		transactions, err := database.GetAllTransactions(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении транзакций: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить подписки"})
			return
		}

		subscriptions, monthlyTotal := analytics.InferSubscriptions(transactions, time.Now(), base, rates)
		c.JSON(http.StatusOK, gin.H{
			"base_currency": base,
			"subscriptions": subscriptions,
			"monthly_total": monthlyTotal,
		})
	}
}

// InsightsHandler отдаёт тренд расходов месяц к месяцу и сигнал по бюджетам.
func InsightsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		transactions, err := database.GetAllTransactions(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении транзакций: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать инсайты"})
			return
		}
		categories, err := database.GetAllCategories(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении категорий: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать инсайты"})
			return
		}

		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"trend":  analytics.SpendingTrend(transactions, now),
			"budget": analytics.CheckBudgets(transactions, categories, now),
		})
	}
}

// BudgetProgressHandler отдаёт прогресс по каждой категории с лимитом.
func BudgetProgressHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		transactions, err := database.GetAllTransactions(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении транзакций: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать прогресс бюджетов"})
			return
		}
		categories, err := database.GetAllCategories(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении категорий: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось собрать прогресс бюджетов"})
			return
		}

		c.JSON(http.StatusOK, analytics.BudgetProgress(transactions, categories, time.Now()))
	}
}

// ScanReceiptHandler извлекает сумму, дату и описание из распознанного
// текста чека. OCR выполняется на клиенте, сюда приходит уже текст.
func ScanReceiptHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Текст чека обязателен"})
			return
		}

		fields := analytics.ExtractReceiptFields(body.Text)
		c.JSON(http.StatusOK, fields)
	}
}

// LegacySummaryHandler — сводка доход/расход прямо из SQL, без конвертации.
// Остаётся для старых клиентов мобильного приложения.
func LegacySummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		summary, err := database.GetIncomeExpenseSummary(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении сводки: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить сводку"})
			return
		}
		expenses, err := database.GetCategoryWiseExpenses(pool, userID)
		if err != nil {
			log.Printf("Ошибка при получении расходов по категориям: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить расходы"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": summary, "category_expenses": expenses})
	}
}
