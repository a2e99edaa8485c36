package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

// periodFromQuery читает границы периода из query-параметров start и end
// (формат YYYY-MM-DD). Без параметров отдаём текущий месяц.
func periodFromQuery(c *gin.Context) (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if s := c.Query("start"); s != "" {
		if parsed := analytics.ParseLocalDate(s); !parsed.IsZero() {
			start = parsed
		}
	}
	if e := c.Query("end"); e != "" {
		if parsed := analytics.ParseLocalDate(e); !parsed.IsZero() {
			end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	return start, end
}

// validateTransaction проверяет запись целиком; обновление проходит те же
// проверки, что и создание. Сумма всегда положительная, знак несёт тип.
func validateTransaction(transaction *models.Transaction) error {
	if transaction.Type != "income" && transaction.Type != "expense" {
		return errors.New("Тип транзакции должен быть income или expense")
	}
	if transaction.Amount <= 0 {
		return errors.New("Сумма транзакции должна быть больше нуля")
	}
	if transaction.RecurringDay < 0 || transaction.RecurringDay > 31 {
		return errors.New("День списания должен быть в диапазоне 1-31")
	}
	return nil
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		transaction.UserID = currentUserID(c)
		if err := validateTransaction(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if transaction.Date.IsZero() {
			transaction.Date = time.Now()
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			log.Printf("Ошибка при добавлении транзакции: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить транзакцию"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	}
}

func GetTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		// без параметров периода отдаём всю историю
		if c.Query("start") == "" && c.Query("end") == "" {
			transactions, err := database.GetAllTransactions(pool, userID)
			if err != nil {
				log.Printf("Ошибка при получении транзакций: %v\n", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить транзакции"})
				return
			}
			c.JSON(http.StatusOK, transactions)
			return
		}

		start, end := periodFromQuery(c)
		transactions, err := database.GetTransactionsByPeriod(pool, userID, start, end)
		if err != nil {
			log.Printf("Ошибка при получении транзакций за период: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить транзакции"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		transaction, err := database.GetTransactionByID(pool, transactionID)
		if err != nil || transaction.UserID != currentUserID(c) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		transaction.ID = transactionID
		transaction.UserID = currentUserID(c)
		if err := validateTransaction(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := database.UpdateTransaction(pool, &transaction); err != nil {
			log.Printf("Ошибка при обновлении транзакции: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить транзакцию"})
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		if err := database.DeleteTransaction(pool, transactionID, currentUserID(c)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция удалена"})
	}
}
