package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

func CreateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		account.UserID = currentUserID(c)
		if account.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Название счёта обязательно"})
			return
		}
		if account.Currency == "" {
			account.Currency = "USD"
		}

		if err := database.CreateAccount(pool, &account); err != nil {
			log.Printf("Ошибка при добавлении счёта: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить счёт"})
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

func GetAccountsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := database.GetAllAccounts(pool, currentUserID(c))
		if err != nil {
			log.Printf("Ошибка при получении счетов: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить счета"})
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

func UpdateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID счёта"})
			return
		}

		var account models.Account
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		account.ID = accountID
		account.UserID = currentUserID(c)

		if err := database.UpdateAccount(pool, &account); err != nil {
			log.Printf("Ошибка при обновлении счёта: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить счёт"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func DeleteAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID счёта"})
			return
		}

		if err := database.DeleteAccount(pool, accountID, currentUserID(c)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Счёт не найден"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Счёт удалён"})
	}
}
