package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

func CreateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		goal.UserID = currentUserID(c)
		if goal.TargetAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Целевая сумма должна быть больше нуля"})
			return
		}

		if err := database.CreateGoal(pool, &goal); err != nil {
			log.Printf("Ошибка при добавлении копилки: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить копилку"})
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

func GetGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.GetAllGoals(pool, currentUserID(c))
		if err != nil {
			log.Printf("Ошибка при получении копилок: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить копилки"})
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

func UpdateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID копилки"})
			return
		}

		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		goal.ID = goalID
		goal.UserID = currentUserID(c)

		if err := database.UpdateGoal(pool, &goal); err != nil {
			log.Printf("Ошибка при обновлении копилки: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить копилку"})
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID копилки"})
			return
		}

		if err := database.DeleteGoal(pool, goalID, currentUserID(c)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Копилка не найдена"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Копилка удалена"})
	}
}

// ContributeToGoalHandler пополняет или снимает средства. Сумма применяется
// одним атомарным инкрементом в базе, поэтому параллельные пополнения не
// теряются.
func ContributeToGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID копилки"})
			return
		}

		var body struct {
			Amount float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		if body.Amount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма пополнения не может быть нулевой"})
			return
		}

		goal, err := database.ContributeToGoal(pool, goalID, currentUserID(c), decimal.NewFromFloat(body.Amount))
		if err != nil {
			log.Printf("Ошибка при пополнении копилки: %v\n", err)
			c.JSON(http.StatusConflict, gin.H{"error": "Не удалось пополнить копилку"})
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}
