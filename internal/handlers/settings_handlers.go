package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
	"github.com/fluxoapp/fluxo/utils"
)

func GetSettingsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := database.GetUserSettings(pool, currentUserID(c))
		if err != nil {
			log.Printf("Ошибка при получении настроек: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить настройки"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func UpdateSettingsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.UserSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		settings.UserID = currentUserID(c)
		if settings.BaseCurrency == "" {
			settings.BaseCurrency = "USD"
		}

		if err := database.UpdateUserSettings(pool, &settings); err != nil {
			log.Printf("Ошибка при обновлении настроек: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить настройки"})
			return
		}

		// смена базовой валюты сразу прогревает кэш курсов
		go utils.RefreshRateTable(settings.BaseCurrency)

		c.JSON(http.StatusOK, settings)
	}
}

// baseCurrencyAndRates достаёт базовую валюту пользователя и таблицу курсов
// к ней. Общий кусок всех дашборд-эндпоинтов.
func baseCurrencyAndRates(pool *pgxpool.Pool, userID int) (string, map[string]float64) {
	base := "USD"
	if settings, err := database.GetUserSettings(pool, userID); err == nil && settings.BaseCurrency != "" {
		base = settings.BaseCurrency
	}
	return base, utils.GetRateTable(base)
}
