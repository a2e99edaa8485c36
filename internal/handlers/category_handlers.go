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

func CreateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		category.UserID = currentUserID(c)
		if category.Type != "income" && category.Type != "expense" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Тип категории должен быть income или expense"})
			return
		}
		if category.MonthlyLimit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Лимит не может быть отрицательным"})
			return
		}

		if err := database.CreateCategory(pool, &category); err != nil {
			log.Printf("Ошибка при добавлении категории: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить категорию"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func GetCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := database.GetAllCategories(pool, currentUserID(c))
		if err != nil {
			log.Printf("Ошибка при получении категорий: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить категории"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID категории"})
			return
		}

		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
			return
		}
		category.ID = categoryID
		category.UserID = currentUserID(c)

		if err := database.UpdateCategory(pool, &category); err != nil {
			log.Printf("Ошибка при обновлении категории: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить категорию"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID категории"})
			return
		}

		if err := database.DeleteCategory(pool, categoryID, currentUserID(c)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Категория удалена"})
	}
}
