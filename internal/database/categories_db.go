package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/models"
)

func CreateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, monthly_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		category.UserID,
		category.Name,
		category.Type,
		category.MonthlyLimit).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении категории: %v", err)
	}
	return nil
}

func GetCategoryByID(pool *pgxpool.Pool, categoryID int) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, monthly_limit, created_at
		FROM categories
		WHERE id = $1`

	category := &models.Category{}
	err := pool.QueryRow(context.Background(), query, categoryID).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Type,
		&category.MonthlyLimit,
		&category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("категория с ID %d не найдена", categoryID)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %v", err)
	}
	return category, nil
}

func GetAllCategories(pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, monthly_limit, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий: %v", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.MonthlyLimit, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func UpdateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, monthly_limit = $3
		WHERE id = $4 AND user_id = $5`

	result, err := pool.Exec(context.Background(), query,
		category.Name,
		category.Type,
		category.MonthlyLimit,
		category.ID,
		category.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления категории: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("категория с ID %d не найдена", category.ID)
	}
	return nil
}

// DeleteCategory удаляет категорию; ссылающиеся транзакции не трогаются,
// осиротевшая ссылка отображается как "Uncategorized".
func DeleteCategory(pool *pgxpool.Pool, categoryID, userID int) error {
	query := `
		DELETE FROM categories
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления категории: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("категория с ID %d не найдена", categoryID)
	}
	return nil
}
