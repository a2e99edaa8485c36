package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal" // Для точных денежных значений
	"github.com/fluxoapp/fluxo/models"
)

// CreateGoal добавляет новую копилку в базу данных
func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, target_date, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Color,
		goal.Icon).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении копилки: %v", err)
	}
	return nil
}

// GetGoalByID извлекает копилку по ID
func GetGoalByID(pool *pgxpool.Pool, goalID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, color, icon, created_at
		FROM savings_goals
		WHERE id = $1`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, goalID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.Color,
		&goal.Icon,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("копилка с ID %d не найдена", goalID)
		}
		return nil, fmt.Errorf("ошибка при получении копилки: %v", err)
	}
	return goal, nil
}

// GetAllGoals извлекает все копилки пользователя
func GetAllGoals(pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, color, icon, created_at
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении копилок: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
			&goal.TargetDate, &goal.Color, &goal.Icon, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// UpdateGoal обновляет информацию о копилке
func UpdateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		UPDATE savings_goals
		SET name = $1, target_amount = $2, target_date = $3, color = $4, icon = $5
		WHERE id = $6 AND user_id = $7`
	result, err := pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.TargetDate,
		goal.Color,
		goal.Icon,
		goal.ID,
		goal.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления копилки: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("копилка с ID %d не найдена", goal.ID)
	}
	return nil
}

// DeleteGoal удаляет копилку по ID
func DeleteGoal(pool *pgxpool.Pool, goalID, userID int) error {
	query := `
		DELETE FROM savings_goals
		WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, goalID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления копилки: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("копилка с ID %d не найдена", goalID)
	}
	return nil
}

// ContributeToGoal изменяет накопленную сумму атомарным инкрементом на стороне
// базы: две параллельные операции не теряют друг друга. Сумма может быть
// отрицательной (снятие), но остаток не опускается ниже нуля.
func ContributeToGoal(pool *pgxpool.Pool, goalID, userID int, amount decimal.Decimal) (*models.Goal, error) {
	query := `
		UPDATE savings_goals
		SET current_amount = current_amount + $1
		WHERE id = $2 AND user_id = $3 AND current_amount + $1 >= 0
		RETURNING id, user_id, name, target_amount, current_amount, target_date, color, icon, created_at`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, amount, goalID, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.Color,
		&goal.Icon,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("копилка с ID %d не найдена или недостаточно средств", goalID)
		}
		return nil, fmt.Errorf("ошибка при пополнении копилки: %v", err)
	}
	return goal, nil
}
