package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/models"
)

func CreateUserSettings(pool *pgxpool.Pool, settings *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, base_currency, theme)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		settings.UserID,
		settings.BaseCurrency,
		settings.Theme).Scan(&settings.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании настроек: %v", err)
	}
	return nil
}

// GetUserSettings возвращает настройки пользователя; если их ещё нет,
// возвращаются значения по умолчанию.
func GetUserSettings(pool *pgxpool.Pool, userID int) (*models.UserSettings, error) {
	query := `
		SELECT id, user_id, base_currency, theme
		FROM user_settings
		WHERE user_id = $1`

	settings := &models.UserSettings{}
	err := pool.QueryRow(context.Background(), query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.BaseCurrency,
		&settings.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.UserSettings{UserID: userID, BaseCurrency: "USD", Theme: "dark"}, nil
		}
		return nil, fmt.Errorf("ошибка при получении настроек: %v", err)
	}
	return settings, nil
}

func UpdateUserSettings(pool *pgxpool.Pool, settings *models.UserSettings) error {
	query := `
		UPDATE user_settings
		SET base_currency = $1, theme = $2
		WHERE user_id = $3`
	result, err := pool.Exec(context.Background(), query,
		settings.BaseCurrency,
		settings.Theme,
		settings.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления настроек: %v", err)
	}
	if result.RowsAffected() == 0 {
		return CreateUserSettings(pool, settings)
	}
	return nil
}
