package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/models"
)

// UpsertIntegration сохраняет зашифрованные ключи биржи, по одному набору
// на пару (пользователь, провайдер).
func UpsertIntegration(pool *pgxpool.Pool, integration *models.Integration) error {
	query := `
		INSERT INTO user_integrations (user_id, provider, encrypted_api_key, encrypted_api_secret)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET encrypted_api_key = EXCLUDED.encrypted_api_key, encrypted_api_secret = EXCLUDED.encrypted_api_secret
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		integration.UserID,
		integration.Provider,
		integration.EncryptedAPIKey,
		integration.EncryptedAPISecret).Scan(&integration.ID, &integration.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении интеграции: %v", err)
	}
	return nil
}

func GetIntegration(pool *pgxpool.Pool, userID int, provider string) (*models.Integration, error) {
	query := `
		SELECT id, user_id, provider, encrypted_api_key, encrypted_api_secret, created_at
		FROM user_integrations
		WHERE user_id = $1 AND provider = $2`

	integration := &models.Integration{}
	err := pool.QueryRow(context.Background(), query, userID, provider).Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Provider,
		&integration.EncryptedAPIKey,
		&integration.EncryptedAPISecret,
		&integration.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("интеграция %s не подключена", provider)
		}
		return nil, fmt.Errorf("ошибка при получении интеграции: %v", err)
	}
	return integration, nil
}

func DeleteIntegration(pool *pgxpool.Pool, userID int, provider string) error {
	query := `
		DELETE FROM user_integrations
		WHERE user_id = $1 AND provider = $2`
	result, err := pool.Exec(context.Background(), query, userID, provider)
	if err != nil {
		return fmt.Errorf("ошибка удаления интеграции: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("интеграция %s не подключена", provider)
	}
	return nil
}
