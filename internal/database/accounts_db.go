package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/models"
)

func CreateAccount(pool *pgxpool.Pool, account *models.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, type, currency, balance, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		account.UserID,
		account.Name,
		account.Type,
		account.Currency,
		account.Balance,
		account.Color,
		account.Icon).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении счёта: %v", err)
	}
	return nil
}

func GetAccountByID(pool *pgxpool.Pool, accountID int) (*models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, balance, color, icon, created_at
		FROM accounts
		WHERE id = $1`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query, accountID).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.Currency,
		&account.Balance,
		&account.Color,
		&account.Icon,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("счёт с ID %d не найден", accountID)
		}
		return nil, fmt.Errorf("ошибка при получении счёта: %v", err)
	}
	return account, nil
}

func GetAllAccounts(pool *pgxpool.Pool, userID int) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, type, currency, balance, color, icon, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка счетов: %v", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Currency, &a.Balance, &a.Color, &a.Icon, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// UpdateAccount перезаписывает счёт целиком, баланс ведётся вручную.
func UpdateAccount(pool *pgxpool.Pool, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, currency = $3, balance = $4, color = $5, icon = $6
		WHERE id = $7 AND user_id = $8`

	result, err := pool.Exec(context.Background(), query,
		account.Name,
		account.Type,
		account.Currency,
		account.Balance,
		account.Color,
		account.Icon,
		account.ID,
		account.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления счёта: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("счёт с ID %d не найден", account.ID)
	}
	return nil
}

func DeleteAccount(pool *pgxpool.Pool, accountID, userID int) error {
	query := `
		DELETE FROM accounts
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, accountID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления счёта: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("счёт с ID %d не найден", accountID)
	}
	return nil
}
