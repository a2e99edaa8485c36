package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/models"
)

func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, description, currency, is_recurring, recurring_day, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.Currency,
		transaction.IsRecurring,
		transaction.RecurringDay,
		transaction.Date).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}
	return nil
}

func GetTransactionByID(pool *pgxpool.Pool, transactionID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, type, description, currency, is_recurring, recurring_day, transaction_date, created_at
		FROM transactions
		WHERE id = $1`

	transaction := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query, transactionID).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.CategoryID,
		&transaction.Amount,
		&transaction.Type,
		&transaction.Description,
		&transaction.Currency,
		&transaction.IsRecurring,
		&transaction.RecurringDay,
		&transaction.Date,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("транзакция с ID %d не найдена", transactionID)
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}

	return transaction, nil
}

// GetTransactionsByPeriod возвращает транзакции пользователя за период,
// границы включительно.
func GetTransactionsByPeriod(pool *pgxpool.Pool, userID int, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, type, description, currency, is_recurring, recurring_day, transaction_date, created_at
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3
		ORDER BY transaction_date DESC, id DESC`

	rows, err := pool.Query(context.Background(), query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций за период: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type, &t.Description,
			&t.Currency, &t.IsRecurring, &t.RecurringDay, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func GetAllTransactions(pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, type, description, currency, is_recurring, recurring_day, transaction_date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, id DESC`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка транзакций: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type, &t.Description,
			&t.Currency, &t.IsRecurring, &t.RecurringDay, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// UpdateTransaction обновляет запись целиком, частичных изменений нет.
func UpdateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, type = $3, description = $4, currency = $5, is_recurring = $6, recurring_day = $7, transaction_date = $8
		WHERE id = $9 AND user_id = $10`

	result, err := pool.Exec(context.Background(), query,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.Currency,
		transaction.IsRecurring,
		transaction.RecurringDay,
		transaction.Date,
		transaction.ID,
		transaction.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления транзакции: %v", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("транзакция с ID %d не найдена", transaction.ID)
	}
	return nil
}

func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %v", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("транзакция с ID %d не найдена", transactionID)
	}
	return nil
}
