package database

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/net/context"
)

// GetIncomeExpenseSummary возвращает суммы доходов и расходов пользователя
// за текущий календарный месяц. Конвертация валют здесь не выполняется,
// сводка используется для текстового контекста AI-советника.
func GetIncomeExpenseSummary(pool *pgxpool.Pool, userID int) (map[string]float64, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1
		AND DATE_TRUNC('month', transaction_date) = DATE_TRUNC('month', CURRENT_DATE)`
	var totalIncome, totalExpense float64
	err := pool.QueryRow(context.Background(), query, userID).Scan(&totalIncome, &totalExpense)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении доходов и расходов: %v", err)
	}
	return map[string]float64{
		"income":  totalIncome,
		"expense": totalExpense,
	}, nil
}

// GetCategoryWiseExpenses возвращает расходы текущего месяца по категориям,
// по убыванию суммы.
func GetCategoryWiseExpenses(pool *pgxpool.Pool, userID int) ([]map[string]interface{}, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized') AS category, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.type = 'expense'
		AND DATE_TRUNC('month', t.transaction_date) = DATE_TRUNC('month', CURRENT_DATE)
		GROUP BY c.name
		ORDER BY total DESC`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении расходов по категориям: %v", err)
	}
	defer rows.Close()

	var expenses []map[string]interface{}
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		expenses = append(expenses, map[string]interface{}{
			"category": category,
			"total":    total,
		})
	}
	return expenses, nil
}
