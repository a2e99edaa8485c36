package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ConnectDB открывает пул по переданной строке подключения. Пустая строка —
// сборка адреса из отдельных переменных окружения (DB_USER и остальных).
func ConnectDB(connStr string) (*pgxpool.Pool, error) {
	// Загрузить переменные из .env; без файла работаем на чистом окружении
	_ = godotenv.Load()

	if connStr == "" {
		connStr = fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"), 5432, os.Getenv("DB_NAME"))
	}

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
