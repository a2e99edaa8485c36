package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/fluxoapp/fluxo/models"
)

// RegisterUser создаёт пользователя с bcrypt-хешем пароля и настройками по умолчанию.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err = pool.QueryRow(context.Background(), query, user.Email, string(hashed), user.Name).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	user.Password = ""

	// Настройки по умолчанию: базовая валюта USD
	settings := &models.UserSettings{UserID: user.ID, BaseCurrency: "USD", Theme: "dark"}
	if err := CreateUserSettings(pool, settings); err != nil {
		return fmt.Errorf("ошибка создания настроек пользователя: %v", err)
	}
	return nil
}

// AuthenticateUser проверяет email и пароль, возвращает пользователя без хеша.
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	query := `SELECT id, email, password, name, created_at FROM users WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("неверный пароль")
	}
	user.Password = ""
	return user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}
	return user, nil
}
