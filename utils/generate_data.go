package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/models"
)

var demoCurrencies = []string{"USD", "EUR", "GBP", "BRL", "BTC"}

func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) {
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 10), // Генерация случайного пароля
			Name:     gofakeit.Name(),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
	}
}

func GenerateTestCategories(pool *pgxpool.Pool, userID, numCategories int) []models.Category {
	var categories []models.Category
	for i := 0; i < numCategories; i++ {
		category := &models.Category{
			UserID: userID,
			Name:   gofakeit.Word(),
			Type:   randomCategoryType(),
		}
		if category.Type == "expense" && rand.Intn(2) == 0 {
			category.MonthlyLimit = gofakeit.Price(100, 1000)
		}
		if err := database.CreateCategory(pool, category); err != nil {
			log.Fatalf("ошибка при добавлении категории: %v", err)
		}
		categories = append(categories, *category)
	}
	return categories
}

func randomCategoryType() string {
	if rand.Intn(2) == 0 {
		return "expense"
	}
	return "income"
}

func GenerateTestTransactions(pool *pgxpool.Pool, userID int, categories []models.Category, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		transaction := &models.Transaction{
			UserID:      userID,
			Amount:      gofakeit.Price(1, 1000), // Генерация случайной суммы
			Description: gofakeit.Company(),
			Currency:    demoCurrencies[rand.Intn(len(demoCurrencies))],
			Date:        gofakeit.DateRange(time.Now().AddDate(0, -2, 0), time.Now()),
		}
		if len(categories) > 0 {
			category := categories[rand.Intn(len(categories))]
			transaction.CategoryID = &category.ID
			transaction.Type = category.Type
		} else {
			transaction.Type = randomCategoryType()
		}
		// примерно каждая пятая расходная запись — подписка
		if transaction.Type == "expense" && rand.Intn(5) == 0 {
			transaction.IsRecurring = true
			transaction.RecurringDay = rand.Intn(28) + 1
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}

func GenerateTestAccounts(pool *pgxpool.Pool, userID, numAccounts int) {
	types := []string{"checking", "savings", "cash", "credit", "investment", "crypto"}
	for i := 0; i < numAccounts; i++ {
		account := &models.Account{
			UserID:   userID,
			Name:     gofakeit.Company(),
			Type:     types[rand.Intn(len(types))],
			Currency: demoCurrencies[rand.Intn(len(demoCurrencies))],
			Balance:  gofakeit.Price(0, 10000),
			Color:    gofakeit.HexColor(),
		}
		if err := database.CreateAccount(pool, account); err != nil {
			log.Fatalf("ошибка при добавлении счёта: %v", err)
		}
	}
}

func GenerateTestGoals(pool *pgxpool.Pool, userID, numGoals int) {
	for i := 0; i < numGoals; i++ {
		target := gofakeit.Price(500, 10000)
		goal := &models.Goal{
			UserID:        userID,
			Name:          gofakeit.BeerName(),
			TargetAmount:  target,
			CurrentAmount: gofakeit.Price(0, target),
			Color:         gofakeit.HexColor(),
		}
		if err := database.CreateGoal(pool, goal); err != nil {
			log.Fatalf("ошибка при добавлении копилки: %v", err)
		}
	}
}
