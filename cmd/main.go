package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/internal/config"
	"github.com/fluxoapp/fluxo/internal/database"
	"github.com/fluxoapp/fluxo/internal/functions"
	"github.com/fluxoapp/fluxo/internal/handlers"
	"github.com/fluxoapp/fluxo/internal/routes"
	"github.com/fluxoapp/fluxo/utils"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:5173" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// ScheduleRateRefresh раз в час обновляет таблицу курсов базовой валюты,
// чтобы дашборды не ждали первый запрос после протухания кэша.
func ScheduleRateRefresh() {
	c := cron.New()
	_, err := c.AddFunc("0 * * * *", func() {
		if err := utils.RefreshRateTable(analytics.FallbackCurrency); err != nil {
			log.Printf("Ошибка обновления курсов валют: %v", err)
		} else {
			log.Println("Курсы валют обновлены.")
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи для курсов валют: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используем переменные окружения: %v", err)
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}

	pool, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	utils.SetRatesAPIURL(cfg.RatesAPIURL)
	ScheduleRateRefresh()

	// сервер функций живёт на отдельном порту, как прежние облачные функции
	funcLog := logrus.New()
	funcLog.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	svc := functions.NewService(pool, cfg, funcLog)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.FunctionsPort)
		funcLog.WithField("addr", addr).Info("сервер функций запускается")
		if err := http.ListenAndServe(addr, routes.SetupFunctionsRouter(svc)); err != nil {
			funcLog.WithError(err).Fatal("сервер функций остановился")
		}
	}()

	if os.Getenv("GENERATE_DEMO_DATA") == "true" {
		seedDemoData(pool)
	}

	r := gin.Default()
	r.Use(CORSMiddleware())

	r.POST("/api/register", handlers.RegisterHandler(pool, cfg.JWTSecret))
	r.POST("/api/login", handlers.LoginHandler(pool, cfg.JWTSecret))

	api := r.Group("/api", handlers.AuthMiddleware(cfg.JWTSecret))
	{
		api.POST("/transactions", handlers.CreateTransactionHandler(pool))
		api.GET("/transactions", handlers.GetTransactionsHandler(pool))
		api.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
		api.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
		api.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

		api.POST("/categories", handlers.CreateCategoryHandler(pool))
		api.GET("/categories", handlers.GetCategoriesHandler(pool))
		api.PUT("/categories/:id", handlers.UpdateCategoryHandler(pool))
		api.DELETE("/categories/:id", handlers.DeleteCategoryHandler(pool))

		api.POST("/accounts", handlers.CreateAccountHandler(pool))
		api.GET("/accounts", handlers.GetAccountsHandler(pool))
		api.PUT("/accounts/:id", handlers.UpdateAccountHandler(pool))
		api.DELETE("/accounts/:id", handlers.DeleteAccountHandler(pool))

		api.POST("/goals", handlers.CreateGoalHandler(pool))
		api.GET("/goals", handlers.GetGoalsHandler(pool))
		api.PUT("/goals/:id", handlers.UpdateGoalHandler(pool))
		api.DELETE("/goals/:id", handlers.DeleteGoalHandler(pool))
		api.POST("/goals/:id/contribute", handlers.ContributeToGoalHandler(pool))

		api.GET("/settings", handlers.GetSettingsHandler(pool))
		api.PUT("/settings", handlers.UpdateSettingsHandler(pool))

		api.GET("/dashboard/summary", handlers.DashboardSummaryHandler(pool))
		api.GET("/dashboard/cashflow", handlers.CashFlowHandler(pool))
		api.GET("/dashboard/expenses", handlers.ExpenseBreakdownHandler(pool))
		api.GET("/dashboard/subscriptions", handlers.SubscriptionsHandler(pool))
		api.GET("/dashboard/insights", handlers.InsightsHandler(pool))
		api.GET("/dashboard/budgets", handlers.BudgetProgressHandler(pool))
		api.GET("/dashboard/legacy-summary", handlers.LegacySummaryHandler(pool))

		api.POST("/receipts/scan", handlers.ScanReceiptHandler())
	}

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("API запускается на %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// seedDemoData наполняет базу демо-данными для локальной разработки.
func seedDemoData(pool *pgxpool.Pool) {
	log.Println("Генерация демо-данных...")
	utils.GenerateTestUsers(pool, 1)
	// демо-сущности вешаем на первого пользователя
	user, err := database.GetUserByID(pool, 1)
	if err != nil {
		log.Printf("Демо-пользователь не найден: %v", err)
		return
	}
	categories := utils.GenerateTestCategories(pool, user.ID, 6)
	utils.GenerateTestTransactions(pool, user.ID, categories, 120)
	utils.GenerateTestAccounts(pool, user.ID, 3)
	utils.GenerateTestGoals(pool, user.ID, 2)
	log.Println("Демо-данные готовы.")
}
