package config

type Config struct {
	ServerPort    int    `env:"SERVER_PORT" envDefault:"8080"`
	FunctionsPort int    `env:"FUNCTIONS_PORT" envDefault:"8090"`
	DatabaseURL   string `env:"DATABASE_URL"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"fluxo-dev-secret"`
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	RatesAPIURL   string `env:"RATES_API_URL" envDefault:"https://api.coingecko.com/api/v3/simple/price"`
	GoogleAPIKey  string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	BinanceAPIURL string `env:"BINANCE_API_URL" envDefault:"https://api.binance.com"`
}
