package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	ServerAddr        string
	LogLevel          string
	DatabaseDSN       string
	ContextTimeoutSec int

	TokenSecretKey   string
	TokenLifetimeSec int

	StripeSecretKey        string
	StripeWebhookSecret    string
	StripeRequestsPerSec   int
	StripeRequestTimeout   int
	PaymentRetryTimeoutSec int

	MailRelayURL    string
	MailRelayAPIKey string
	MailFromAddress string
	PublicBaseURL   string
}

func ParseFlags() AppConfig {
	// Secrets never live in source, only in the environment or a local .env.
	_ = godotenv.Load()

	const (
		defaultServerAddress     = "localhost:8080"
		defaultLogLevel          = "info"
		defaultDatabaseDSN       = ""
		defaultContextTimeoutSec = 5
		defaultTokenLifetimeSec  = 60 * 60 * 24 // 1 day
		defaultStripeRPS         = 10
		defaultStripeTimeoutSec  = 10
		defaultRetryTimeoutSec   = 30
	)

	config := AppConfig{
		ServerAddr:             defaultServerAddress,
		LogLevel:               defaultLogLevel,
		DatabaseDSN:            defaultDatabaseDSN,
		ContextTimeoutSec:      defaultContextTimeoutSec,
		TokenLifetimeSec:       defaultTokenLifetimeSec,
		StripeRequestsPerSec:   defaultStripeRPS,
		StripeRequestTimeout:   defaultStripeTimeoutSec,
		PaymentRetryTimeoutSec: defaultRetryTimeoutSec,
		PublicBaseURL:          "http://localhost:8080",
	}

	flag.StringVar(&config.ServerAddr, "a", config.ServerAddr, "address and port to run server")
	flag.StringVar(&config.LogLevel, "ll", config.LogLevel, "logging level")
	flag.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database dsn")
	flag.Parse()

	if envVal := os.Getenv("SERVER_ADDRESS"); envVal != "" {
		config.ServerAddr = envVal
	}
	if envVal := os.Getenv("LOG_LEVEL"); envVal != "" {
		config.LogLevel = envVal
	}
	if envVal := os.Getenv("DATABASE_DSN"); envVal != "" {
		config.DatabaseDSN = envVal
	}
	if envVal := os.Getenv("TOKEN_SECRET_KEY"); envVal != "" {
		config.TokenSecretKey = envVal
	}
	if envVal := os.Getenv("TOKEN_LIFETIME_SEC"); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil {
			config.TokenLifetimeSec = v
		}
	}
	if envVal := os.Getenv("STRIPE_SECRET_KEY"); envVal != "" {
		config.StripeSecretKey = envVal
	}
	if envVal := os.Getenv("STRIPE_WEBHOOK_SECRET"); envVal != "" {
		config.StripeWebhookSecret = envVal
	}
	if envVal := os.Getenv("STRIPE_REQUESTS_PER_SEC"); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil {
			config.StripeRequestsPerSec = v
		}
	}
	if envVal := os.Getenv("MAIL_RELAY_URL"); envVal != "" {
		config.MailRelayURL = envVal
	}
	if envVal := os.Getenv("MAIL_RELAY_API_KEY"); envVal != "" {
		config.MailRelayAPIKey = envVal
	}
	if envVal := os.Getenv("MAIL_FROM_ADDRESS"); envVal != "" {
		config.MailFromAddress = envVal
	}
	if envVal := os.Getenv("PUBLIC_BASE_URL"); envVal != "" {
		config.PublicBaseURL = envVal
	}

	return config
}
