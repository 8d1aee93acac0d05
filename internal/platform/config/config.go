package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// CORS
	CORSAllowOrigins []string

	// AMQP notification delivery; notifications are disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Optional in-process recurring-expense scheduler.
	EnableRecurringScheduler bool
	RecurringSchedulerHour   int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "taxi.events")
	viper.SetDefault("AMQP_QUEUE", "expense.generated")
	viper.SetDefault("ENABLE_RECURRING_SCHEDULER", false)
	viper.SetDefault("RECURRING_SCHEDULER_HOUR", 6)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")
	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Generated-expense notifications will not be published.")
	}

	cfg.EnableRecurringScheduler = viper.GetBool("ENABLE_RECURRING_SCHEDULER")
	cfg.RecurringSchedulerHour = viper.GetInt("RECURRING_SCHEDULER_HOUR")
	if cfg.RecurringSchedulerHour < 0 || cfg.RecurringSchedulerHour > 23 {
		log.Printf("Warning: Invalid value for RECURRING_SCHEDULER_HOUR (%d). Defaulting to 6.\n", cfg.RecurringSchedulerHour)
		cfg.RecurringSchedulerHour = 6
	}

	return cfg, nil
}
