package utils

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	Env         string `mapstructure:"ENV"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// AI planner / embeddings
	RemotePlannerEnabled bool   `mapstructure:"REMOTE_PLANNER_ENABLED"`
	EmbeddingProvider    string `mapstructure:"EMBEDDING_PROVIDER"`
	GeminiAPIKey         string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel          string `mapstructure:"GEMINI_MODEL"`
	OpenAIAPIKey         string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel          string `mapstructure:"OPENAI_MODEL"`

	// Catalog providers; empty keys switch the clients to bundled sample data
	GolfAPIURL        string `mapstructure:"GOLF_API_URL"`
	GolfAPIKey        string `mapstructure:"GOLF_API_KEY"`
	HotelAPIURL       string `mapstructure:"HOTEL_API_URL"`
	HotelAPIKey       string `mapstructure:"HOTEL_API_KEY"`
	RestaurantAPIURL  string `mapstructure:"RESTAURANT_API_URL"`
	RestaurantAPIKey  string `mapstructure:"RESTAURANT_API_KEY"`
	ExperienceAPIURL  string `mapstructure:"EXPERIENCE_API_URL"`
	ExperienceAPIKey  string `mapstructure:"EXPERIENCE_API_KEY"`
}

// Global variable to store configuration
var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REMOTE_PLANNER_ENABLED", true)
	viper.SetDefault("EMBEDDING_PROVIDER", "openai")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OPENAI_MODEL", "text-embedding-3-small")

	// Every remaining key needs a registered default, even an empty one:
	// AutomaticEnv only resolves keys viper already knows about, so an
	// unregistered key would ignore its environment variable entirely.
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("GOLF_API_URL", "")
	viper.SetDefault("GOLF_API_KEY", "")
	viper.SetDefault("HOTEL_API_URL", "")
	viper.SetDefault("HOTEL_API_KEY", "")
	viper.SetDefault("RESTAURANT_API_URL", "")
	viper.SetDefault("RESTAURANT_API_KEY", "")
	viper.SetDefault("EXPERIENCE_API_URL", "")
	viper.SetDefault("EXPERIENCE_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return AppConfig.Env == "production"
}
