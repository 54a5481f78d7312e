package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type QuoteAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type NewsAPI struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	CacheMaxItems  int64  `mapstructure:"cache_max_items"`
	CacheTTLSec    int    `mapstructure:"cache_ttl_seconds"`
}

type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type Retention struct {
	SweepCron string `mapstructure:"sweep_cron"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	QuoteAPI   QuoteAPI   `mapstructure:"quote_api"`
	NewsAPI    NewsAPI    `mapstructure:"news_api"`
	Auth       Auth       `mapstructure:"auth"`
	Retention  Retention  `mapstructure:"retention"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("quote_api.base_url", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("news_api.base_url", "https://newsdata.io/api/1/latest")
	viper.SetDefault("news_api.timeout_seconds", 10)
	viper.SetDefault("news_api.cache_max_items", 64)
	viper.SetDefault("news_api.cache_ttl_seconds", 300)
	viper.SetDefault("retention.sweep_cron", "0 2 * * *")
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// external providers and auth
	_ = viper.BindEnv("quote_api.base_url", "QUOTE_API_BASE_URL")
	_ = viper.BindEnv("news_api.api_key", "NEWSDATA_API_KEY")
	_ = viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
