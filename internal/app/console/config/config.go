package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultEnv         = "local"
	defaultRunAddress  = "localhost:8080"
	defaultConfigDir   = ".siteadmin"
	defaultSessionFile = "session.db"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	RunAddress    string `mapstructure:"run_address"`
	PublicAPIURL  string `mapstructure:"public_api_url"`
	AdminAPIURL   string `mapstructure:"admin_api_url"`
	ConfigDir     string `mapstructure:"config_dir"`
	SessionDBPath string `mapstructure:"session_db_path"`
	CookieSecure  bool   `mapstructure:"cookie_secure"`
}

// MustLoad загружает конфигурацию консоли из окружения и .env файла
func MustLoad() *Config {
	// Загружаем .env файл если существует
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("COOKIE_SECURE", true)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	sessionDBPath := viper.GetString("SESSION_DB_PATH")
	if sessionDBPath == "" {
		sessionDBPath = filepath.Join(configDir, defaultSessionFile)
	}

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		RunAddress:    viper.GetString("RUN_ADDRESS"),
		PublicAPIURL:  normalizeBaseURL(viper.GetString("PUBLIC_API_URL")),
		AdminAPIURL:   normalizeBaseURL(viper.GetString("ADMIN_API_URL")),
		ConfigDir:     configDir,
		SessionDBPath: sessionDBPath,
		CookieSecure:  viper.GetBool("COOKIE_SECURE"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.PublicAPIURL == "" {
		return fmt.Errorf("public_api_url не может быть пустым")
	}
	if c.AdminAPIURL == "" {
		return fmt.Errorf("admin_api_url не может быть пустым")
	}
	if c.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}
	return nil
}

// normalizeBaseURL убирает завершающий слэш, чтобы пути клеились единообразно
func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
