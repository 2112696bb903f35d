package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Security SecurityConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver   string
	MongoURI string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SecurityConfig struct {
	BcryptCost     int
	JWTSecret      string
	JWTExpiryHours int
}

// LoadConfig reads path (a .env file) when it exists and lets real
// environment variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "cinema-users")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "cinema")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("JWT_EXPIRY_HOURS", 24)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			MongoURI: v.GetString("MONGO_URI"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Security: SecurityConfig{
			BcryptCost:     v.GetInt("BCRYPT_COST"),
			JWTSecret:      v.GetString("JWT_SECRET"),
			JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
	}

	switch config.Database.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.Database.Driver)
	}

	if config.Security.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}
