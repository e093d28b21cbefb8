package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

var (
	configInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("MSG_PORT", "8080")
		viper.SetDefault("MSG_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("MSG_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("MSG_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("MSG_JWT_SECRET", "secret")
		viper.SetDefault("MSG_JWT_EXPIRE", "24h")
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "postgres")
		viper.SetDefault("POSTGRES_SSLMODE", "disable")
		viper.AutomaticEnv()

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("MSG_HOST"),
				Port:         viper.GetString("MSG_PORT"),
				ReadTimeout:  viper.GetDuration("MSG_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("MSG_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("MSG_IDLE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetString("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("MSG_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("MSG_JWT_EXPIRE"),
			},
		}
	})

	return configInstance, nil
}
