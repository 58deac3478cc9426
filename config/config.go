package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	DnmaDB DnmaDBConfig
	Redis  RedisConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DnmaDBConfig holds connection parameters for the external DNMA drug
// catalog database. It is a separately administered MySQL instance, so it
// carries its own credentials and a query timeout independent of the
// primary store.
type DnmaDBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	dnmaTimeout, err := time.ParseDuration(viper.GetString("DNMA_DB_QUERY_TIMEOUT"))
	if err != nil {
		dnmaTimeout = 5 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		DnmaDB: DnmaDBConfig{
			Host:         viper.GetString("DNMA_DB_HOST"),
			Port:         viper.GetString("DNMA_DB_PORT"),
			User:         viper.GetString("DNMA_DB_USER"),
			Password:     viper.GetString("DNMA_DB_PASSWORD"),
			Name:         viper.GetString("DNMA_DB_NAME"),
			QueryTimeout: dnmaTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	return config, nil
}
