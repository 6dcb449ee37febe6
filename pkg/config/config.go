// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort int
	RunLocal bool

	ProductsTable string
	OrdersTable   string
	MembersTable  string
	UsersTable    string
	OrdersQueue   string

	JWTSecret string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		RunLocal: getEnv("RUN_LOCAL", "") == "true",

		ProductsTable: getEnv("PRODUCTS_TABLE", "ensemble-products"),
		OrdersTable:   getEnv("ORDERS_TABLE", "ensemble-orders"),
		MembersTable:  getEnv("MEMBERS_TABLE", "ensemble-members"),
		UsersTable:    getEnv("USERS_TABLE", "ensemble-users"),
		OrdersQueue:   getEnv("ORDERS_QUEUE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
