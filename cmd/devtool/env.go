package main

import (
	"fmt"
	"net/url"
	"os"
)

// getEnv returns the value of an environment variable or a fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// buildDBURL constructs a postgres connection string from DB_URL or the
// individual DB_* environment variables, matching the app's config defaults.
func buildDBURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "recetario")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
}

// redactPassword masks the password portion of a connection string for logging.
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}
