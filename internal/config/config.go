package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Firebase
	FirebaseProjectID   string
	FirebaseCredentials string

	// The identity provider caps directory listing at a fixed page size;
	// we do not paginate past it.
	AuthListLimit int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS_PATH", "./serviceAccountKey.json"),

		AuthListLimit: getEnvInt("AUTH_LIST_LIMIT", 1000),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
