package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings, loaded from the environment.
type Config struct {
	ServerPort        int
	DataDir           string
	StaticDir         string
	JWTSecretKey      string
	AdminPassword     string
	AdminPasswordHash string
}

// defaultAdminPassword matches the shared secret the tournament clients were
// shipped with; override it (or set ADMIN_PASSWORD_HASH) in any real
// deployment.
const defaultAdminPassword = "hxyz@123456789"

// Load reads configuration from environment variables, optionally seeded
// from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "3002"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "dist"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminPassword == "" && adminHash == "" {
		adminPassword = defaultAdminPassword
	}

	return &Config{
		ServerPort:        port,
		DataDir:           dataDir,
		StaticDir:         staticDir,
		JWTSecretKey:      jwtKey,
		AdminPassword:     adminPassword,
		AdminPasswordHash: adminHash,
	}, nil
}
