package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath      string
	GeminiKey   string
	GeminiModel string
	Debug       bool
}

// Load reads configuration from the environment, after sourcing an
// optional .env file. A missing .env is not an error.
func Load() (cfg Config, err error) {
	_ = godotenv.Load()

	cfg.DBPath = getenv("CM_DB_PATH", "checkmotor.sqlite")
	cfg.GeminiModel = getenv("CM_GEMINI_MODEL", "gemini-2.5-flash")
	cfg.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Debug = os.Getenv("CM_DEBUG") != ""

	if cfg.GeminiKey == "" {
		err = errors.New("missing environment variable GEMINI_API_KEY")
	}

	return
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
