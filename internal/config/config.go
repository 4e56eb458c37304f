package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	WebhookURL  string
	SQLitePath  string
	SessionName string
	LogLevel    string

	WebhookTimeout time.Duration
	MediaTimeout   time.Duration

	SendRate  float64
	SendBurst int
}

// Load reads configuration from the environment, with a .env file as an
// optional local override. Missing or invalid values fall back to defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "3000"),
		WebhookURL:     getenv("WEBHOOK_URL", "http://bot:5000/webhook"),
		SQLitePath:     getenv("SQLITE_PATH", "./data/whatsapp.db"),
		SessionName:    getenv("SESSION_NAME", "default"),
		LogLevel:       getenv("LOG_LEVEL", "INFO"),
		WebhookTimeout: getenvSeconds("WEBHOOK_TIMEOUT_SECONDS", 30),
		MediaTimeout:   getenvSeconds("MEDIA_TIMEOUT_SECONDS", 30),
		SendRate:       getenvFloat("SEND_RATE", 0.5),
		SendBurst:      getenvInt("SEND_BURST", 1),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getenvInt(key, fallback)) * time.Second
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
