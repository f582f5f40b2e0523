package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env             string
	HTTPPort        string
	RateRPS         int
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Env:             get("APP_ENV", "dev"),
		HTTPPort:        get("PORT", "3000"),
		RateRPS:         getInt("RATE_RPS", 100),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "*")),
		ShutdownTimeout: getDur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(get(key, ""))
	if err != nil {
		return def
	}
	return n
}

func getDur(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(get(key, ""))
	if err != nil {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
