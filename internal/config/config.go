package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr         string
	DigitalRiverBase string
	PlatformBase     string
	PlatformToken    string
	AppID            string
	RedisAddr        string
	KafkaBrokers     []string
	ServiceName      string
}

func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8081"),
		DigitalRiverBase: getenv("DR_API_BASE", "https://api.digitalriver.com"),
		PlatformBase:     getenv("PLATFORM_BASE_URL", "http://portal.vtexcommercestable.com.br"),
		PlatformToken:    getenv("PLATFORM_AUTH_TOKEN", ""),
		AppID:            getenv("APP_ID", "digital-river"),
		RedisAddr:        getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:     splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		ServiceName:      getenv("SERVICE_NAME", "payment-connector"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
