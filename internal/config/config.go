package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// Backend HTTP
	APIBaseURL     string
	GatewayTimeout time.Duration

	// Canal realtime
	RealtimeURL string

	// Armazenamento local persistente (redis)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Upload de logo
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Prefix    string

	// MercadoPago (verificação do retorno de pagamento)
	MPAccessToken string

	// Superfície local
	ServerPort string
}

func Load() *Config {
	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3001"),
		GatewayTimeout: getDuration("GATEWAY_TIMEOUT", 15*time.Second),

		RealtimeURL: getEnv("REALTIME_URL", "ws://localhost:3001/realtime"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "uturns"),
		S3Prefix:    getEnv("S3_PREFIX", "companylogo/"),

		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),

		ServerPort: getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
