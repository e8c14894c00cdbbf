package config

import (
	"os"
	"strconv"
)

// AWSConfig holds the S3 artifact-storage settings. All four values must
// be present for uploads to be enabled.
type AWSConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

func (c AWSConfig) Configured() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.Region != "" && c.Bucket != ""
}

type AppConfig struct {
	Port         string
	Environment  string
	ChromePath   string
	GeminiAPIKey string
	AWS          AWSConfig
	// RateLimitPerMinute applies to the general limiter; the per-endpoint
	// limiters keep their own budgets.
	RateLimitPerMinute int
}

func GetAWSConfig() AWSConfig {
	return AWSConfig{
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Region:    getEnv("AWS_REGION", ""),
		Bucket:    getEnv("AWS_S3_BUCKET", ""),
	}
}

func GetAppConfig() AppConfig {
	rate, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	return AppConfig{
		Port:               getEnv("PORT", "8081"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		ChromePath:         getEnv("CHROME_PATH", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		AWS:                GetAWSConfig(),
		RateLimitPerMinute: rate,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
