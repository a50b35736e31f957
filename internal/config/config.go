package config

import (
	"os"

	"dkv2_import/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

type Config struct {
	// RefPrefix is prepended to the raw contract number to form the
	// contract reference (Kennung).
	RefPrefix string
	// Country is written to every creditor; the source data is
	// single-locale.
	Country string
	// LegacyAmounts switches the amount parser to the older script's
	// behavior. See DESIGN.md.
	LegacyAmounts bool

	S3 s3.ConnectionInfo
}

func Init() *Config {
	_ = godotenv.Load()

	return &Config{
		RefPrefix:     getenv("DKV2_REF_PREFIX", "DK-S27-"),
		Country:       getenv("DKV2_COUNTRY", "Deutschland"),
		LegacyAmounts: getenv("DKV2_LEGACY_AMOUNTS", "false") == "true",
		S3: s3.ConnectionInfo{
			Endpoint:  getenv("AWS_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
			SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
			Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
