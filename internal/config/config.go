package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTIssuer        string
	StorageDriver    string // "local" or "s3"
	UploadDir        string
	PublicUploadPath string
	S3               S3Config
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             envOr("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        envOr("JWT_ISSUER", "photodrop"),
		StorageDriver:    envOr("STORAGE_DRIVER", "local"),
		UploadDir:        envOr("UPLOAD_DIR", "uploads"),
		PublicUploadPath: envOr("PUBLIC_UPLOAD_PATH", "/uploads"),
	}

	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.Region = envOr("S3_REGION", "auto")
	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.StorageDriver == "s3" && cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required with STORAGE_DRIVER=s3")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
