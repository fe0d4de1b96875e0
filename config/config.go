package config

import (
	"os"
	"time"
)

type Config struct {
	HttpPort     string
	AllowOrigins string

	// Dialogue schema
	SchemaSource string // "file" or "bucket"
	SchemaPath   string

	// Database
	DBDriver   string // "postgres" or "sqlite"
	Host       string
	User       string
	Password   string
	DBName     string
	Port       string
	SQLitePath string

	// Redis
	RedisURL string

	// S3/MinIO
	BucketEndpoint  string
	BucketAccessID  string
	BucketAccessKey string
	BucketName      string
	BucketRegion    string
	UseSSL          bool   // MinIO: false, S3: true
	StorageType     string // "minio" or "s3"
	SchemaObjectKey string

	// others
	FetchTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		HttpPort:        os.Getenv("PORT"),
		AllowOrigins:    os.Getenv("ALLOWORIGINS"),
		SchemaSource:    getEnv("SCHEMA_SOURCE", "file"),
		SchemaPath:      getEnv("SCHEMA_PATH", "dialogue_schema.json"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		Host:            os.Getenv("PG_HOST"),
		User:            os.Getenv("PG_USER"),
		Password:        os.Getenv("PG_PASSWORD"),
		DBName:          os.Getenv("PG_DB"),
		Port:            os.Getenv("PG_PORT"),
		SQLitePath:      getEnv("SQLITE_PATH", "contacts.db"),
		RedisURL:        os.Getenv("REDIS_URL"),
		BucketEndpoint:  os.Getenv("BUCKET_ENDPOINT"),
		BucketAccessID:  os.Getenv("BUCKET_ACCESS_ID"),
		BucketAccessKey: os.Getenv("BUCKET_ACCESS_KEY"),
		BucketName:      os.Getenv("BUCKET_NAME"),
		BucketRegion:    os.Getenv("BUCKET_REGION"),
		UseSSL:          os.Getenv("BUCKET_USE_SSL") == "true",
		StorageType:     getEnv("STORAGE_TYPE", "minio"),
		SchemaObjectKey: getEnv("SCHEMA_OBJECT_KEY", "dialogue_schema.json"),
		FetchTimeout:    15 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
