package config

import (
	"errors"
	"fmt"
	"os"
)

// Config holds all application configuration, built once at startup and
// passed to the components that need it.
type Config struct {
	Addr      string
	Mongo     MongoConfig
	JWTSecret string
	Minio     MinioConfig
}

// MongoConfig contains document store settings.
type MongoConfig struct {
	URI      string
	Database string
}

// MinioConfig contains object storage settings for blog images.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load builds a Config from environment variables with sensible defaults.
// JWT_SECRET has no default; the server must not sign tokens with a
// guessable key.
func Load() (*Config, error) {
	cfg := &Config{
		Addr: ":" + getEnv("PORT", "8080"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "travel_blog"),
		},
		JWTSecret: getEnv("JWT_SECRET", ""),
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "blog-images"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// String masks the secrets so the config can be logged at startup.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, Mongo: %s/%s, Minio: %s/%s, JWTSecret: ***}",
		c.Addr, c.Mongo.URI, c.Mongo.Database, c.Minio.Endpoint, c.Minio.Bucket)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
