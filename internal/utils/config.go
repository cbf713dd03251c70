package utils

import (
	"time"
)

// Config holds the runtime settings of the site backend.
type Config struct {
	Port        string
	DatabaseURL string

	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	AdminTokenTTL     time.Duration

	StorageDriver string
	UploadDir     string
	BaseURL       string

	S3Endpoint  string
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	CDNBaseURL  string

	MaxUploadBytes int
	GalleryCache   time.Duration
	StaticDir      string

	LogLevel  string
	LogFormat string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	connString := GetEnv("DATABASE_URL", "")
	if connString == "" {
		connString = "postgres://" + GetEnv("POSTGRES_USER", "postgres") + ":" +
			GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			GetEnv("POSTGRES_HOST", "localhost") + ":" +
			GetEnv("POSTGRES_PORT", "5432") + "/" +
			GetEnv("POSTGRES_DB", "educator") + "?sslmode=disable"
	}

	return Config{
		Port:        GetEnv("PORT", "3001"),
		DatabaseURL: connString,

		AdminPassword:     GetEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         GetEnv("JWT_SECRET", ""),
		AdminTokenTTL:     time.Duration(GetEnvInt("ADMIN_TOKEN_TTL_HOURS", 12)) * time.Hour,

		StorageDriver: GetEnv("STORAGE_DRIVER", "local"),
		UploadDir:     GetEnv("UPLOAD_DIR", "uploads"),
		BaseURL:       GetEnv("BASE_URL", ""),

		S3Endpoint:  GetEnv("S3_ENDPOINT", ""),
		S3Bucket:    GetEnv("S3_BUCKET", "files"),
		S3Region:    GetEnv("S3_REGION", ""),
		S3AccessKey: GetEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey: GetEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNBaseURL:  GetEnv("CDN_BASE_URL", ""),

		MaxUploadBytes: GetEnvInt("MAX_UPLOAD_MB", 10) * 1024 * 1024,
		GalleryCache:   time.Duration(GetEnvInt("GALLERY_CACHE_SECONDS", 30)) * time.Second,
		StaticDir:      GetEnv("STATIC_DIR", ""),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "text"),
	}
}

// AdminConfigured reports whether any admin secret is set.
func (c Config) AdminConfigured() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}
