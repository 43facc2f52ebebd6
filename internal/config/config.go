package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	JWTSecret    string
	JWTExpiresIn time.Duration

	FrontendURL string

	UploadDir   string
	MaxFileSize int64

	StorageBackend string
	MinIO          MinIOConfig

	RateLimitWindow   time.Duration
	RateLimitMax      int
	RateLimitUseRedis bool
	RedisAddr         string
	RedisPassword     string

	// Legacy-compat switches: the original deployment left blog creation and
	// upload deletion unauthenticated. Both default to requiring a token.
	PublicBlogCreate   bool
	PublicUploadDelete bool
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c Config) IsDevelopment() bool {
	return c.Environment != "production"
}

// Load reads configuration from the environment, with an optional .env file
// for local development. DATABASE_URL and JWT_SECRET have no usable defaults
// and are required.
func Load() (Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("JWT_EXPIRES_IN_HOURS", 168)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("MAX_FILE_SIZE", 5242880)
	viper.SetDefault("STORAGE_BACKEND", "disk")
	viper.SetDefault("MINIO_BUCKET", "lawcrusade-uploads")
	viper.SetDefault("RATE_LIMIT_WINDOW_MS", 900000)
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("PUBLIC_BLOG_CREATE", false)
	viper.SetDefault("PUBLIC_UPLOAD_DELETE", false)

	cfg := Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),

		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTExpiresIn: time.Duration(viper.GetInt("JWT_EXPIRES_IN_HOURS")) * time.Hour,

		FrontendURL: viper.GetString("FRONTEND_URL"),

		UploadDir:   viper.GetString("UPLOAD_DIR"),
		MaxFileSize: viper.GetInt64("MAX_FILE_SIZE"),

		StorageBackend: viper.GetString("STORAGE_BACKEND"),
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},

		RateLimitWindow:   time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_MS")) * time.Millisecond,
		RateLimitMax:      viper.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitUseRedis: viper.GetBool("RATE_LIMIT_USE_REDIS"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),

		PublicBlogCreate:   viper.GetBool("PUBLIC_BLOG_CREATE"),
		PublicUploadDelete: viper.GetBool("PUBLIC_UPLOAD_DELETE"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required")
	}
	if cfg.StorageBackend != "disk" && cfg.StorageBackend != "s3" {
		return Config{}, fmt.Errorf("config: unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}
