package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	AssetStoreNone       = "none"
	AssetStoreCloudinary = "cloudinary"
	AssetStoreS3         = "s3"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment             string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins          []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL             string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress       string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey          string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration     time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress      string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	AssetStore              string        `mapstructure:"ASSET_STORE"`
	CloudinaryURL           string        `mapstructure:"CLOUDINARY_URL"`
	S3Bucket                string        `mapstructure:"S3_BUCKET"`
	S3Region                string        `mapstructure:"S3_REGION"`
	S3PublicBaseURL         string        `mapstructure:"S3_PUBLIC_BASE_URL"`
	FirebaseCredentialsFile string        `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	SMTPHost                string        `mapstructure:"SMTP_HOST"`
	SMTPPort                int           `mapstructure:"SMTP_PORT"`
	SMTPUsername            string        `mapstructure:"SMTP_USERNAME"`
	SMTPPassword            string        `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom                string        `mapstructure:"SMTP_FROM"`
	ExpirySweepInterval     time.Duration `mapstructure:"EXPIRY_SWEEP_INTERVAL"`
	BidRateLimit            float64       `mapstructure:"BID_RATE_LIMIT"`
	BidRateBurst            int           `mapstructure:"BID_RATE_BURST"`
	AdminUsername           string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword           string        `mapstructure:"ADMIN_PASSWORD"`
	AdminEmail              string        `mapstructure:"ADMIN_EMAIL"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error, environment variables alone are enough.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Set defaults for non-sensitive config. Every key needs one so that
	// AutomaticEnv can pick it up without a config file.
	v.SetDefault("ENVIRONMENT", EnvironmentDevelopment)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_SECRET_KEY", "")
	v.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	v.SetDefault("REDIS_SERVER_ADDRESS", "localhost:6379")
	v.SetDefault("ASSET_STORE", AssetStoreNone)
	v.SetDefault("CLOUDINARY_URL", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("EXPIRY_SWEEP_INTERVAL", "5m")
	v.SetDefault("BID_RATE_LIMIT", 1.0)
	v.SetDefault("BID_RATE_BURST", 5)
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_EMAIL", "")

	// Prefer environment variables over config file
	v.AutomaticEnv()

	// Load config file
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err = v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) && !errors.Is(err, os.ErrNotExist) {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config into struct
	if err = v.UnmarshalExact(&config); err != nil {
		return config, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(config.TokenSecretKey) < 32 {
		return fmt.Errorf("TOKEN_SECRET_KEY must be at least 32 characters")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.ExpirySweepInterval <= 0 {
		return fmt.Errorf("EXPIRY_SWEEP_INTERVAL must be positive")
	}
	if config.BidRateLimit <= 0 || config.BidRateBurst <= 0 {
		return fmt.Errorf("BID_RATE_LIMIT and BID_RATE_BURST must be positive")
	}

	switch config.AssetStore {
	case AssetStoreNone:
	case AssetStoreCloudinary:
		if config.CloudinaryURL == "" {
			return fmt.Errorf("CLOUDINARY_URL is required when ASSET_STORE is %q", AssetStoreCloudinary)
		}
	case AssetStoreS3:
		if config.S3Bucket == "" || config.S3Region == "" {
			return fmt.Errorf("S3_BUCKET and S3_REGION are required when ASSET_STORE is %q", AssetStoreS3)
		}
	default:
		return fmt.Errorf("unsupported ASSET_STORE %q", config.AssetStore)
	}

	if config.AdminUsername != "" && config.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_USERNAME is set")
	}

	return nil
}

// EmailEnabled reports whether SMTP delivery is configured.
func (config Config) EmailEnabled() bool {
	return config.SMTPHost != "" && config.SMTPFrom != ""
}
