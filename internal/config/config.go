package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Shopify  ShopifyConfig
	QRImage  QRImageConfig
}

type ServerConfig struct {
	Port   string
	AppEnv string // development / production
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	DSN      string
	LogLevel string // silent / error / warn / info
}

// ShopifyConfig Shopify 应用凭证与 Admin API 参数
type ShopifyConfig struct {
	AppURL     string // 应用公网地址，扫码链接基于它生成
	APIKey     string
	APISecret  string // 用于校验 App Bridge session token
	APIVersion string
	Timeout    time.Duration
	RetryCount int
}

type QRImageConfig struct {
	Size int // PNG 边长 (px)
}

// IsDevelopment 是否开发环境
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

// Load 读取 .env 与环境变量
// .env 不存在时忽略，环境变量优先
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:   v.GetString("SERVER_PORT"),
			AppEnv: v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Shopify: ShopifyConfig{
			AppURL:     strings.TrimRight(v.GetString("SHOPIFY_APP_URL"), "/"),
			APIKey:     v.GetString("SHOPIFY_API_KEY"),
			APISecret:  v.GetString("SHOPIFY_API_SECRET"),
			APIVersion: v.GetString("SHOPIFY_API_VERSION"),
			Timeout:    v.GetDuration("SHOPIFY_TIMEOUT"),
			RetryCount: v.GetInt("SHOPIFY_RETRY_COUNT"),
		},
		QRImage: QRImageConfig{
			Size: v.GetInt("QR_IMAGE_SIZE"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("SHOPIFY_API_VERSION", "2025-01")
	v.SetDefault("SHOPIFY_TIMEOUT", 20*time.Second)
	v.SetDefault("SHOPIFY_RETRY_COUNT", 2)
	v.SetDefault("QR_IMAGE_SIZE", 256)
}

// ValidateDatabase 仅校验数据库配置 (migrate / session 子命令)
func (c *Config) ValidateDatabase() error {
	if c.Database.DSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	return nil
}

// Validate 校验 serve 所需的全部配置
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if c.Shopify.AppURL == "" {
		return errors.New("SHOPIFY_APP_URL is required")
	}
	u, err := url.Parse(c.Shopify.AppURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SHOPIFY_APP_URL is not an absolute url: %q", c.Shopify.AppURL)
	}
	if c.Shopify.APIKey == "" {
		return errors.New("SHOPIFY_API_KEY is required")
	}
	if c.Shopify.APISecret == "" {
		return errors.New("SHOPIFY_API_SECRET is required")
	}
	if c.QRImage.Size <= 0 {
		return fmt.Errorf("QR_IMAGE_SIZE must be positive, got %d", c.QRImage.Size)
	}
	return nil
}
