package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration. Values come from config.yaml in
// the working directory (optional) with TOKO_-prefixed environment overrides.
type Config struct {
	Addr string `mapstructure:"addr"`

	AdminPassword       string `mapstructure:"admin_password"`
	AdminPasswordBcrypt string `mapstructure:"admin_password_bcrypt"`
	JWTSecret           string `mapstructure:"jwt_secret"`

	LowStockThreshold int `mapstructure:"low_stock_threshold"`

	DatabaseURL string        `mapstructure:"database_url"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	CartTTL     time.Duration `mapstructure:"cart_ttl"`

	KafkaBrokers string `mapstructure:"kafka_brokers"`
	KafkaTopic   string `mapstructure:"kafka_topic"`

	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`

	SeedDemoData bool `mapstructure:"seed_demo_data"`

	AlertFrom        string `mapstructure:"alert_from"`
	AlertTo          string `mapstructure:"alert_to"`
	SMTPServer       string `mapstructure:"smtp_server"`
	SMTPPort         string `mapstructure:"smtp_port"`
	SMTPUser         string `mapstructure:"smtp_user"`
	SMTPPassword     string `mapstructure:"smtp_pass"`
	SMTPAuthDisabled bool   `mapstructure:"smtp_auth_disabled"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("low_stock_threshold", 10)
	v.SetDefault("cart_ttl", 24*time.Hour)
	v.SetDefault("kafka_topic", "stock-movements")
	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 30)
	v.SetDefault("seed_demo_data", true)

	v.SetEnvPrefix("TOKO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
