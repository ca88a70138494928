package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Market       MarketConfig       `mapstructure:"market"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	CORS         CORSConfig         `mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type MarketConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`  // 单个请求超时（秒）
	RequestDelayMS int    `mapstructure:"request_delay_ms"` // 相邻请求发起间隔（毫秒）
	RefreshMinutes int    `mapstructure:"refresh_minutes"`  // 定时刷新周期（分钟）
}

type SubscriptionConfig struct {
	Plan         string  `mapstructure:"plan"`
	PriceUSD     float64 `mapstructure:"price_usd"`
	DurationDays int     `mapstructure:"duration_days"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	// 检查 config.local.yaml 是否存在
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Market.TimeoutSeconds <= 0 {
		cfg.Market.TimeoutSeconds = 10
	}
	if cfg.Market.RequestDelayMS <= 0 {
		cfg.Market.RequestDelayMS = 100
	}
	if cfg.Market.RefreshMinutes <= 0 {
		cfg.Market.RefreshMinutes = 5
	}
	if cfg.Subscription.Plan == "" {
		cfg.Subscription.Plan = "premium"
	}
	if cfg.Subscription.DurationDays <= 0 {
		cfg.Subscription.DurationDays = 30
	}
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 72
	}
}
