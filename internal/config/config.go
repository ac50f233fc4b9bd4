package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend environments. Each selects one of the configured base URLs.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvAlternate   = "alternate"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
		RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second"`
		RateLimitBurst     int      `mapstructure:"rate_limit_burst"`
	} `mapstructure:"server"`

	Backend BackendConfig `mapstructure:"backend"`

	Station struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"station"`

	Dashboard struct {
		PollSeconds int `mapstructure:"poll_seconds"`
	} `mapstructure:"dashboard"`

	Theme struct {
		Default string `mapstructure:"default"`
	} `mapstructure:"theme"`

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`

	InvoiceStorage StorageConfig `mapstructure:"invoice_storage"`

	Razorpay struct {
		KeyID     string `mapstructure:"key_id"`
		KeySecret string `mapstructure:"key_secret"`
	} `mapstructure:"razorpay"`
}

// BackendConfig describes the remote REST backend. BaseURL, once resolved,
// is the only value the remote client reads.
type BackendConfig struct {
	Env            string `mapstructure:"env"`
	BaseURL        string `mapstructure:"base_url"`
	DevelopmentURL string `mapstructure:"development_url"`
	ProductionURL  string `mapstructure:"production_url"`
	AlternateURL   string `mapstructure:"alternate_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// StorageConfig points at an S3-compatible bucket used to archive invoices.
type StorageConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// ResolveBaseURL picks the backend URL: an explicit base_url wins, then the
// URL configured for the selected environment.
func (b BackendConfig) ResolveBaseURL() string {
	if b.BaseURL != "" {
		return strings.TrimRight(b.BaseURL, "/")
	}
	var url string
	switch strings.ToLower(b.Env) {
	case EnvProduction:
		url = b.ProductionURL
	case EnvAlternate:
		url = b.AlternateURL
	default:
		url = b.DevelopmentURL
	}
	return strings.TrimRight(url, "/")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type", "X-Request-ID"})
	v.SetDefault("server.rate_limit_per_second", 10.0)
	v.SetDefault("server.rate_limit_burst", 20)
	v.SetDefault("backend.env", EnvDevelopment)
	v.SetDefault("backend.development_url", "http://localhost:5000/api")
	v.SetDefault("backend.production_url", "https://amarneerfuelstationbackend.onrender.com/api")
	v.SetDefault("backend.alternate_url", "https://amarneerfuelstationbackend.vercel.app/api")
	v.SetDefault("backend.timeout_seconds", 30)
	v.SetDefault("station.name", "Amarneer Fuel Station")
	v.SetDefault("dashboard.poll_seconds", 10)
	v.SetDefault("theme.default", "light")
	v.SetDefault("redis.host", "redis")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("invoice_storage.region", "auto")
	v.SetDefault("invoice_storage.prefix", "invoices/")
}

// Load reads configs/config.yaml (optional), the environment and .env.
func Load() *Config {
	return LoadFile("configs/config.yaml")
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found at %s, using defaults", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	applyEnvOverrides(&cfg)
	cfg.Backend.BaseURL = cfg.Backend.ResolveBaseURL()
	if cfg.Theme.Default != "dark" {
		cfg.Theme.Default = "light"
	}
	return &cfg
}

// applyEnvOverrides reads the short variable names the deployment scripts use.
func applyEnvOverrides(cfg *Config) {
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Backend.Env = env
	}
	if url := os.Getenv("FUEL_API_URL"); url != "" {
		cfg.Backend.BaseURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if poll := os.Getenv("DASHBOARD_POLL_SECONDS"); poll != "" {
		if n, err := strconv.Atoi(poll); err == nil && n > 0 {
			cfg.Dashboard.PollSeconds = n
		}
	}

	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	if host := os.Getenv("REDIS_SERVICE_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_SERVICE_PORT"); port != "" {
		cfg.Redis.Port = port
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	if keyID := os.Getenv("RAZORPAY_KEY_ID"); keyID != "" {
		cfg.Razorpay.KeyID = keyID
	}
	if keySecret := os.Getenv("RAZORPAY_KEY_SECRET"); keySecret != "" {
		cfg.Razorpay.KeySecret = keySecret
	}

	if bucket := os.Getenv("INVOICE_S3_BUCKET"); bucket != "" {
		cfg.InvoiceStorage.Bucket = bucket
		cfg.InvoiceStorage.Enabled = true
	}
	if endpoint := os.Getenv("INVOICE_S3_ENDPOINT"); endpoint != "" {
		cfg.InvoiceStorage.Endpoint = endpoint
	}
	if key := os.Getenv("INVOICE_S3_ACCESS_KEY"); key != "" {
		cfg.InvoiceStorage.AccessKey = key
	}
	if secret := os.Getenv("INVOICE_S3_SECRET_KEY"); secret != "" {
		cfg.InvoiceStorage.SecretKey = secret
	}
}
