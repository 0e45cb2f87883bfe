package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Redis   RedisConfig
	Session SessionConfig
	Search  SearchConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
}

// Location returns the configured time zone, UTC when it cannot be loaded
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs in production
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret             string
	Expiry             time.Duration
	CookieName         string
	CSRFKey            string
	// host[:port] values accepted in Origin and Referer of form posts
	CSRFTrustedOrigins []string
}

type SearchConfig struct {
	Debounce time.Duration
}

type HTTPConfig struct {
	AllowedOrigins     []string
	LoginRatePerMinute int
	TrustProxy         bool
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "Europe/Zagreb")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api/")
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_EXPIRY", "24h")
	viper.SetDefault("SESSION_COOKIE", "bookfast_session")
	viper.SetDefault("SEARCH_DEBOUNCE", "300ms")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")
	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	viper.SetDefault("TRUST_PROXY", false)
	viper.SetDefault("CSRF_TRUSTED_ORIGINS", "localhost:8080")
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// The .env file is optional, environment variables are enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	apiTimeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		apiTimeout = 10 * time.Second
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	debounce, err := time.ParseDuration(viper.GetString("SEARCH_DEBOUNCE"))
	if err != nil {
		debounce = 300 * time.Millisecond
	}

	secret := viper.GetString("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	csrfKey := viper.GetString("CSRF_KEY")
	if len(csrfKey) != 32 {
		return nil, errors.New("CSRF_KEY must be exactly 32 bytes")
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: apiTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:             secret,
			Expiry:             sessionExpiry,
			CookieName:         viper.GetString("SESSION_COOKIE"),
			CSRFKey:            csrfKey,
			CSRFTrustedOrigins: splitList(viper.GetString("CSRF_TRUSTED_ORIGINS")),
		},
		Search: SearchConfig{
			Debounce: debounce,
		},
		HTTP: HTTPConfig{
			AllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			LoginRatePerMinute: viper.GetInt("LOGIN_RATE_PER_MINUTE"),
			TrustProxy:         viper.GetBool("TRUST_PROXY"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
