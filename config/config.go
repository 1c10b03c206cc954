package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"shaka/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"

	defaultServiceName        = "shaka-api"
	defaultMaxRequestBodySize = "100KB"
	defaultReadTimeout        = 15 * time.Second
	defaultReadHeaderTimeout  = 5 * time.Second
	defaultWriteTimeout       = 30 * time.Second
	defaultIdleTimeout        = 60 * time.Second
)

type Config struct {
	Env       EnvConfig       `json:"env"`
	HTTP      HTTPConfig      `json:"http"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rateLimit"`
	Redis     RedisConfig     `json:"redis"`
	Database  DatabaseConfig  `json:"database"`
}

type EnvConfig struct {
	Env         string `json:"env"`
	ServiceName string `json:"serviceName"`
	Debug       bool   `json:"debug"`
	Log         Log    `json:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty"`
	Level  string `json:"level"`
}

type HTTPConfig struct {
	Port               int      `json:"port"`
	MaxRequestBodySize string   `json:"maxRequestBodySize"`
	TrustedProxies     []string `json:"trustedProxies"`
	Timeouts           Timeouts `json:"timeouts"`
}

type Timeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
}

// CORSConfig holds the exact origins allowed to read cross-origin responses.
type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins"`
}

type RateLimitConfig struct {
	Window time.Duration `json:"window"`
	Max    int           `json:"max"`
	Store  string        `json:"store"`
}

type RedisConfig struct {
	URL string `json:"url"`
}

type DatabaseConfig struct {
	URL         string   `json:"url"`
	ReplicaURLs []string `json:"replicaUrls"`
}

// IsProduction reports whether NODE_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env.Env == EnvProduction
}

// rawEnv is the environment as received, before coercion. Every field is a
// string so that a bad value becomes a validation violation instead of a
// decode error that would hide the remaining problems.
type rawEnv struct {
	NodeEnv             string `koanf:"NODE_ENV" validate:"oneof=development test production"`
	Port                string `koanf:"PORT" validate:"posint"`
	FrontAPIBaseURL     string `koanf:"FRONT_API_BASE_URL"`
	RateLimitWindowMS   string `koanf:"RATE_LIMIT_WINDOW_MS" validate:"posint"`
	RateLimitMax        string `koanf:"RATE_LIMIT_MAX" validate:"posint"`
	RateLimitStore      string `koanf:"RATE_LIMIT_STORE" validate:"oneof=memory redis"`
	RedisURL            string `koanf:"REDIS_URL" validate:"required_if=RateLimitStore redis,omitempty,url"`
	DatabaseURL         string `koanf:"DATABASE_URL" validate:"required,dburl"`
	DatabaseReplicaURLs string `koanf:"DATABASE_REPLICA_URLS" validate:"dburllist"`
	LogLevel            string `koanf:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	HTTPMaxBodySize     string `koanf:"HTTP_MAX_BODY_SIZE" validate:"required,bytesize"`
	TrustedProxies      string `koanf:"TRUSTED_PROXIES" validate:"cidrlist"`
	ServiceName         string `koanf:"SERVICE_NAME" validate:"required"`
}

var defaults = map[string]any{
	"NODE_ENV":             EnvDevelopment,
	"PORT":                 "3000",
	"FRONT_API_BASE_URL":   "",
	"RATE_LIMIT_WINDOW_MS": "60000",
	"RATE_LIMIT_MAX":       "100",
	"RATE_LIMIT_STORE":     RateLimitStoreMemory,
	"HTTP_MAX_BODY_SIZE":   defaultMaxRequestBodySize,
	"TRUSTED_PROXIES":      "",
	"SERVICE_NAME":         defaultServiceName,
}

// New loads .env files, reads the process environment and validates it.
func New() (*Config, error) {
	if err := loadDotEnv(os.Getenv("NODE_ENV")); err != nil {
		return nil, err
	}

	return load(os.Environ)
}

// Validate checks raw against the recognized keys and returns the typed,
// defaulted configuration. Every violation is reported in one *ConfigError.
func Validate(raw map[string]string) (*Config, error) {
	return load(func() []string {
		pairs := make([]string, 0, len(raw))
		for k, v := range raw {
			pairs = append(pairs, k+"="+v)
		}

		return pairs
	})
}

func load(environ func() []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, ""), nil); err != nil {
		return nil, errors.Wrap(err, "load config defaults failed")
	}

	if err := k.Load(env.Provider("", env.Opt{
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			if _, ok := knownKeys[key]; !ok {
				return "", nil
			}

			return key, value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	var raw rawEnv
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal env config failed")
	}

	if err := validateRaw(&raw); err != nil {
		return nil, err
	}

	return raw.toConfig(), nil
}

// loadDotEnv applies the first existing dotenv file without overriding
// variables already present in the environment.
func loadDotEnv(nodeEnv string) error {
	candidates := []string{".env"}
	if nodeEnv == EnvTest {
		candidates = []string{".env.test", ".env"}
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err != nil {
			continue
		}

		if err := godotenv.Load(name); err != nil {
			return errors.Wrapf(err, "load %s failed", name)
		}

		return nil
	}

	return nil
}

func (r *rawEnv) toConfig() *Config {
	cfg := &Config{}

	cfg.Env.Env = r.NodeEnv
	cfg.Env.ServiceName = r.ServiceName
	cfg.Env.Debug = r.NodeEnv != EnvProduction
	cfg.Env.Log.Pretty = r.NodeEnv != EnvProduction
	cfg.Env.Log.Level = r.LogLevel
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "debug"
		if r.NodeEnv == EnvProduction {
			cfg.Env.Log.Level = "info"
		}
	}

	// Values below were checked by validateRaw, Atoi cannot fail here.
	cfg.HTTP.Port, _ = strconv.Atoi(r.Port)
	cfg.HTTP.MaxRequestBodySize = r.HTTPMaxBodySize
	cfg.HTTP.TrustedProxies = splitList(r.TrustedProxies)
	cfg.HTTP.Timeouts = Timeouts{
		ReadTimeout:       defaultReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	cfg.CORS.AllowedOrigins = splitList(r.FrontAPIBaseURL)

	windowMS, _ := strconv.Atoi(r.RateLimitWindowMS)
	cfg.RateLimit.Window = time.Duration(windowMS) * time.Millisecond
	cfg.RateLimit.Max, _ = strconv.Atoi(r.RateLimitMax)
	cfg.RateLimit.Store = r.RateLimitStore

	cfg.Redis.URL = r.RedisURL

	cfg.Database.URL = r.DatabaseURL
	cfg.Database.ReplicaURLs = splitList(r.DatabaseReplicaURLs)

	return cfg
}

// splitList splits a comma-separated value, trimming blanks and dropping empties.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
