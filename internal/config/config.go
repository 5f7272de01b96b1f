package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set outside development")

var devOrigins = []string{
	"http://localhost:3002",
	"http://localhost:3000",
	"http://localhost:5000",
	"http://localhost:5173",
}

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	dur := func(key string, def time.Duration) time.Duration {
		d, err := time.ParseDuration(env(key, ""))
		if err != nil || d <= 0 {
			return def
		}
		return d
	}

	cfg := Config{
		AppEnv:       env("APP_ENV", EnvDevelopment),
		LogLevel:     env("LOG_LEVEL", "info"),
		Port:         env("PORT", "8003"),
		MongoURI:     env("MONGO_PUBLIC_URL", env("MONGO_URL", env("MONGODB_URI", "mongodb://localhost:27017"))),
		MongoDB:      env("MONGO_DB", "boldserve"),
		MongoTimeout: dur("MONGO_TIMEOUT", 10*time.Second),
		JWTSecret:    env("JWT_SECRET", ""),
		TokenTTL:     dur("TOKEN_TTL", 24*time.Hour),
	}

	if cfg.IsProduction() {
		for _, o := range strings.Split(getenv("ALLOWED_ORIGINS"), ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = append([]string(nil), devOrigins...)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsDevelopment() {
			cfg.JWTSecret = "dev-secret"
		} else {
			return Config{}, ErrMissingSecret
		}
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool { return c.AppEnv == EnvDevelopment }

func (c Config) IsProduction() bool { return c.AppEnv == EnvProduction }
