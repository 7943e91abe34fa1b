// Package config loads service settings from flags, the environment and an
// optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const devJWTSecret = "grocery-dev-secret"

// Config holds the runtime settings of the service.
type Config struct {
	Env                  string
	Port                 string
	DatabaseDriver       string
	DatabaseDSN          string
	JWTSecret            string
	JWTTTL               time.Duration
	RabbitMQURL          string
	ProfileCascadeDelete bool
	SeedData             bool
	CORSOrigins          string
}

// IsProd reports whether the service runs in production mode.
func (c *Config) IsProd() bool { return c.Env == "prod" }

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "grocery.db")
	v.SetDefault("JWT_SECRET", devJWTSecret)
	v.SetDefault("JWT_TTL", "8h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("PROFILE_CASCADE_DELETE", true)
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("CORS_ORIGINS", "*")
}

// Load parses args (without the program name) and resolves every setting.
// Flags win over environment variables, which win over the dotenv file.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet("grocery", pflag.ContinueOnError)
	fs.String("port", "", "HTTP listen address, e.g. :8080")
	fs.Bool("seed", false, "seed demo users and lists on startup")
	envFile := fs.String("env-file", ".env", "optional dotenv file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("APP_PORT", fs.Lookup("port")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("SEED_DATA", fs.Lookup("seed")); err != nil {
		return nil, err
	}

	if *envFile != "" {
		v.SetConfigFile(*envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read %s: %w", *envFile, err)
			}
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Env:                  strings.ToLower(v.GetString("APP_ENV")),
		Port:                 normalizePort(v.GetString("APP_PORT")),
		DatabaseDriver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:          v.GetString("DATABASE_DSN"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTTTL:               v.GetDuration("JWT_TTL"),
		RabbitMQURL:          v.GetString("RABBITMQ_URL"),
		ProfileCascadeDelete: v.GetBool("PROFILE_CASCADE_DELETE"),
		SeedData:             v.GetBool("SEED_DATA"),
		CORSOrigins:          v.GetString("CORS_ORIGINS"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProd() && c.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	return nil
}

func normalizePort(p string) string {
	if p != "" && !strings.Contains(p, ":") {
		return ":" + p
	}
	return p
}
