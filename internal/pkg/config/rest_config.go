package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides, e.g. MODARFLOR_DATABASE_DSN
const EnvPrefix = "MODARFLOR"

// RestConfig holds every setting of the REST application and the admin CLI
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Mail      MailSettings      `mapstructure:"mail"`
	Media     MediaSettings     `mapstructure:"media"`
	Cache     CacheSettings     `mapstructure:"cache"`
	Events    EventSettings     `mapstructure:"events"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
	CORS      CORSSettings      `mapstructure:"cors"`
	// Timezone is the IANA zone the business works in; "today" for booking dates is taken there
	Timezone string `mapstructure:"timezone"`
}

// Validate checks every section of the configuration
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	sections := []interface{ Validate() error }{
		&c.Database, &c.Logger, &c.Auth, &c.Mail, &c.Media,
		&c.Cache, &c.Events, &c.RateLimit, &c.CORS,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Location resolves Timezone, defaulting to UTC when it is empty
func (c *RestConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// InitializeRestConfig reads the YAML file at configPath, applies .env and MODARFLOR_*
// environment overrides and validates the result. A missing file is tolerated so the
// service can be configured purely from the environment.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("timezone", "UTC")

	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "modarflor-api")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("auth.admin_name", "Administrator")

	v.SetDefault("mail.provider", MailProviderNoop)
	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.use_tls", true)
	v.SetDefault("mail.resend_api_key", "")
	v.SetDefault("mail.from", "Modarflor <noreply@modarflor.com>")
	v.SetDefault("mail.reply_to", "")
	v.SetDefault("mail.admin_recipients", []string{})
	v.SetDefault("mail.company_name", "Modarflor")
	v.SetDefault("mail.send_timeout_seconds", 30)

	v.SetDefault("media.provider", MediaProviderLocal)
	v.SetDefault("media.local_dir", "./uploads")
	v.SetDefault("media.public_base_url", "/api/v1/media")
	v.SetDefault("media.connection_string", "")
	v.SetDefault("media.container_name", "")
	v.SetDefault("media.max_file_size", 5<<20)
	v.SetDefault("media.max_files", 10)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.brokers", []string{})
	v.SetDefault("events.topic", "modarflor-leads")

	v.SetDefault("rate_limit.requests_per_minute", 5)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("rate_limit.trusted_proxies", []string{})

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000"})
}
