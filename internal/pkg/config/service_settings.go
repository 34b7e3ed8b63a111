package config

import "time"

// CacheSettings configures the optional redis cache for public catalog reads
type CacheSettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"required_if=Enabled true"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	return validateSettings("CacheSettings", s)
}

// EventSettings configures the optional kafka publisher for lead events
type EventSettings struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers" validate:"required_if=Enabled true"`
	Topic   string   `mapstructure:"topic" validate:"required_if=Enabled true"`
}

// Validate checks that all fields in EventSettings are valid
func (s *EventSettings) Validate() error {
	return validateSettings("EventSettings", s)
}

// RateLimitSettings configures the per client limiter on public form submissions.
// X-Forwarded-For is only honoured when the peer address is one of TrustedProxies.
type RateLimitSettings struct {
	RequestsPerMinute int      `mapstructure:"requests_per_minute" validate:"required,min=1"`
	Burst             int      `mapstructure:"burst" validate:"required,min=1"`
	TrustedProxies    []string `mapstructure:"trusted_proxies" validate:"dive,ip|cidr"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	return validateSettings("RateLimitSettings", s)
}

// CORSSettings lists the browser origins allowed to call the API
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error {
	return validateSettings("CORSSettings", s)
}
