package config

import "fmt"

// MailSettings configures outbound notification mail
type MailSettings struct {
	Provider        string   `mapstructure:"provider" validate:"required,oneof=smtp resend noop"`
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username        string   `mapstructure:"username"`
	Password        string   `mapstructure:"password"`
	UseTLS          bool     `mapstructure:"use_tls"`
	ResendAPIKey    string   `mapstructure:"resend_api_key"`
	From            string   `mapstructure:"from" validate:"required"`
	ReplyTo         string   `mapstructure:"reply_to" validate:"omitempty,email"`
	AdminRecipients []string `mapstructure:"admin_recipients" validate:"dive,email"`
	CompanyName     string   `mapstructure:"company_name" validate:"required"`
	SendTimeout     int      `mapstructure:"send_timeout_seconds" validate:"gte=0"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	if err := validateSettings("MailSettings", s); err != nil {
		return err
	}

	switch s.Provider {
	case MailProviderSMTP:
		if s.Host == "" || s.Port == 0 {
			return fmt.Errorf("smtp provider requires host and port")
		}
	case MailProviderResend:
		if s.ResendAPIKey == "" {
			return fmt.Errorf("resend provider requires an api key")
		}
	}

	return nil
}
