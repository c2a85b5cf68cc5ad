package config

import (
	"time"
)

type (
	Config struct {
		App                App           `json:"app" mapstructure:"app"`
		Postgres           Postgres      `json:"postgres" mapstructure:"postgres"`
		Redis              Redis         `json:"redis" mapstructure:"redis"`
		Slip2Go            Slip2Go       `json:"slip2go" mapstructure:"slip2go"`
		MessageBroker      MessageBroker `json:"message_broker" mapstructure:"message_broker"`
		NewRelicLicenseKey string        `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		TopupConfig        TopupConfig              `json:"topup_config" mapstructure:"topup_config"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// Slip2Go holds the verification provider credentials plus the
	// expected receiving account. The account fields are loaded once at
	// startup and are read-only afterwards.
	Slip2Go struct {
		BaseURL   string        `json:"base_url" mapstructure:"base_url"`
		SecretKey string        `json:"secret_key" mapstructure:"secret_key"`
		Timeout   time.Duration `json:"timeout" mapstructure:"timeout"`

		AccountNameTH string `json:"account_name_th" mapstructure:"account_name_th"`
		AccountNameEN string `json:"account_name_en" mapstructure:"account_name_en"`
		AccountNumber string `json:"account_number" mapstructure:"account_number"`
		AccountType   string `json:"account_type" mapstructure:"account_type"`
	}

	MessageBroker struct {
		Brokers                []string `json:"brokers" mapstructure:"brokers"`
		TopicTopupNotification string   `json:"topic_topup_notification" mapstructure:"topic_topup_notification"`
		TopicCreditFault       string   `json:"topic_credit_fault" mapstructure:"topic_credit_fault"`
	}

	TopupConfig struct {
		// ClaimTTL bounds how long a transaction reference claim is held in
		// redis. The durable guard is the unique constraint on the credit
		// history table, so an expired claim can not double-credit.
		ClaimTTL time.Duration `json:"claim_ttl" mapstructure:"claim_ttl"`

		// MaxSlipSizeBytes rejects oversized uploads before they reach the
		// provider.
		MaxSlipSizeBytes int64 `json:"max_slip_size_bytes" mapstructure:"max_slip_size_bytes"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
	}
)

const DefaultAccountType = "01004"

// AccountType falls back to the bank-account type code used by Slip2Go
// when the config leaves it empty.
func (s Slip2Go) GetAccountType() string {
	if s.AccountType == "" {
		return DefaultAccountType
	}
	return s.AccountType
}
