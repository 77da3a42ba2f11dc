package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	NotifyTransportHTTP = "http"
	NotifyTransportNATS = "nats"
)

type HTTPConfig struct {
	Host               string
	Port               int
	CORSAllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessSecret string
}

type ClientsConfig struct {
	IdentityBaseURL string
	MessageBaseURL  string
	Timeout         time.Duration
}

type NotifyConfig struct {
	Transport   string
	NATSURL     string
	NATSSubject string
}

type ContractsConfig struct {
	HRTarget string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Clients     ClientsConfig
	Notify      NotifyConfig
	Contracts   ContractsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	setDefaults(v)
	_ = v.ReadInConfig()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8082)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("NOTIFY_TRANSPORT", NotifyTransportHTTP)
	v.SetDefault("NATS_SUBJECT", "messages.send")
	v.SetDefault("CLIENT_TIMEOUT", "5s")
	v.SetDefault("CONTRACT_HR_TARGET", "HR")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:               v.GetString("HTTP_HOST"),
			Port:               v.GetInt("HTTP_PORT"),
			CORSAllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Clients: ClientsConfig{
			IdentityBaseURL: strings.TrimRight(v.GetString("IDENTITY_BASE_URL"), "/"),
			MessageBaseURL:  strings.TrimRight(v.GetString("MESSAGE_BASE_URL"), "/"),
			Timeout:         v.GetDuration("CLIENT_TIMEOUT"),
		},
		Notify: NotifyConfig{
			Transport:   strings.ToLower(strings.TrimSpace(v.GetString("NOTIFY_TRANSPORT"))),
			NATSURL:     v.GetString("NATS_URL"),
			NATSSubject: v.GetString("NATS_SUBJECT"),
		},
		Contracts: ContractsConfig{
			HRTarget: v.GetString("CONTRACT_HR_TARGET"),
		},
	}

	if len(cfg.HTTP.CORSAllowedOrigins) == 0 {
		cfg.HTTP.CORSAllowedOrigins = []string{"*"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.Clients.IdentityBaseURL == "" {
		return fmt.Errorf("IDENTITY_BASE_URL is required")
	}
	switch cfg.Notify.Transport {
	case NotifyTransportHTTP:
		if cfg.Clients.MessageBaseURL == "" {
			return fmt.Errorf("MESSAGE_BASE_URL is required for http notifications")
		}
	case NotifyTransportNATS:
		if cfg.Notify.NATSURL == "" {
			return fmt.Errorf("NATS_URL is required for nats notifications")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_TRANSPORT %q", cfg.Notify.Transport)
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
