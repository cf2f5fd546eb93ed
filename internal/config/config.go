// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	App      AppConfig     `yaml:"app"`
	Redis    RedisConfig   `yaml:"redis"`
	Webhook  WebhookConfig `yaml:"webhook"`
	Admin    AdminConfig   `yaml:"admin"`
	Tokens   TokensConfig  `yaml:"tokens"`
	Session  SessionConfig `yaml:"session"`
	Mail     MailConfig    `yaml:"mail"`
	S3       S3Config      `yaml:"s3"`
}

// HTTPConfig — сетевые настройки публичного HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для health-проб и Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"8081"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// AppConfig — внешние адреса: публичный фронт и публичная база API
// (из неё собираются ссылки доступа и восстановления).
type AppConfig struct {
	PublicBaseURL string `yaml:"public_base_url" env:"APP_PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
	APIBaseURL    string `yaml:"api_base_url" env:"API_PUBLIC_BASE_URL" env-default:"http://localhost:8080"`
}

// RedisConfig — настройки подключения к хранилищу.
type RedisConfig struct {
	RedisURL  string `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:""`
}

// WebhookConfig — общий секрет вебхука платёжного провайдера.
// Пустой секрет означает «вебхук закрыт»: все вызовы отклоняются (fail closed),
// поэтому поле намеренно не env-required.
type WebhookConfig struct {
	Secret string `yaml:"secret" env:"WEBHOOK_SECRET" env-default:""`
}

// AdminConfig — bearer-токен административных операций.
// Пустой токен закрывает админ-эндпойнты целиком.
type AdminConfig struct {
	Token string `yaml:"token" env:"ADMIN_TOKEN" env-default:""`
}

// TokensConfig — TTL одноразовых токенов.
type TokensConfig struct {
	AccessTTL  time.Duration `yaml:"access_ttl" env:"ACCESS_TOKEN_TTL" env-default:"24h"`
	RecoverTTL time.Duration `yaml:"recover_ttl" env:"RECOVER_TOKEN_TTL" env-default:"15m"`
}

// SessionConfig — параметры сессий и сессионной cookie.
// RevalidateEntitlement: перепроверять право доступа на каждом запросе под
// сессией. По умолчанию выключено — отозванный покупатель доживает сессию
// (грейс-период); включение стоит одного лишнего обращения к хранилищу.
type SessionConfig struct {
	TTL                   time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
	CookieName            string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"pg_session"`
	RevalidateEntitlement bool          `yaml:"revalidate_entitlement" env:"SESSION_REVALIDATE_ENTITLEMENT" env-default:"false"`
}

// MailConfig — отправка писем восстановления через Resend.
// Без API-ключа письма не отправляются, ссылка уходит в лог (dev-режим).
type MailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"RESEND_API_KEY" env-default:""`
	From         string `yaml:"from" env:"MAIL_FROM" env-default:"Paygate <onboarding@resend.dev>"`
	ReplyTo      string `yaml:"reply_to" env:"MAIL_REPLY_TO" env-default:""`
}

// S3Config — S3-совместимое хранилище защищённого контента.
// Пустой endpoint отключает выдачу подписанных ссылок.
type S3Config struct {
	Endpoint    string        `yaml:"endpoint" env:"S3_ENDPOINT" env-default:""`
	AccessKey   string        `yaml:"access_key" env:"S3_ACCESS_KEY" env-default:""`
	SecretKey   string        `yaml:"secret_key" env:"S3_SECRET_KEY" env-default:""`
	Bucket      string        `yaml:"bucket" env:"S3_BUCKET" env-default:""`
	MaterialKey string        `yaml:"material_key" env:"S3_MATERIAL_KEY" env-default:"material.pdf"`
	PresignTTL  time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"5m"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
