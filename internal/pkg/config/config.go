package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, hold duration)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Migration    MigrationConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Reservation  ReservationConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Payment      PaymentConfig
	Notification NotificationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type MigrationConfig struct {
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	Dir         string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Shopper session cookie; the value is an opaque session id.
type CookieConfig struct {
	SessionName string        `envconfig:"SESSION_COOKIE_NAME" default:"hof_session"`
	Domain      string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure      bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite    string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge      time.Duration `envconfig:"SESSION_COOKIE_MAX_AGE" default:"720h"`
}

type ReservationConfig struct {
	HoldDuration  time.Duration `envconfig:"RESERVATION_HOLD_DURATION" default:"15m"`
	SweepInterval time.Duration `envconfig:"RESERVATION_SWEEP_INTERVAL" default:"1m"`
}

type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	ActiveDropTTL time.Duration `envconfig:"REDIS_ACTIVE_DROP_TTL" default:"30s"`
}

type KafkaConfig struct {
	Brokers           []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	NotificationTopic string   `envconfig:"KAFKA_NOTIFICATION_TOPIC" default:"storefront-notifications"`
}

type PaymentConfig struct {
	WebhookSecret string        `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
	Tolerance     time.Duration `envconfig:"PAYMENT_WEBHOOK_TOLERANCE" default:"5m"`
}

type NotificationConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFICATION_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// golang-migrate selects its pgx/v5 driver by the pgx5 scheme.
func (c *DBConfig) BuildMigrationURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Migration: MigrationConfig{
			AutoMigrate: false,
			Dir:         "migrations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SessionName: "hof_session",
			Secure:      false,
			SameSite:    "Lax",
			MaxAge:      24 * time.Hour,
		},
		Reservation: ReservationConfig{
			HoldDuration:  15 * time.Minute,
			SweepInterval: time.Minute,
		},
		Redis: RedisConfig{
			Addr:          "localhost:6379",
			ActiveDropTTL: 30 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:           []string{"localhost:9092"},
			NotificationTopic: "storefront-notifications",
		},
		Payment: PaymentConfig{
			WebhookSecret: "whsec_test",
			Tolerance:     5 * time.Minute,
		},
		Notification: NotificationConfig{
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
		},
	}
}
