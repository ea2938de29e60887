package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, pricing constants, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Pricing PricingConfig
	Mpesa   MpesaConfig
	SMTP    SMTPConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Nairobi"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5174,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Nairobi"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

// AdminConfig is the single administrator account. There is no user table;
// the salon owner is the only authenticated identity.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

// PricingConfig is read once at startup and injected into the price
// calculator as an immutable value. All amounts are whole KSh.
type PricingConfig struct {
	Multiplier          float64 `envconfig:"PRICE_MULTIPLIER" default:"2"`
	DepositPercent      float64 `envconfig:"DEPOSIT_PERCENT" default:"0.3"`
	HomeServiceFee      int     `envconfig:"HOME_SERVICE_FEE" default:"200"`
	MaterialCostPerUnit int     `envconfig:"MATERIAL_COST_PER_UNIT" default:"70"`
	ExtraLengthFee      int     `envconfig:"EXTRA_LENGTH_FEE" default:"100"`
}

type MpesaConfig struct {
	Env            string `envconfig:"MPESA_ENV" default:"sandbox"`
	ConsumerKey    string `envconfig:"MPESA_CONSUMER_KEY" required:"true"`
	ConsumerSecret string `envconfig:"MPESA_CONSUMER_SECRET" required:"true"`
	ShortCode      string `envconfig:"MPESA_SHORT_CODE" required:"true"`
	Passkey        string `envconfig:"MPESA_PASSKEY" required:"true"`
	CallbackURL    string `envconfig:"MPESA_CALLBACK_URL" required:"true"`
}

type SMTPConfig struct {
	Host       string `envconfig:"SMTP_HOST" default:""`
	Port       string `envconfig:"SMTP_PORT" default:"587"`
	User       string `envconfig:"SMTP_USER" default:""`
	Password   string `envconfig:"SMTP_PASS" default:""`
	From       string `envconfig:"EMAIL_FROM" default:"no-reply@beautifybyangel.com"`
	OwnerEmail string `envconfig:"OWNER_EMAIL" default:"owner@beautifybyangel.com"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
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
			TimeZone: "Africa/Nairobi",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Nairobi",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Email: "owner@example.com",
			// PasswordHash is filled per test run
		},
		Mpesa: MpesaConfig{
			Env:            "sandbox",
			ConsumerKey:    "test-key",
			ConsumerSecret: "test-secret",
			ShortCode:      "174379",
			Passkey:        "test-passkey",
			CallbackURL:    "http://localhost:8889/api/payments/mpesa/callback",
		},
		SMTP: SMTPConfig{
			OwnerEmail: "owner@example.com",
		},
		Pricing: PricingConfig{
			Multiplier:          2,
			DepositPercent:      0.3,
			HomeServiceFee:      200,
			MaterialCostPerUnit: 70,
			ExtraLengthFee:      100,
		},
	}
}
