package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"braceria-backend/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, public URL), secrets
// - default: Values common across all environments (timezone, timeout, policies), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Restaurant  RestaurantConfig
	Reservation ReservationConfig
	Mail        MailConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"braceria-backend"`
	Version         string        `envconfig:"SERVICE_VERSION" default:"1.0.0"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"20s"`
}

type DBConfig struct {
	Host         string `envconfig:"DB_HOST" required:"true"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	User         string `envconfig:"DB_USER" required:"true"`
	Password     string `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string `envconfig:"DB_NAME" required:"true"`
	SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string `envconfig:"DB_TIMEZONE" default:"Europe/Rome"`
	MaxConns     int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	TxMaxRetries int    `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type RestaurantConfig struct {
	ID            string `envconfig:"RESTAURANT_ID" default:"BRACERIA"`
	Name          string `envconfig:"RESTAURANT_NAME" default:"Braceria San Frediano"`
	Email         string `envconfig:"RESTAURANT_EMAIL"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" required:"true"`
	PhoneRegion   string `envconfig:"PHONE_DEFAULT_REGION" default:"IT"`
	TimeZone      string `envconfig:"RESTAURANT_TIMEZONE" default:"Europe/Rome"`
}

// Booking policy knobs. Defaults reproduce the historical behaviour of the service.
type ReservationConfig struct {
	ConflictStatus      int    `envconfig:"RESERVATION_CONFLICT_STATUS" default:"409"`
	ExclusiveSlots      bool   `envconfig:"RESERVATION_EXCLUSIVE_SLOTS" default:"false"`
	MaxGuests           int    `envconfig:"MAX_GUESTS" default:"0"`
	CustomerUpsert      string `envconfig:"CUSTOMER_UPSERT_POLICY" default:"refresh_names"`
	CancelTokenRequired bool   `envconfig:"CANCEL_TOKEN_REQUIRED" default:"true"`
}

type MailConfig struct {
	Host        string        `envconfig:"SMTP_HOST"`
	Port        int           `envconfig:"SMTP_PORT" default:"587"`
	Username    string        `envconfig:"SMTP_USERNAME"`
	Password    string        `envconfig:"SMTP_PASSWORD"`
	From        string        `envconfig:"SMTP_FROM"`
	TLSPolicy   string        `envconfig:"SMTP_TLS_POLICY" default:"mandatory"`
	SendTimeout time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"15s"`
	QueueSize   int           `envconfig:"MAIL_QUEUE_SIZE" default:"100"`
	Workers     int           `envconfig:"MAIL_WORKERS" default:"2"`
}

const (
	UpsertRefreshNames = "refresh_names"
	UpsertKeepNames    = "keep_names"
)

// Enabled reports whether an SMTP relay is configured.
func (c MailConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadDotEnv reads a .env file from the working directory if one exists.
// Variables already present in the environment are left untouched.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field rules envconfig tags cannot express.
func (c Config) Validate() error {
	var problems []string

	if c.Reservation.ConflictStatus != http.StatusConflict && c.Reservation.ConflictStatus != http.StatusBadRequest {
		problems = append(problems, "RESERVATION_CONFLICT_STATUS must be 400 or 409")
	}
	if c.Reservation.CustomerUpsert != UpsertRefreshNames && c.Reservation.CustomerUpsert != UpsertKeepNames {
		problems = append(problems, "CUSTOMER_UPSERT_POLICY must be refresh_names or keep_names")
	}
	if c.Reservation.MaxGuests < 0 {
		problems = append(problems, "MAX_GUESTS must not be negative")
	}
	if c.DB.TxMaxRetries < 0 {
		problems = append(problems, "DB_TX_MAX_RETRIES must not be negative")
	}
	if u, err := url.Parse(c.Restaurant.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "PUBLIC_BASE_URL must be an absolute URL")
	}
	if _, err := time.LoadLocation(c.Restaurant.TimeZone); err != nil {
		problems = append(problems, "RESTAURANT_TIMEZONE must be an IANA zone name")
	}
	if c.Mail.Enabled() {
		if c.Mail.From == "" {
			problems = append(problems, "SMTP_FROM is required when SMTP_HOST is set")
		}
		if c.Restaurant.Email == "" {
			problems = append(problems, "RESTAURANT_EMAIL is required when SMTP_HOST is set")
		}
		switch c.Mail.TLSPolicy {
		case "mandatory", "opportunistic", "none":
		default:
			problems = append(problems, "SMTP_TLS_POLICY must be mandatory, opportunistic or none")
		}
		if c.Mail.Workers < 1 || c.Mail.QueueSize < 1 {
			problems = append(problems, "MAIL_WORKERS and MAIL_QUEUE_SIZE must be positive")
		}
	}

	if len(problems) > 0 {
		return errs.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ServiceName:     "braceria-backend",
			Version:         "test",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "Europe/Rome",
			MaxConns:     10,
			TxMaxRetries: 3,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Restaurant: RestaurantConfig{
			ID:            "BRACERIA",
			Name:          "Braceria San Frediano",
			Email:         "prenotazioni@example.com",
			PublicBaseURL: "http://localhost:8889",
			PhoneRegion:   "IT",
			TimeZone:      "Europe/Rome",
		},
		Reservation: ReservationConfig{
			ConflictStatus:      http.StatusConflict,
			CustomerUpsert:      UpsertRefreshNames,
			CancelTokenRequired: true,
		},
		Mail: MailConfig{
			SendTimeout: 2 * time.Second,
			QueueSize:   10,
			Workers:     1,
		},
	}
}
