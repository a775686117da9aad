package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Cookie    CookieConfig
	Upload    UploadConfig
	Events    EventsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"postgres"` // postgres | memory
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type UploadConfig struct {
	Driver            string   `envconfig:"UPLOAD_DRIVER" default:"fs"` // fs | s3
	Dir               string   `envconfig:"UPLOAD_DIR" default:"./static/uploads/pets"`
	URLPrefix         string   `envconfig:"UPLOAD_URL_PREFIX" default:"/static/uploads/pets"`
	MaxBytes          int64    `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"` // 5 MiB
	AllowedExtensions []string `envconfig:"UPLOAD_ALLOWED_EXTENSIONS" default:"png,jpg,jpeg,gif,webp"`
	S3Bucket          string   `envconfig:"UPLOAD_S3_BUCKET"`
	S3Region          string   `envconfig:"UPLOAD_S3_REGION" default:"us-east-1"`
	S3Endpoint        string   `envconfig:"UPLOAD_S3_ENDPOINT"`
	S3PathStyle       bool     `envconfig:"UPLOAD_S3_PATH_STYLE" default:"false"`
	S3AccessKeyID     string   `envconfig:"UPLOAD_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string   `envconfig:"UPLOAD_S3_SECRET_ACCESS_KEY"`
}

type EventsConfig struct {
	AMQPURL       string `envconfig:"AMQP_URL"` // empty disables publishing
	Exchange      string `envconfig:"EVENTS_EXCHANGE" default:"pet_adoption"`
	RelaySchedule string `envconfig:"EVENTS_RELAY_SCHEDULE" default:"@every 10s"`
	BatchSize     int    `envconfig:"EVENTS_RELAY_BATCH_SIZE" default:"50"`
	MaxAttempts   int    `envconfig:"EVENTS_RELAY_MAX_ATTEMPTS" default:"5"`
}

type RateLimitConfig struct {
	LoginInterval time.Duration `envconfig:"RATE_LIMIT_LOGIN_INTERVAL" default:"12s"`
	LoginBurst    int           `envconfig:"RATE_LIMIT_LOGIN_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) UsesMemory() bool {
	return c.Driver == "memory"
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if !cfg.DB.UsesMemory() && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required for driver %q", cfg.DB.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:   "test-session-secret-with-enough-length",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Upload: UploadConfig{
			Driver:            "fs",
			Dir:               "./testdata/uploads",
			URLPrefix:         "/static/uploads/pets",
			MaxBytes:          5 << 20,
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
		},
		Events: EventsConfig{
			Exchange:      "pet_adoption_test",
			RelaySchedule: "@every 1h",
			BatchSize:     10,
			MaxAttempts:   3,
		},
		RateLimit: RateLimitConfig{
			LoginInterval: time.Millisecond,
			LoginBurst:    1000,
		},
	}
}
