package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and passed explicitly to every
// component that needs it. No other package reads the environment.
type Config struct {
	Environment string

	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	SMTP      SMTPConfig
	Spotify   SpotifyConfig
	LyricFind LyricFindConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Internal  InternalConfig
	Upload    UploadConfig
	Reset     ResetConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret        string
	AccessExpiration time.Duration
	VerifyExpiration time.Duration
	ResetExpiration  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	AccountsURL  string
	APIURL       string
}

type LyricFindConfig struct {
	APIKey     string
	DisplayKey string
	Territory  string
	APIURL     string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	APIURL   string
}

type InternalConfig struct {
	APIKey string
}

type UploadConfig struct {
	BaseDir      string
	MaxSizeBytes int64
}

type ResetConfig struct {
	UserRedirectURL  string
	AdminRedirectURL string
	UserVerifyURL    string
}

// Load reads configuration from environment variables, consulting a local
// .env file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "lyricsweb"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			AccessExpiration: getDuration("JWT_ACCESS_EXPIRATION", 24*time.Hour),
			VerifyExpiration: getDuration("JWT_VERIFY_EXPIRATION", 24*time.Hour),
			ResetExpiration:  getDuration("JWT_RESET_EXPIRATION", 5*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Spotify: SpotifyConfig{
			ClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
			ClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
			AccountsURL:  getEnv("SPOTIFY_ACCOUNTS_URL", "https://accounts.spotify.com"),
			APIURL:       getEnv("SPOTIFY_API_URL", "https://api.spotify.com"),
		},
		LyricFind: LyricFindConfig{
			APIKey:     getEnv("LYRICFIND_API_KEY", ""),
			DisplayKey: getEnv("LYRICFIND_DISPLAY_KEY", ""),
			Territory:  getEnv("LYRICFIND_TERRITORY", "US"),
			APIURL:     getEnv("LYRICFIND_API_URL", "https://api.lyricfind.com"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			APIURL:   getEnv("RABBITMQ_API_URL", "http://localhost:8080"),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Upload: UploadConfig{
			BaseDir:      getEnv("UPLOAD_BASE_DIR", "uploads"),
			MaxSizeBytes: int64(getInt("UPLOAD_MAX_SIZE_MB", 5)) << 20,
		},
		Reset: ResetConfig{
			UserRedirectURL:  getEnv("RESET_USER_REDIRECT_URL", "http://localhost:3000/reset-password"),
			AdminRedirectURL: getEnv("RESET_ADMIN_REDIRECT_URL", "http://localhost:3001/reset-password"),
			UserVerifyURL:    getEnv("VERIFY_USER_REDIRECT_URL", "http://localhost:3000/verify-email"),
		},
	}
}

// GetDSN builds the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
