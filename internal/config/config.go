package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	CORS       CORS       `yaml:"cors"`
	Chat       Chat       `yaml:"chat"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"hall_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"24h"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"*"`
}

// Chat limits how fast one user may talk to the assistant and fixes the
// time zone used to resolve "today" and "tomorrow".
type Chat struct {
	RateLimit float64 `yaml:"rate_limit" env-default:"1"`
	Burst     int     `yaml:"burst" env-default:"5"`
	Location  string  `yaml:"location" env-default:"Asia/Kolkata"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// MustLocation returns the chat time zone, falling back to UTC on an unknown name.
func (c Chat) MustLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		log.Printf("unknown chat location %q, using UTC", c.Location)
		return time.UTC
	}

	return loc
}
