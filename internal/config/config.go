// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
)

const namespace = "PAYROLL"

type Config struct {
	AppEnv string `conf:"default:development"`
	HTTP   HTTPConfig
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	JWT    JWTConfig
	SMTP   SMTPConfig
}

type HTTPConfig struct {
	Port            string        `conf:"default:8080"`
	ReadTimeout     time.Duration `conf:"default:10s"`
	WriteTimeout    time.Duration `conf:"default:15s"`
	ShutdownTimeout time.Duration `conf:"default:10s"`
	AllowedOrigin   string        `conf:"default:http://localhost:3000"`
}

type DBConfig struct {
	Host       string `conf:"default:localhost"`
	User       string `conf:"default:postgres"`
	Password   string `conf:"default:postgres,noprint"`
	Name       string `conf:"default:payroll"`
	Port       string `conf:"default:5432"`
	SSLMode    string `conf:"default:disable"`
	MaxRetries int    `conf:"default:5"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr       string `conf:"default:localhost:6379"`
	MaxRetries int    `conf:"default:5"`
}

type KafkaConfig struct {
	Broker       string        `conf:"default:localhost:9092"`
	ContactTopic string        `conf:"default:contact.message.received"`
	GroupID      string        `conf:"default:payroll-contact-notifier"`
	PollInterval time.Duration `conf:"default:2s"`
	BatchSize    int           `conf:"default:50"`
	MaxRetries   int           `conf:"default:5"`

	// consumer side: notification attempts per message before it is dead-lettered
	NotifyAttempts int           `conf:"default:3"`
	NotifyBackoff  time.Duration `conf:"default:2s"`
}

type JWTConfig struct {
	Secret string        `conf:"default:change-me,noprint"`
	TTL    time.Duration `conf:"default:24h"`
}

type SMTPConfig struct {
	Host      string `conf:"default:localhost"`
	Port      int    `conf:"default:1025"`
	User      string
	Password  string `conf:"noprint"`
	Sender    string `conf:"default:payroll@localhost"`
	Recipient string `conf:"default:admin@localhost"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads an optional .env file and then parses PAYROLL_* variables and
// command line flags into a Config.
func Load() (Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := parse(os.Args[1:])
	if errors.Is(err, conf.ErrHelpWanted) {
		usage, uerr := conf.Usage(namespace, &cfg)
		if uerr != nil {
			return cfg, fmt.Errorf("generating config usage: %w", uerr)
		}
		fmt.Println(usage)
		os.Exit(0)
	}
	return cfg, err
}

func parse(args []string) (Config, error) {
	var cfg Config
	if err := conf.Parse(args, namespace, &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return cfg, err
		}
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// String renders the configuration with secrets masked.
func (c Config) String() string {
	out, err := conf.String(&c)
	if err != nil {
		return err.Error()
	}
	return out
}
