package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

type Config struct {
	StoreDriver  string
	ServicesFile string
	BookingsFile string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RabbitURL     string
	AdminPassword string
	LogFile       string
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding variables already set, then builds
// the config from the environment.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		log.Printf("[Config] could not load %v: %v", envFiles, err)
	}

	return &Config{
		StoreDriver:  getEnv("STORE_DRIVER", StoreFile),
		ServicesFile: getEnv("SERVICES_FILE", "services.dat"),
		BookingsFile: getEnv("BOOKINGS_FILE", "bookings.dat"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "transit_booking"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RabbitURL:     os.Getenv("RABBITMQ_URL"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		LogFile:       os.Getenv("LOG_FILE"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreFile:
		if c.ServicesFile == "" || c.BookingsFile == "" {
			return fmt.Errorf("file store needs both SERVICES_FILE and BOOKINGS_FILE")
		}
	case StorePostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.StoreDriver, StoreFile, StorePostgres)
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
