package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"log"
	"os"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AuthModeFirebase = "firebase"
	AuthModeLocal    = "local"
)

// Config holds the server configuration, read from the environment
// (and from a .env file when one is present).
type Config struct {
	// "real" or "test", test mode enables the database reset endpoint
	TestMode   string
	ServerPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	AuthMode                string
	FirebaseCredentialsFile string
	LocalTokenSecret        string
}

func Load() (Config, error) {
	// the .env file is optional, the environment can be set by the deployment
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Println("Error loading .env file: ", err)
	}

	cfg := Config{
		TestMode:   getEnv("TEST_MODE", "real"),
		ServerPort: getEnv("SERVER_PORT", "80"),

		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "railway_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "railway.db"),

		AuthMode:                getEnv("AUTH_MODE", AuthModeFirebase),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "firebaseServiceAccountKey.json"),
		LocalTokenSecret:        os.Getenv("LOCAL_TOKEN_SECRET"),
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.TestMode != "real" && cfg.TestMode != "test" {
		return fmt.Errorf("invalid test mode %q", cfg.TestMode)
	}
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	switch cfg.AuthMode {
	case AuthModeFirebase:
	case AuthModeLocal:
		if cfg.LocalTokenSecret == "" {
			return fmt.Errorf("LOCAL_TOKEN_SECRET is required when AUTH_MODE is local")
		}
	default:
		return fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}
	return nil
}

// PostgresDSN builds the connection string used by the postgres driver
func (cfg Config) PostgresDSN() string {
	return "host=" + cfg.DBHost +
		" user=" + cfg.DBUsername +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=" + cfg.DBSSLMode
}

// SQLiteDSN enables foreign keys, cascades depend on them
func (cfg Config) SQLiteDSN() string {
	return cfg.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
