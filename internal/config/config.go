package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort string

	DBDriver   string
	DBLogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PostgresDSN string
	SQLitePath  string

	// empty RedisAddr disables idempotency keys
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret  string
	JWTTTLMins int

	AdminUsername string
	AdminPassword string
}

// source resolves a key from the environment first, then the optional
// CONFIG_FILE overlay, then the default.
type source struct{ file map[string]string }

func (s source) str(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	if v, ok := s.file[k]; ok && v != "" {
		return v
	}
	return d
}

func (s source) int(k string, d int) int {
	if n, err := strconv.Atoi(s.str(k, "")); err == nil {
		return n
	}
	return d
}

// Load reads .env (when present), the YAML file named by CONFIG_FILE (when
// set) and the process environment. Real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	file, err := readFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	s := source{file: file}

	return &Config{
		AppPort:    s.str("APP_PORT", "8080"),
		DBDriver:   strings.ToLower(s.str("DB_DRIVER", DriverMySQL)),
		DBLogLevel: s.str("DB_LOG_LEVEL", "warn"),

		MySQLHost: s.str("MYSQL_HOST", "mysql"),
		MySQLPort: s.str("MYSQL_PORT", "3306"),
		MySQLDB:   s.str("MYSQL_DB", "multisuministros"),
		MySQLUser: s.str("MYSQL_USER", "multisuministros"),
		MySQLPass: s.str("MYSQL_PASS", "multisuministros"),

		PostgresDSN: s.str("POSTGRES_DSN", ""),
		SQLitePath:  s.str("SQLITE_PATH", "multisuministros.db"),

		RedisAddr:    s.str("REDIS_ADDR", ""),
		RedisDB:      s.int("REDIS_DB", 0),
		IdempTTLSecs: s.int("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:  s.str("JWT_SECRET", ""),
		JWTTTLMins: s.int("JWT_TTL_MINUTES", 720),

		AdminUsername: s.str("ADMIN_USERNAME", "admin"),
		AdminPassword: s.str("ADMIN_PASSWORD", ""),
	}, nil
}

// readFile parses a flat YAML mapping whose keys are the environment variable
// names, case-insensitive. Scalars of any type are accepted.
func readFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		out[strings.ToUpper(k)] = fmt.Sprint(v)
	}
	return out, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.JWTTTLMins <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive, got %d", c.JWTTTLMins)
	}
	if c.RedisAddr != "" && c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return c.PostgresDSN
	case DriverSQLite:
		return c.SQLitePath
	default:
		return c.MySQLDSN()
	}
}

func (c *Config) JWTTTL() time.Duration { return time.Duration(c.JWTTTLMins) * time.Minute }

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }
