package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	// Store
	StoreDriver         string        `envconfig:"STORE_DRIVER" default:"mongo"`
	MongoURL            string        `envconfig:"MONGO_URL"`
	DBName              string        `envconfig:"DB_NAME"`
	MongoConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
	ListLimit           int64         `envconfig:"LIST_LIMIT" default:"1000"`
	SeedSampleData      bool          `envconfig:"SEED_SAMPLE_DATA" default:"false"`

	// HTTP
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8001"`
	APIPrefix       string        `envconfig:"API_PREFIX" default:"/api"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Observability
	ServiceName      string `envconfig:"SERVICE_NAME" default:"kashoe-chess-club"`
	Env              string `envconfig:"ENV" default:"dev"`
	LogFile          string `envconfig:"LOG_FILE"`
	TraceExporter    string `envconfig:"TRACE_EXPORTER" default:"none"`
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"chessclub"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) normalize() {
	origins := make([]string, 0, len(c.CORSOrigins))
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins
	c.APIPrefix = "/" + strings.Trim(c.APIPrefix, "/")
	if c.APIPrefix == "/" {
		c.APIPrefix = ""
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURL == "" {
			return errors.New("MONGO_URL is required but not set")
		}
		if c.DBName == "" {
			return errors.New("DB_NAME is required but not set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER %q is not one of %s, %s", c.StoreDriver, DriverMongo, DriverMemory)
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("LIST_LIMIT must be positive, got %d", c.ListLimit)
	}
	return nil
}
