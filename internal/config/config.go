package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel        int           `env:"LOG_LEVEL" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTP            HTTP          `envPrefix:"HTTP_"`
	GRPC            GRPC          `envPrefix:"GRPC_"`
	Graph           Graph         `envPrefix:"GRAPH_"`
	Database        Database      `envPrefix:"DATABASE_"`
	Storage         Storage       `envPrefix:"MINIO_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Address      string        `env:"ADDRESS" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// GRPC contains gRPC server parameters. TLS settings apply to both servers.
type GRPC struct {
	Port               string `env:"PORT" envDefault:"50051"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Graph contains engine parameters.
type Graph struct {
	ReadOnly     bool   `env:"READ_ONLY" envDefault:"false"`
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"network.txt"`
	SaveOnExit   bool   `env:"SAVE_ON_EXIT" envDefault:"false"`
}

// Database contains database connection parameters. An empty DSN disables
// the pg:// snapshot store.
type Database struct {
	DSN string `env:"DSN"`
}

// Storage contains object storage parameters. An empty endpoint disables
// the s3:// snapshot store.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"friendgraph-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"friendgraph-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"friendgraph-snapshots"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
