// Package config gathers the service settings from the environment. A .env file, when
// present, is loaded by cmd/api before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

type AWS struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	JobsTable        string
	OrdersTable      string
	PaymentsTable    string
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type Auth struct {
	JWTSecret string
	JWTIssuer string
}

type Telemetry struct {
	ServiceName  string
	OTLPEndpoint string
	Insecure     bool
}

type Config struct {
	Port               int
	StorageDriver      string
	DatabaseDSN        string
	AWS                AWS
	MinIO              MinIO
	Auth               Auth
	Telemetry          Telemetry
	MercadoPagoToken   string
	CORSAllowedOrigins []string
}

// Load reads the environment. Only malformed values are errors; missing ones fall back
// to local defaults.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}

	cfg := Config{
		Port:          port,
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseDSN:   os.Getenv("DB_DSN"),
		AWS: AWS{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			JobsTable:        getenvDefault("JOBS_TABLE", "jobs"),
			OrdersTable:      getenvDefault("ORDERS_TABLE", "orders"),
			PaymentsTable:    getenvDefault("PAYMENTS_TABLE", "payments"),
		},
		MinIO: MinIO{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "job-attachments"),
			UseSSL:    getenvBool("MINIO_USE_SSL"),
			PublicURL: strings.TrimRight(os.Getenv("MINIO_PUBLIC_URL"), "/"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTIssuer: os.Getenv("JWT_ISSUER"),
		},
		Telemetry: Telemetry{
			ServiceName:  getenvDefault("OTEL_SERVICE_NAME", "autocare-api"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:     getenvBool("OTEL_EXPORTER_OTLP_INSECURE"),
		},
		MercadoPagoToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseDSN == "" {
			return Config{}, errors.New("DB_DSN is required for the postgres storage driver")
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownStorageDriver, cfg.StorageDriver)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
