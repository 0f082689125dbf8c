// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment names accepted by App.Environment.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// go-model-viewer server and client. It aggregates all sub-configurations and
// is populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the deployment environment and the version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store and the object
	// storage used for uploaded model files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log controls the level and the optional rotating log file.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds the address of the API the terminal client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings used only by the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the
// credential lifecycle and versioning. It is also the explicit configuration
// record handed to the request authorization gate.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a credential remains valid (default 168h).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Environment is either "development" or "production". The credential
	// cookie is marked Secure everywhere except development.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvironmentDevelopment
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir, when set, is served under /assets/ (e.g. the demo model).
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the model record store connection settings.
	DB DB `envPrefix:"DB_"`

	// Assets holds the object storage settings for uploaded model files.
	Assets Assets `envPrefix:"ASSETS_"`
}

// DB holds connection settings for the model record store.
type DB struct {
	// DSN selects the backend by scheme: "postgres://…" or "mongodb://…".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Database is the MongoDB database name. Ignored for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_NAME
	Database string `env:"DATABASE_NAME"`
}

// Assets holds S3-compatible object storage settings.
type Assets struct {
	// Env: STORAGE_ASSETS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_ASSETS_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
	// Env: STORAGE_ASSETS_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: STORAGE_ASSETS_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_ASSETS_USE_SSL
	UseSSL bool `env:"USE_SSL"`
	// MaxUploadSize is the upload limit in bytes.
	// Env: STORAGE_ASSETS_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Enabled reports whether object storage is configured.
func (a Assets) Enabled() bool {
	return a.Endpoint != ""
}

// Log configures the zerolog output.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, receives a copy of every log line and is rotated by size.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Adapter holds the outbound transport settings of the terminal client.
type Adapter struct {
	// HTTPAddress is the base address of the API (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client settings.
type Client struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB points at the local SQLite file that keeps the session credential.
type ClientDB struct {
	// Env: CLIENT_DB_DSN
	DSN string `env:"DSN"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-model-viewer",
			TokenDuration: 7 * 24 * time.Hour,
			Environment:   EnvironmentProduction,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Assets: Assets{
				Bucket:        "models",
				MaxUploadSize: 64 << 20,
			},
		},
		Log: Log{
			Level: "info",
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Client: Client{
			DB: ClientDB{DSN: "model-viewer-client.db"},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
