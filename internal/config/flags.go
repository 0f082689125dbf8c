package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line. See parseFlags for the list of flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

// parseFlags parses args with a private FlagSet so it can be called more than once.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d model store DSN (postgres:// or mongodb://)
//	-db-name MongoDB database name
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-env deployment environment (development|production)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-static-dir directory served under /assets/
//	-assets-endpoint, -assets-bucket, -assets-access-key, -assets-secret-key, -assets-ssl
//	-log-level, -log-file
//	-server API address used by the client
//	-client-db client SQLite DSN
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Model store DSN")
	fs.StringVar(&cfg.Storage.DB.Database, "db-name", "", "MongoDB database name")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.StringVar(&cfg.App.Environment, "env", "", "Environment: development or production")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Server.StaticDir, "static-dir", "", "Directory served under /assets/")
	fs.StringVar(&cfg.Storage.Assets.Endpoint, "assets-endpoint", "", "Object storage endpoint host:port")
	fs.StringVar(&cfg.Storage.Assets.Bucket, "assets-bucket", "", "Object storage bucket")
	fs.StringVar(&cfg.Storage.Assets.AccessKey, "assets-access-key", "", "Object storage access key")
	fs.StringVar(&cfg.Storage.Assets.SecretKey, "assets-secret-key", "", "Object storage secret key")
	fs.BoolVar(&cfg.Storage.Assets.UseSSL, "assets-ssl", false, "Use TLS for object storage")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Rotating log file path")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "API address used by the client")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.Client.DB.DSN, "client-db", "", "Client SQLite DSN")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
