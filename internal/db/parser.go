package db

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

func defaultConnectionConfig() *fixinsert.ConnectionConfig {
	return &fixinsert.ConnectionConfig{
		Host:             "localhost",
		Port:             5432,
		Database:         "postgres",
		AppName:          "fixinsert",
		AdditionalParams: make(map[string]string),
	}
}

// ParseConnectionString parses a PostgreSQL connection string in either
// PostgreSQL URI format or ADO.NET format and returns a ConnectionConfig.
func ParseConnectionString(connStr string) (*fixinsert.ConnectionConfig, error) {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return nil, fmt.Errorf("connection string is empty: %w", fixinsert.ErrInvalidConfig)
	}

	if strings.HasPrefix(connStr, "postgresql://") || strings.HasPrefix(connStr, "postgres://") {
		return parsePostgreSQLURI(connStr)
	}

	if strings.Contains(connStr, "=") && strings.Contains(connStr, ";") {
		return parseADONET(connStr)
	}

	return nil, fmt.Errorf("unrecognized connection string format: %w", fixinsert.ErrInvalidConfig)
}

// parsePostgreSQLURI parses postgresql://[user[:password]@][host][:port][/dbname][?param=value&...]
func parsePostgreSQLURI(connStr string) (*fixinsert.ConnectionConfig, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PostgreSQL URI: %w", fixinsert.ErrInvalidConfig)
	}

	config := defaultConnectionConfig()

	if u.Hostname() != "" {
		config.Host = u.Hostname()
	}
	if u.Port() != "" {
		port, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", u.Port(), fixinsert.ErrInvalidConfig)
		}
		config.Port = port
	}

	if u.User != nil {
		config.Username = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			config.Password = pass
		}
	}

	if len(u.Path) > 1 {
		config.Database = strings.TrimPrefix(u.Path, "/")
	}

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		applyParam(config, key, values[0])
	}

	return config, nil
}

// parseADONET parses Host=localhost;Port=5432;Database=dbname;Username=user;Password=pass;...
func parseADONET(connStr string) (*fixinsert.ConnectionConfig, error) {
	config := defaultConnectionConfig()

	for _, part := range strings.Split(connStr, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch strings.ToLower(key) {
		case "host", "server":
			config.Host = value
		case "port":
			port, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid port %q in ADO.NET string: %w", value, fixinsert.ErrInvalidConfig)
			}
			config.Port = port
		case "database", "initial catalog":
			config.Database = value
		case "username", "user id", "uid":
			config.Username = value
		case "password", "pwd":
			config.Password = value
		case "ssl mode":
			config.SSLMode = value
		default:
			applyParam(config, key, value)
		}
	}

	return config, nil
}

func applyParam(config *fixinsert.ConnectionConfig, key, value string) {
	switch strings.ToLower(key) {
	case "sslmode":
		config.SSLMode = value
	case "application_name", "applicationname", "application name":
		config.AppName = value
	case "connect_timeout", "connecttimeout", "timeout", "connect timeout":
		if seconds, err := strconv.Atoi(value); err == nil {
			config.ConnectTimeout = time.Duration(seconds) * time.Second
		}
	default:
		config.AdditionalParams[key] = value
	}
}

// BuildConnectionString converts a ConnectionConfig back to a PostgreSQL URI for pgx.
func BuildConnectionString(config *fixinsert.ConnectionConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/" + config.Database,
	}

	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}

	query := url.Values{}
	for key, value := range config.AdditionalParams {
		query.Set(key, value)
	}
	if config.SSLMode != "" {
		query.Set("sslmode", config.SSLMode)
	}
	if config.AppName != "" {
		query.Set("application_name", config.AppName)
	}
	if config.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(config.ConnectTimeout.Seconds())))
	}

	u.RawQuery = query.Encode()
	return u.String()
}

// RedactedConnectionString is BuildConnectionString with the password masked, for logs.
func RedactedConnectionString(config *fixinsert.ConnectionConfig) string {
	redacted := *config
	if redacted.Password != "" {
		redacted.Password = "xxxxx"
	}
	return BuildConnectionString(&redacted)
}
