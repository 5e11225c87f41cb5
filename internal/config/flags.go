package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the destinations of every configuration flag registered on a
// command's flag set. Values are read after the command line is parsed.
type Flags struct {
	serverAddress   NetAddress
	databaseDriver  string
	databaseDSN     string
	redisURL        string
	cacheBackend    string
	configPath      string
	tokenSignKey    string
	tokenIssuer     string
	tokenDuration   time.Duration
	requestTimeout  time.Duration
	usersURL        string
	labelsURL       string
	adapterTimeout  time.Duration
	logLevel        string
	logFile         string
	reminderPolling time.Duration
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-a, --address          server address in format [host]:[port]
//	-d, --dsn              database DSN
//	    --db-driver        database/sql driver (pgx, sqlite3)
//	    --redis            redis URL
//	    --cache            note cache backend (redis, memory, none)
//	-c, --config           JSON or YAML config file path
//	    --token-sign-key   token signing key
//	    --token-issuer     token issuer name
//	    --token-duration   token duration (e.g., "1h", "30m")
//	    --request-timeout  inbound request timeout (e.g., "30s", "1m")
//	    --users-url        users service base URL
//	    --labels-url       labels service base URL
//	    --adapter-timeout  outbound call timeout
//	    --log-level        log level
//	    --log-file         rotating log file path
//	    --reminder-poll    reminder dispatcher poll interval
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&f.redisURL, "redis", "", "Redis URL")
	fs.StringVar(&f.cacheBackend, "cache", "", "Note cache backend (redis, memory, none)")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&f.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.usersURL, "users-url", "", "Users service base URL")
	fs.StringVar(&f.labelsURL, "labels-url", "", "Labels service base URL")
	fs.DurationVar(&f.adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.DurationVar(&f.reminderPolling, "reminder-poll", 0, "Reminder poll interval")

	return f
}

// Config returns the flag values as a partial [StructuredConfig].
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.tokenSignKey,
			TokenIssuer:   f.tokenIssuer,
			TokenDuration: f.tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: f.databaseDriver,
				DSN:    f.databaseDSN,
			},
			Redis: Redis{URL: f.redisURL},
			Cache: Cache{Backend: f.cacheBackend},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			UsersURL:       f.usersURL,
			LabelsURL:      f.labelsURL,
			RequestTimeout: f.adapterTimeout,
		},
		Workers: Workers{
			ReminderPollInterval: f.reminderPolling,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		FilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty
// or "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
