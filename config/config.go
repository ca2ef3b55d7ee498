package config

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"
)

// config represents a full configuration file of this project, each tool part
// of this repository share the same configuration file
type config struct {
	// Providers selects the implementations used for interfaces
	Providers providers
	// Database contains the configuration to connect to the SQL database
	Database database
	Website  website
	// Telemetry contains the configuration for exporting traces
	Telemetry telemetry
}

type providers struct {
	// Storage is the name of the storage provider, either "mariadb" or "sqlite"
	Storage string
}

// database is the configuration for the database/sql package
type database struct {
	// DSN to pass to database/sql, format depends on the storage provider used
	DSN string
	// MaxOpenConns is the maximum amount of open connections, 0 is unlimited
	MaxOpenConns int
	// MaxIdleConns is the maximum amount of idle connections kept around
	MaxIdleConns int
	// ConnMaxLifetime is the maximum time a connection is re-used
	ConnMaxLifetime Duration
	// ConnectTimeout is how long to keep retrying the initial connection
	ConnectTimeout Duration
}

// website contains all the fields only relevant to the HTTP API
type website struct {
	// Addr is the address to listen on
	Addr string
	// MetricsAddr is the address to serve prometheus metrics on, empty disables it
	MetricsAddr string
	// RateLimit is the amount of plays a single api key can submit per
	// RateLimitWindow
	RateLimit       int
	RateLimitWindow Duration
	// ShutdownTimeout is how long in-flight requests get to finish on shutdown
	ShutdownTimeout Duration
}

type telemetry struct {
	// Use enables the exporting of traces over OTLP
	Use bool
	// Endpoint is the OTLP grpc endpoint to export to
	Endpoint string
	// Auth is sent as the Authorization header to the endpoint
	Auth string
}

// errors is a slice of multiple config-file errors
type errors []error

func (e errors) Error() string {
	s := "config: error opening files:"
	if len(e) == 1 {
		return s + " " + e[0].Error()
	}

	for _, err := range e {
		s += "\n" + err.Error()
	}

	return s
}

// Loader is a function that returns a loaded configuration
type Loader func() (Config, error)

// Config is a type-safe wrapper around the config type
type Config struct {
	config *atomic.Value
}

// LoadFile loads a configuration file from the filenames given, the first file
// that exists is used. If no filenames are given the default configuration is
// returned
func LoadFile(filenames ...string) (Config, error) {
	var f *os.File
	var err error
	var errs errors

	for _, filename := range filenames {
		if filename == "" {
			continue
		}

		f, err = os.Open(filename)
		if err == nil {
			break
		}

		errs = append(errs, err)
	}

	if f == nil {
		if len(errs) > 0 {
			return Config{}, errs
		}
		// nothing asked for, use the defaults
		return Load(strings.NewReader(""))
	}
	defer f.Close()

	return Load(f)
}

// Load loads a configuration file from the reader given, it expects TOML as input
func Load(r io.Reader) (Config, error) {
	var c = defaultConfig
	m, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, err
	}

	// keys that were found but don't have a destination are an error, these are
	// almost always typos
	if undec := m.Undecoded(); len(undec) > 0 {
		var errs errors
		for _, key := range undec {
			errs = append(errs, UnknownKeyError(key.String()))
		}
		return Config{}, errs
	}

	var ac = Config{new(atomic.Value)}
	ac.StoreConf(c)

	return ac, nil
}

// UnknownKeyError is returned when a configuration file contains a key
// that does not exist
type UnknownKeyError string

func (e UnknownKeyError) Error() string {
	return "config: unknown key: " + string(e)
}

// Conf returns the configuration stored inside
//
// NOTE: Conf returns a shallow-copy of the config value stored inside; so do not edit
// any slices or maps that might be inside
func (c Config) Conf() config {
	return c.config.Load().(config)
}

// StoreConf stores the configuration passed
func (c Config) StoreConf(new config) {
	c.config.Store(new)
}

// Save writes the configuration to w in TOML format
func (c Config) Save(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c.Conf())
}

// TestConfig returns the default configuration, it is meant for tests
func TestConfig() Config {
	cfg, err := Load(strings.NewReader(""))
	if err != nil {
		panic("config: default configuration failed to load: " + err.Error())
	}
	return cfg
}
