package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Config holds runtime settings for the userdesk client and the mock API.
//
// Fields:
//   - ServerBaseURL: base URL of the Resource API, e.g. http://127.0.0.1:8080.
//   - ConnectTimeout, ReceiveTimeout, SendTimeout: transport timeouts.
//   - DBPath: sqlite file holding the persisted session.
//   - Production: disables request/response debug logging.
//   - LogBackend: "slog" or "zap".
//   - RequestsPerSecond: client-side rate limit, 0 disables it.
//   - LoginPath, HomePath: navigation guard targets.
//   - MockAPIAddr: listen address of cmd/mockapi.
type Config struct {
	ServerBaseURL     string
	ConnectTimeout    time.Duration
	ReceiveTimeout    time.Duration
	SendTimeout       time.Duration
	DBPath            string
	Production        bool
	LogBackend        string
	RequestsPerSecond float64
	LoginPath         string
	HomePath          string
	MockAPIAddr       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.ConnectTimeout = client.DefaultTimeout
	c.ReceiveTimeout = client.DefaultTimeout
	c.SendTimeout = client.DefaultTimeout
	c.DBPath = "userdesk.db"
	c.Production = false
	c.LogBackend = logging.BackendSlog
	c.RequestsPerSecond = 0
	c.LoginPath = "/login"
	c.HomePath = "/dashboard"
	c.MockAPIAddr = ":8080"
}

// LoadConfig constructs a Config from os.Args and the environment.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], ".env")
}

// load applies defaults, then JSON, then the .env file and environment,
// then flags. Later sources take precedence over earlier ones.
func load(args []string, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientConfig derives the transport settings.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:           c.ServerBaseURL,
		ConnectTimeout:    c.ConnectTimeout,
		ReceiveTimeout:    c.ReceiveTimeout,
		SendTimeout:       c.SendTimeout,
		Production:        c.Production,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}
