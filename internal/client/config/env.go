package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "USERDESK_"

// parseEnv overlays cfg with USERDESK_* variables. Values from envFile are
// used when the process environment does not set the same key; a missing
// file is not an error.
func parseEnv(cfg *Config, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		key = envPrefix + key
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	strs := map[string]*string{
		"SERVER_BASE_URL": &cfg.ServerBaseURL,
		"DB_PATH":         &cfg.DBPath,
		"LOG_BACKEND":     &cfg.LogBackend,
		"LOGIN_PATH":      &cfg.LoginPath,
		"HOME_PATH":       &cfg.HomePath,
		"MOCKAPI_ADDR":    &cfg.MockAPIAddr,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"CONNECT_TIMEOUT": &cfg.ConnectTimeout,
		"RECEIVE_TIMEOUT": &cfg.ReceiveTimeout,
		"SEND_TIMEOUT":    &cfg.SendTimeout,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("PRODUCTION"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sPRODUCTION: %w", envPrefix, err)
		}
		cfg.Production = b
	}

	if v, ok := lookup("REQUESTS_PER_SECOND"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sREQUESTS_PER_SECOND: %w", envPrefix, err)
		}
		cfg.RequestsPerSecond = f
	}

	return nil
}
