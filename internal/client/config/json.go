package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
	"github.com/dmitrijs2005/userdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from the zero value, so a partial file only
// overrides what it names. Durations use timex.Duration: "10s" or integer
// nanoseconds.
type JsonConfig struct {
	ServerBaseURL     *string         `json:"server_base_url"`
	ConnectTimeout    *timex.Duration `json:"connect_timeout"`
	ReceiveTimeout    *timex.Duration `json:"receive_timeout"`
	SendTimeout       *timex.Duration `json:"send_timeout"`
	DBPath            *string         `json:"db_path"`
	Production        *bool           `json:"production"`
	LogBackend        *string         `json:"log_backend"`
	RequestsPerSecond *float64        `json:"requests_per_second"`
	LoginPath         *string         `json:"login_path"`
	HomePath          *string         `json:"home_path"`
	MockAPIAddr       *string         `json:"mockapi_addr"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LoginPath, jc.LoginPath)
	setString(&cfg.HomePath, jc.HomePath)
	setString(&cfg.MockAPIAddr, jc.MockAPIAddr)

	if jc.ConnectTimeout != nil {
		cfg.ConnectTimeout = jc.ConnectTimeout.Duration
	}
	if jc.ReceiveTimeout != nil {
		cfg.ReceiveTimeout = jc.ReceiveTimeout.Duration
	}
	if jc.SendTimeout != nil {
		cfg.SendTimeout = jc.SendTimeout.Duration
	}
	if jc.Production != nil {
		cfg.Production = *jc.Production
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
