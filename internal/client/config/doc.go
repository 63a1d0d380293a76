// Package config loads runtime configuration for the userdesk client and the
// mock Resource API.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. A .env file in the working directory and USERDESK_* environment
//     variables; the process environment wins over the file.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Resource API
//	-d string   path of the local session database
//	-p          production mode
//	-t int      transport timeouts (seconds)
//
// # JSON schema
//
// Durations are timex.Duration values, so either "10s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "connect_timeout": "10s",
//	  "receive_timeout": "10s",
//	  "send_timeout": "10s",
//	  "db_path": "userdesk.db",
//	  "production": false,
//	  "log_backend": "slog",
//	  "requests_per_second": 0,
//	  "login_path": "/login",
//	  "home_path": "/dashboard",
//	  "mockapi_addr": ":8080"
//	}
//
// # Environment
//
//	USERDESK_SERVER_BASE_URL, USERDESK_CONNECT_TIMEOUT, USERDESK_RECEIVE_TIMEOUT,
//	USERDESK_SEND_TIMEOUT, USERDESK_DB_PATH, USERDESK_PRODUCTION,
//	USERDESK_LOG_BACKEND, USERDESK_REQUESTS_PER_SECOND, USERDESK_LOGIN_PATH,
//	USERDESK_HOME_PATH, USERDESK_MOCKAPI_ADDR
package config
