package client

import (
	"context"
	"net/http"
	"time"
)

// Client is the transport contract consumed by repositories. body is
// encoded as JSON when non-nil.
type Client interface {
	Get(ctx context.Context, path string) (*Response, error)
	Post(ctx context.Context, path string, body any) (*Response, error)
	Put(ctx context.Context, path string, body any) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
}

// Response is a successful (2xx) raw response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

const DefaultTimeout = 10 * time.Second

// Config is copied by NewHTTPClient and cannot be changed afterwards.
type Config struct {
	BaseURL string
	// ConnectTimeout bounds dialing and the TLS handshake.
	ConnectTimeout time.Duration
	// ReceiveTimeout bounds the wait for response headers.
	ReceiveTimeout time.Duration
	// SendTimeout bounds every write on the connection. The three timeouts
	// summed also bound the whole exchange.
	SendTimeout time.Duration
	// Headers are sent with every request on top of the JSON defaults.
	Headers map[string]string
	// Production disables request/response debug logging.
	Production bool
	// RequestsPerSecond enables client-side throttling when positive.
	RequestsPerSecond float64
	Burst             int
}

func (c Config) withDefaults() Config {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultTimeout
	}
	if c.ReceiveTimeout <= 0 {
		c.ReceiveTimeout = DefaultTimeout
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultTimeout
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	for k, v := range c.Headers {
		headers[k] = v
	}
	c.Headers = headers
	return c
}
