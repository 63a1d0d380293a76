package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxLoggedBody   = 512
)

type HTTPClient struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

// NewHTTPClient builds a transport for cfg.BaseURL. Zero timeouts default to
// DefaultTimeout.
func NewHTTPClient(cfg Config, log logging.Logger) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	cfg = cfg.withDefaults()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if log == nil {
		log = logging.Nop()
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           writeDeadlineDialer(dialer.DialContext, cfg.SendTimeout),
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReceiveTimeout,
		MaxIdleConnsPerHost:   4,
	}

	c := &HTTPClient{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.SendTimeout + cfg.ReceiveTimeout,
		},
		log: log.With("component", "transport"),
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return c, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *HTTPClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, newError(KindUnknown, fmt.Sprintf("encode request: %v", err), 0, err)
		}
		payload = b
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindUnknown, fmt.Sprintf("build request: %v", err), 0, err)
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	c.logExchange(ctx, "request", method, path, req.Header, payload)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Classify(ctx, err, 0, nil)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Classify(ctx, err, 0, nil)
	}

	c.logExchange(ctx, "response", method, path, resp.Header, respBody, "status", resp.StatusCode)

	if err := Classify(ctx, nil, resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

func (c *HTTPClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			// the limiter refuses to wait past the deadline
			return newError(KindTimeout, "rate limit wait exceeds deadline", 0, err)
		}
		return Classify(ctx, ctx.Err(), 0, nil)
	}
	return nil
}

func (c *HTTPClient) logExchange(ctx context.Context, what, method, path string, h http.Header, body []byte, extra ...any) {
	if c.cfg.Production {
		return
	}
	args := append([]any{
		"method", method,
		"path", path,
		"headers", h.Clone(),
		"body", truncate(body, maxLoggedBody),
	}, extra...)
	c.log.Debug(ctx, what, args...)
}

var _ Client = (*HTTPClient)(nil)
