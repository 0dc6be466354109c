// Package lumen implements chain.Source for the Lumen chain over the CometBFT
// RPC and Cosmos REST HTTP endpoints.
package lumen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 32 << 20
)

// Config describes the node endpoints.
type Config struct {
	RPCURL  string
	RESTURL string
	// RequestsPerSecond caps outbound requests; zero disables the limit.
	RequestsPerSecond int
	Timeout           time.Duration
}

// Client is an instrumented, rate limited chain.Source.
type Client struct {
	rpcURL  string
	restURL string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics RPCMetrics
	logger  *zap.Logger
}

var _ chain.Source = (*Client)(nil)

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config, metrics RPCMetrics, logger *zap.Logger) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("rpc url is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	for _, raw := range []string{cfg.RPCURL, cfg.RESTURL} {
		if raw == "" {
			continue
		}
		if _, err := url.ParseRequestURI(raw); err != nil {
			return nil, fmt.Errorf("invalid endpoint %q: %w", raw, err)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &Client{
		rpcURL:  strings.TrimRight(cfg.RPCURL, "/"),
		restURL: strings.TrimRight(cfg.RESTURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("lumen"),
	}, nil
}

// statusError is returned for non-2xx responses.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func (c *Client) getJSON(ctx context.Context, operation, rawURL string, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", operation, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", operation, chain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// CometBFT reports unknown heights as JSON-RPC errors with a 500 status.
		var envelope rpcEnvelope
		if sonnet.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
			return fmt.Errorf("%s: %w", operation, envelope.Error.err())
		}
		return fmt.Errorf("%s: %w", operation, &statusError{code: resp.StatusCode, body: truncate(string(body), 256)})
	}
	if err := sonnet.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode: %w", operation, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
