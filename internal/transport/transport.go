// Package transport builds the HTTP client used to talk to the statistics API.
package transport

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   time.Duration = 6 * time.Second
	DefaultRetryMax  int           = 3
	DefaultRateLimit rate.Limit    = 10
	DefaultBurst     int           = 5
)

type Config struct {
	Token   string
	Timeout time.Duration

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	RateLimit rate.Limit
	Burst     int

	Logger *zap.Logger

	// Base is the transport requests are finally sent with, a pooled one by default.
	Base http.RoundTripper
}

func (cfg Config) withDefaults() Config {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Base == nil {
		cfg.Base = cleanhttp.DefaultPooledTransport()
	}

	return cfg
}

// NewClient returns a retrying client which authenticates, rate limits and
// decompresses every request. Once retries are exhausted the last response is
// returned instead of an error so callers can inspect its status.
func NewClient(cfg Config) *retryablehttp.Client {
	cfg = cfg.withDefaults()

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &authTransport{
			Parent:  cfg.Base,
			Token:   cfg.Token,
			Limiter: rate.NewLimiter(cfg.RateLimit, cfg.Burst),
		},
	}
	client.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		client.RetryWaitMax = cfg.RetryWaitMax
	}
	client.Logger = &leveledLogger{logger: cfg.Logger.Sugar()}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return client
}

// leveledLogger adapts zap to the logger interface of retryablehttp.
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
