package royale

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/m0t0k1ch1/royale-go/internal/transport"
	"github.com/m0t0k1ch1/royale-go/refdata"
)

type Options struct {
	Timeout time.Duration
	// ValidateTags rejects malformed tags before any request is sent.
	ValidateTags bool

	RetryMax  int
	RateLimit rate.Limit
	Burst     int

	Logger *zap.Logger
	// Tables are loaded from the bundled game data when nil.
	Tables    *refdata.Tables
	Transport http.RoundTripper
}

func DefaultOptions() Options {
	return Options{
		Timeout:      transport.DefaultTimeout,
		ValidateTags: true,
		RetryMax:     transport.DefaultRetryMax,
		RateLimit:    transport.DefaultRateLimit,
		Burst:        transport.DefaultBurst,
		Logger:       zap.NewNop(),
	}
}

type Option func(*Options)

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

func WithValidateTags(validate bool) Option {
	return func(o *Options) {
		o.ValidateTags = validate
	}
}

func WithRetryMax(retryMax int) Option {
	return func(o *Options) {
		o.RetryMax = retryMax
	}
}

func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *Options) {
		o.RateLimit = limit
		o.Burst = burst
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithTables(tables *refdata.Tables) Option {
	return func(o *Options) {
		o.Tables = tables
	}
}

// WithTransport sets the transport requests are sent with.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *Options) {
		o.Transport = rt
	}
}
