package transport_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/time/rate"

	"github.com/m0t0k1ch1/royale-go/internal/transport"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newClient(t *testing.T, cfg transport.Config) *retryablehttp.Client {
	t.Helper()

	base := cleanhttp.DefaultPooledTransport()
	t.Cleanup(base.CloseIdleConnections)

	cfg.Base = base
	if cfg.RetryWaitMin == 0 {
		cfg.RetryWaitMin = time.Millisecond
		cfg.RetryWaitMax = 5 * time.Millisecond
	}

	return transport.NewClient(cfg)
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, client *retryablehttp.Client, url string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

func TestHeaders(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "gzip, br", r.Header.Get("Accept-Encoding"))
		w.Write([]byte(`{"items":[]}`))
	})

	client := newClient(t, transport.Config{Token: "secret"})

	resp, body := get(t, client, srv.URL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `{"items":[]}`, body)
}

func TestContentEncoding(t *testing.T) {
	payload := []byte(`{"tag":"#VR80UJG","name":"Élise"}`)

	tcs := []struct {
		name     string
		encoding string
		compress func(*testing.T, []byte) []byte
	}{
		{
			name:     "Brotli",
			encoding: "br",
			compress: func(t *testing.T, b []byte) []byte {
				var buf bytes.Buffer
				w := brotli.NewWriter(&buf)
				_, err := w.Write(b)
				require.NoError(t, err)
				require.NoError(t, w.Close())
				return buf.Bytes()
			},
		},
		{
			name:     "Gzip",
			encoding: "gzip",
			compress: func(t *testing.T, b []byte) []byte {
				var buf bytes.Buffer
				w := gzip.NewWriter(&buf)
				_, err := w.Write(b)
				require.NoError(t, err)
				require.NoError(t, w.Close())
				return buf.Bytes()
			},
		},
		{
			name:     "Identity",
			encoding: "",
			compress: func(_ *testing.T, b []byte) []byte {
				return b
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			compressed := tc.compress(t, payload)

			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				if len(tc.encoding) > 0 {
					w.Header().Set("Content-Encoding", tc.encoding)
				}
				w.Write(compressed)
			})

			client := newClient(t, transport.Config{})

			resp, body := get(t, client, srv.URL)
			require.Equal(t, string(payload), body)
			require.Empty(t, resp.Header.Get("Content-Encoding"))
		})
	}
}

func TestRetry(t *testing.T) {
	var calls int32

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	})

	client := newClient(t, transport.Config{RetryMax: 3})

	resp, _ := get(t, client, srv.URL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestRetryExhausted(t *testing.T) {
	var calls int32

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"reason":"unknownException"}`))
	})

	client := newClient(t, transport.Config{RetryMax: 1})

	resp, body := get(t, client, srv.URL)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, `{"reason":"unknownException"}`, body)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestRateLimit(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	client := newClient(t, transport.Config{
		RateLimit: rate.Every(time.Hour),
		Burst:     1,
	})

	get(t, client, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
}
