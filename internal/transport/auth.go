package transport

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const acceptEncoding = "gzip, br"

type authTransport struct {
	Parent  http.RoundTripper
	Token   string
	Limiter *rate.Limiter
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "failed to wait for the rate limiter")
	}

	// the request must not be modified
	req = req.Clone(req.Context())
	if len(t.Token) > 0 {
		req.Header.Set("Authorization", "Bearer "+t.Token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	resp, err := t.Parent.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if err := decodeBody(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

type decodedBody struct {
	io.Reader
	closers []io.Closer
}

func (b *decodedBody) Close() error {
	var err error
	for _, c := range b.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// decodeBody replaces a compressed response body with its decompressed content.
func decodeBody(resp *http.Response) error {
	var body *decodedBody

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "":
		return nil
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read the gzip response body")
		}
		body = &decodedBody{Reader: r, closers: []io.Closer{r, resp.Body}}
	case "br":
		body = &decodedBody{Reader: brotli.NewReader(resp.Body), closers: []io.Closer{resp.Body}}
	default:
		return nil
	}

	resp.Body = body
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true

	return nil
}
