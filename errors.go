package royale

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/m0t0k1ch1/royale-go/hashtag"
)

var (
	ErrEmptyToken   = errors.New("empty token")
	ErrEmptyHashtag = errors.New("empty hashtag")

	ErrInvalidHashtag = hashtag.ErrInvalidHashtag
)

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Reason     string `json:"reason"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Message) > 0 {
		return fmt.Sprintf("api error: %d %s: %s", e.StatusCode, e.Reason, e.Message)
	}

	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Reason)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
