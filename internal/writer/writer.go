// internal/writer/writer.go
package writer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/tamzrod/presence-rotator/internal/status"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultRetryAfter is used when a 429 body carries no usable retry_after.
const DefaultRetryAfter = 5 * time.Second

var ErrTokenRequired = errors.New("writer: token required")

// Client is the exact transport contract the writer uses.
// A non-nil error means no HTTP exchange completed.
type Client interface {
	Patch(ctx context.Context, token string, body []byte) (int, []byte, error)
}

// Config is the minimal runtime config the writer needs.
type Config struct {
	Token string

	// DefaultRetryAfter overrides the 429 fallback. Zero means DefaultRetryAfter.
	DefaultRetryAfter time.Duration
}

type Writer struct {
	cfg    Config
	client Client
}

// New creates a writer bound to one account token.
func New(cfg Config, client Client) (*Writer, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrTokenRequired
	}
	if client == nil {
		return nil, errors.New("writer: client required")
	}
	if cfg.DefaultRetryAfter <= 0 {
		cfg.DefaultRetryAfter = DefaultRetryAfter
	}
	return &Writer{cfg: cfg, client: client}, nil
}

// Write sends exactly one update. No retries here.
func (w *Writer) Write(ctx context.Context, p status.Payload) Outcome {
	body, err := Marshal(p)
	if err != nil {
		return Outcome{Kind: TransportError, Err: err}
	}

	code, resp, err := w.client.Patch(ctx, w.cfg.Token, body)
	if err != nil {
		return Outcome{Kind: TransportError, Err: err}
	}

	return classify(code, resp, w.cfg.DefaultRetryAfter)
}

// Marshal renders the wire body. Output is deterministic for equal payloads.
func Marshal(p status.Payload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("writer: encode payload: %w", err)
	}
	return b, nil
}

func classify(code int, body []byte, fallback time.Duration) Outcome {
	switch code {
	case http.StatusOK:
		return Outcome{Kind: Applied, StatusCode: code}
	case http.StatusTooManyRequests:
		return Outcome{
			Kind:       RateLimited,
			StatusCode: code,
			RetryAfter: retryAfter(body, fallback),
		}
	default:
		return Outcome{Kind: Failed, StatusCode: code}
	}
}
