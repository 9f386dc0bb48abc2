// internal/writer/types.go
package writer

import (
	"context"
	"time"

	"github.com/tamzrod/presence-rotator/internal/status"
)

// Kind classifies one update attempt.
type Kind uint8

const (
	Applied        Kind = iota // HTTP 200
	RateLimited                // HTTP 429
	Failed                     // any other HTTP status
	TransportError             // no HTTP exchange completed
)

func (k Kind) String() string {
	switch k {
	case Applied:
		return "applied"
	case RateLimited:
		return "rate_limited"
	case Failed:
		return "failed"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one update attempt.
// Only the field matching Kind is meaningful.
type Outcome struct {
	Kind Kind

	StatusCode int           // Failed (and set for Applied/RateLimited)
	RetryAfter time.Duration // RateLimited
	Err        error         // TransportError
}

// PresenceWriter delivers one payload and reports what happened.
// It never returns an error: every failure is an Outcome.
type PresenceWriter interface {
	Write(ctx context.Context, p status.Payload) Outcome
}
