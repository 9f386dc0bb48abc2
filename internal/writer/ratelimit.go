// internal/writer/ratelimit.go
package writer

import "time"

// rateLimitBody is the subset of a 429 body we read.
// retry_after is seconds and may be fractional.
type rateLimitBody struct {
	RetryAfter *float64 `json:"retry_after"`
}

// retryAfter extracts the wait from a 429 body.
// Missing, unparseable or negative values fall back.
func retryAfter(body []byte, fallback time.Duration) time.Duration {
	if len(body) == 0 {
		return fallback
	}

	var rl rateLimitBody
	if err := json.Unmarshal(body, &rl); err != nil {
		return fallback
	}
	if rl.RetryAfter == nil || *rl.RetryAfter < 0 {
		return fallback
	}

	return time.Duration(*rl.RetryAfter * float64(time.Second))
}
