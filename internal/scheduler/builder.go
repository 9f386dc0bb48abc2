// internal/scheduler/builder.go
package scheduler

import (
	cfg "github.com/tamzrod/presence-rotator/internal/config"
	"github.com/tamzrod/presence-rotator/internal/writer"
)

// Build constructs a Scheduler and wires the writer and its HTTP client.
// Assumes config has already passed Validate and Normalize.
// Setup errors (missing token, bad endpoint) surface here, before any request.
func Build(c *cfg.Config, log Logger, rec Recorder) (*Scheduler, error) {
	w, err := writer.Build(c)
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			Entries: c.Entries(),
			Delay:   c.DelayDuration(),
		},
		w,
		log,
		rec,
	)
}
