// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/presence-rotator/internal/writer"
)

// Scheduler is a clock-driven, single-threaded presence rotator.
// It owns the cyclic position over an immutable entry list.
type Scheduler struct {
	cfg Config
	w   writer.PresenceWriter
	log Logger
	rec Recorder

	sleep sleepFunc
	next  int
}

// New creates a scheduler with immutable config.
// rec may be nil.
func New(cfg Config, w writer.PresenceWriter, log Logger, rec Recorder) (*Scheduler, error) {
	if w == nil {
		return nil, errors.New("scheduler: writer required")
	}
	if log == nil {
		return nil, errors.New("scheduler: logger required")
	}
	if cfg.Delay < 0 {
		return nil, errors.New("scheduler: delay must be >= 0")
	}
	if rec == nil {
		rec = nopRecorder{}
	}

	return &Scheduler{
		cfg:   cfg,
		w:     w,
		log:   log,
		rec:   rec,
		sleep: sleepCtx,
	}, nil
}

// idleWait is the per-cycle pause when there is nothing to send.
func (s *Scheduler) idleWait() time.Duration {
	if s.cfg.Delay > MinIdleWait {
		return s.cfg.Delay
	}
	return MinIdleWait
}

// sleepCtx suspends for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
