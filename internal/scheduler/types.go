// internal/scheduler/types.go
package scheduler

import (
	"context"
	"time"

	"github.com/tamzrod/presence-rotator/internal/status"
	"github.com/tamzrod/presence-rotator/internal/writer"
)

// Logger is the leveled sink the scheduler reports to.
// logrus.FieldLogger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Recorder observes every outcome. Optional.
type Recorder interface {
	Record(o writer.Outcome)
}

// Config is the minimal runtime config the scheduler needs.
type Config struct {
	// Entries are cycled in order, forever. Never mutated.
	Entries []status.Entry

	// Delay is the pause after every applied update.
	Delay time.Duration
}

// MinIdleWait is the floor for the per-cycle wait when there are no entries.
const MinIdleWait = 1 * time.Second

type sleepFunc func(ctx context.Context, d time.Duration) error

type nopRecorder struct{}

func (nopRecorder) Record(writer.Outcome) {}
