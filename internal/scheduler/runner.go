// internal/scheduler/runner.go
package scheduler

import (
	"context"

	"github.com/tamzrod/presence-rotator/internal/status"
	"github.com/tamzrod/presence-rotator/internal/writer"
)

// Run cycles through the entries until ctx is done, then returns ctx.Err().
// One request at a time. No overlap. Failures never stop the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	n := len(s.cfg.Entries)
	if n == 0 {
		s.log.Warnf("No statuses configured. Idling every %s.", s.idleWait())
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if n == 0 {
			if err := s.sleep(ctx, s.idleWait()); err != nil {
				return err
			}
			continue
		}

		if err := s.update(ctx, s.cfg.Entries[s.next]); err != nil {
			return err
		}
		s.next = (s.next + 1) % n
	}
}

// update delivers one entry. A 429 retries the same payload after the
// server-given wait; anything else is final for this entry.
// The only error returned is ctx's.
func (s *Scheduler) update(ctx context.Context, e status.Entry) error {
	payload := status.Encode(e)

	for {
		o := s.w.Write(ctx, payload)
		s.rec.Record(o)

		switch o.Kind {
		case writer.Applied:
			s.log.Infof("Successfully changed status to: %s", e.Text)
			if e.Activity != nil {
				s.log.Infof("Activity set to: %s (%s)", e.Activity.Name, e.Activity.Type)
			}
			return s.sleep(ctx, s.cfg.Delay)

		case writer.RateLimited:
			s.log.Warnf("Rate limited. Retrying in %s...", o.RetryAfter)
			if err := s.sleep(ctx, o.RetryAfter); err != nil {
				return err
			}

		case writer.Failed:
			s.log.Errorf("Failed to change status. HTTP Status: %d", o.StatusCode)
			return nil

		default:
			// shutdown, not a network problem
			if err := ctx.Err(); err != nil {
				return err
			}
			s.log.Errorf("HTTP request failed: %v", o.Err)
			return nil
		}
	}
}
