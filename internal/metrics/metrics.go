// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/presence-rotator/internal/writer"
)

const namespace = "presence_rotator"

// Recorder counts update outcomes. Safe for concurrent use.
type Recorder struct {
	updates      *prometheus.CounterVec
	rateLimitSec prometheus.Counter
	lastApplied  prometheus.Gauge
}

// NewRecorder registers the rotator collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Presence update attempts by outcome.",
		}, []string{"outcome"}),
		rateLimitSec: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_wait_seconds_total",
			Help:      "Seconds spent waiting on 429 retry_after.",
		}),
		lastApplied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_applied_timestamp_seconds",
			Help:      "Unix time of the last applied update.",
		}),
	}

	reg.MustRegister(r.updates, r.rateLimitSec, r.lastApplied)

	// pre-create every series so dashboards see zeros
	for _, k := range []writer.Kind{writer.Applied, writer.RateLimited, writer.Failed, writer.TransportError} {
		r.updates.WithLabelValues(k.String())
	}

	return r
}

func (r *Recorder) Record(o writer.Outcome) {
	r.updates.WithLabelValues(o.Kind.String()).Inc()

	switch o.Kind {
	case writer.Applied:
		r.lastApplied.Set(float64(time.Now().Unix()))
	case writer.RateLimited:
		r.rateLimitSec.Add(o.RetryAfter.Seconds())
	}
}

// NewServer exposes g on path. The caller owns the lifecycle.
func NewServer(listen, path string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(g, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	return &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
