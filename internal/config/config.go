// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Token    string         `yaml:"token"`
	Statuses []StatusConfig `yaml:"statuses"`

	// Seconds between successful updates. nil => DefaultDelay.
	Delay *Seconds `yaml:"delay"`

	LogLevel string `yaml:"log_level"` // trace | debug | info | warn | error

	Endpoint         string   `yaml:"endpoint"`
	RequestTimeout   *Seconds `yaml:"request_timeout"`
	RateLimitDefault *Seconds `yaml:"rate_limit_default"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// ---- STATUS ENTRY ----

// Key names match the long-standing config.json layout.
type StatusConfig struct {
	Status     string          `yaml:"status"`
	EmojiID    string          `yaml:"emoji_id"`
	EmojiName  string          `yaml:"emoji_name"`
	NitroEmoji bool            `yaml:"nitro_emoji"`
	Activity   *ActivityConfig `yaml:"activity"`
}

type ActivityConfig struct {
	Type int    `yaml:"type"` // 0 playing, 1 streaming, 2 listening, 3 watching
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// IsEmpty reports whether the block carries nothing, e.g. "activity": {}.
func (a *ActivityConfig) IsEmpty() bool {
	return a == nil || (a.Type == 0 && a.Name == "" && a.URL == "")
}

// ---- METRICS ----

type MetricsConfig struct {
	Enable bool   `yaml:"enable"`
	Listen string `yaml:"listen"` // e.g. ":9090"
	Path   string `yaml:"path"`   // e.g. "/metrics"
}

// ---- DURATIONS ----

// Seconds is a number of seconds, integer or fractional ("delay": 1.5).
type Seconds float64

func (s *Seconds) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("line %d: expected a number of seconds, got %q", value.Line, value.Value)
	}
	*s = Seconds(f)
	return nil
}

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

func secondsOr(s *Seconds, def time.Duration) time.Duration {
	if s == nil {
		return def
	}
	return s.Duration()
}

// DelayDuration is the pause after every applied update.
func (c *Config) DelayDuration() time.Duration {
	return secondsOr(c.Delay, DefaultDelay)
}

// RequestTimeoutDuration bounds a single PATCH round trip.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return secondsOr(c.RequestTimeout, DefaultRequestTimeout)
}

// RateLimitDefaultDuration is used when a 429 carries no usable retry_after.
func (c *Config) RateLimitDefaultDuration() time.Duration {
	return secondsOr(c.RateLimitDefault, DefaultRateLimit)
}
