// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrTokenRequired is returned when the config carries no token.
var ErrTokenRequired = errors.New("token is required")

// Validate checks configuration correctness.
// It performs declarative validation only and reports every problem at once.
// It MUST NOT mutate configuration.
//
// Status entries themselves are not validated: whatever the endpoint
// accepts is allowed through.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var result *multierror.Error

	if strings.TrimSpace(cfg.Token) == "" {
		result = multierror.Append(result, ErrTokenRequired)
	}

	if cfg.Delay != nil && *cfg.Delay < 0 {
		result = multierror.Append(result, fmt.Errorf("delay must be >= 0, got %v", float64(*cfg.Delay)))
	}
	if cfg.RequestTimeout != nil && *cfg.RequestTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("request_timeout must be > 0, got %v", float64(*cfg.RequestTimeout)))
	}
	if cfg.RateLimitDefault != nil && *cfg.RateLimitDefault < 0 {
		result = multierror.Append(result, fmt.Errorf("rate_limit_default must be >= 0, got %v", float64(*cfg.RateLimitDefault)))
	}

	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("endpoint %q is not an absolute URL", cfg.Endpoint))
		}
	}

	if cfg.Metrics.Path != "" && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		result = multierror.Append(result, fmt.Errorf("metrics.path must start with '/', got %q", cfg.Metrics.Path))
	}

	return result.ErrorOrNil()
}
