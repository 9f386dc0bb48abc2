// internal/writer/builder.go
package writer

import (
	cfg "github.com/tamzrod/presence-rotator/internal/config"
	"github.com/tamzrod/presence-rotator/internal/writer/discord"
)

// Build constructs the Writer and its single shared HTTP client.
// Assumes config has already passed Validate and Normalize.
func Build(c *cfg.Config) (*Writer, error) {
	client, err := discord.New(discord.Config{
		Endpoint: c.Endpoint,
		Timeout:  c.RequestTimeoutDuration(),
	})
	if err != nil {
		return nil, err
	}

	return New(Config{
		Token:             c.Token,
		DefaultRetryAfter: c.RateLimitDefaultDuration(),
	}, client)
}
