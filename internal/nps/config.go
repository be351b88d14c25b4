package nps

import (
	"os"
	"time"
)

// Config holds NPS API connection settings.
type Config struct {
	// BaseURL is the NPS API endpoint.
	BaseURL string

	// APIKey is the developer.nps.gov key sent as X-Api-Key. Optional:
	// without it requests are still attempted and upstream rejects them.
	APIKey string

	// Timeout for API requests.
	Timeout time.Duration

	// UserAgent identifies the client to the NPS API.
	UserAgent string
}

// LoadConfig loads configuration from environment variables. A missing API
// key is not an error; the caller is expected to warn about it.
func LoadConfig() *Config {
	baseURL := os.Getenv("NPS_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := 30 * time.Second
	if t := os.Getenv("NPS_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("NPS_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		BaseURL:   baseURL,
		APIKey:    os.Getenv("NPS_API_KEY"),
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}

// HasAPIKey returns true if an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
