package providers

import (
	"context"

	"github.com/you/go-ride-agent/internal/config"
	"github.com/you/go-ride-agent/internal/geocode"
)

// Lyft is a placeholder adapter: the credential gate is real, the API call
// is not wired up yet. Both the client ID and secret are required before
// the integration can go live.
type Lyft struct {
	clientID     string
	clientSecret string
}

func NewLyft(cfg *config.Config) *Lyft {
	return &Lyft{
		clientID:     cfg.LyftClientID,
		clientSecret: cfg.LyftClientSecret,
	}
}

func (l *Lyft) Name() string { return ProviderLyft }

func (l *Lyft) Configured() bool {
	return l.clientID != "" && l.clientSecret != ""
}

// Quotes returns no quotes. Unconfigured is a silent, normal outcome; when
// configured it still returns nothing until the real Lyft call lands.
func (l *Lyft) Quotes(_ context.Context, _, _ geocode.Coordinate) ([]Quote, error) {
	if !l.Configured() {
		return nil, nil
	}
	return nil, nil // real Lyft integration later
}
