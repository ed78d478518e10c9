package providers

import (
	"context"

	"github.com/you/go-ride-agent/internal/config"
	"github.com/you/go-ride-agent/internal/geocode"
)

// Uber is a placeholder adapter like Lyft. Either of the two token kinds
// counts as configured.
type Uber struct {
	bearerToken string
	serverToken string
}

func NewUber(cfg *config.Config) *Uber {
	return &Uber{
		bearerToken: cfg.UberBearerToken,
		serverToken: cfg.UberServerToken,
	}
}

func (u *Uber) Name() string { return ProviderUber }

func (u *Uber) Configured() bool {
	return u.bearerToken != "" || u.serverToken != ""
}

// Quotes returns no quotes; see Lyft.Quotes.
func (u *Uber) Quotes(_ context.Context, _, _ geocode.Coordinate) ([]Quote, error) {
	if !u.Configured() {
		return nil, nil
	}
	return nil, nil // real Uber integration later
}
