package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves a human-readable address into geographic coordinates.
// Implementations consume an external provider as a black box.
type Geocoder interface {
	// Resolve looks up the address and returns its coordinates.
	// found is false when the provider has no match or the lookup timed out;
	// only transport or decoding failures produce a non-nil error.
	Resolve(ctx context.Context, fullAddress string) (point orb.Point, found bool, err error)
}
