package service

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoMatch is returned by a Geocoder when the address yields no usable result.
// Transport failures are folded into this error as well; callers treat a miss
// and an outage the same way.
var ErrNoMatch = errors.New("no geocoding match")

// Geocoder resolves a postal address into a coordinate.
type Geocoder interface {
	// Geocode resolves an address. When strict is true the address must match
	// a house-number precision result; a looser match returns ErrNoMatch and
	// no fallback queries are attempted.
	Geocode(ctx context.Context, address string, strict bool) (*entity.Coordinate, error)
}
