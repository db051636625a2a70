package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentResult reports the outcome of a nearest-cobbler search.
type AssignmentResult struct {
	CobblerID  *uuid.UUID
	DistanceKm float64
}

// AssignmentUsecase picks the cobbler closest to a client's delivery address.
type AssignmentUsecase interface {
	// AssignNearest geocodes the address and returns the approved cobbler
	// nearest to it. A nil CobblerID means no assignment could be made, which
	// is a normal outcome and never an error: unresolvable addresses and an
	// empty cobbler pool both land there.
	AssignNearest(ctx context.Context, deliveryAddress string) (*AssignmentResult, error)

	// NearestToCoordinate returns the approved cobbler nearest to an already
	// known position.
	NearestToCoordinate(ctx context.Context, coord entity.Coordinate) (*AssignmentResult, error)
}
