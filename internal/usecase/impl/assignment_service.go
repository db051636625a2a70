package impl

import (
	"context"
	"log/slog"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assignmentService implements the AssignmentUsecase interface.
type assignmentService struct {
	userRepo repository.UserRepository
	geocoder service.Geocoder
	logger   *slog.Logger
}

// AssignmentServiceParams holds dependencies for AssignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		userRepo: params.UserRepo,
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AssignNearest geocodes the delivery address and picks the nearest approved
// cobbler. An unresolvable address or an empty cobbler pool both yield a nil
// CobblerID; neither is an error.
func (srv *assignmentService) AssignNearest(ctx context.Context, deliveryAddress string) (*usecase.AssignmentResult, error) {
	coord, err := srv.geocoder.Geocode(ctx, deliveryAddress, false)
	if err != nil {
		if errors.Is(err, service.ErrNoMatch) {
			srv.log(ctx).Warn("Delivery address could not be located, order stays unassigned",
				slog.String("address", deliveryAddress))

			return &usecase.AssignmentResult{}, nil
		}

		// Provider failures degrade the same way: no assignment, not a failure.
		srv.log(ctx).Warn("Geocoding failed, order stays unassigned",
			slog.String("address", deliveryAddress), slog.Any("error", err))

		return &usecase.AssignmentResult{}, nil
	}

	return srv.NearestToCoordinate(ctx, *coord)
}

// NearestToCoordinate scans the eligible cobbler snapshot for the smallest
// great-circle distance. Strictly-smaller comparison keeps the first
// encountered cobbler on equal distances.
func (srv *assignmentService) NearestToCoordinate(ctx context.Context, coord entity.Coordinate) (*usecase.AssignmentResult, error) {
	cobblers, err := srv.userRepo.FindEligibleCobblers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load eligible cobblers")
	}
	if len(cobblers) == 0 {
		srv.log(ctx).Info("No eligible cobbler available for assignment")

		return &usecase.AssignmentResult{}, nil
	}

	origin := orb.Point{coord.Longitude, coord.Latitude}

	var bestID uuid.UUID
	bestKm := -1.0
	for _, cobbler := range cobblers {
		point := orb.Point{cobbler.Coordinate.Longitude, cobbler.Coordinate.Latitude}
		km := geo.DistanceHaversine(origin, point) / 1000

		if bestKm < 0 || km < bestKm {
			bestKm = km
			bestID = cobbler.ID
		}
	}

	srv.log(ctx).Debug("Nearest cobbler selected",
		slog.Any("cobblerID", bestID), slog.Float64("distanceKm", bestKm))

	return &usecase.AssignmentResult{CobblerID: &bestID, DistanceKm: bestKm}, nil
}
