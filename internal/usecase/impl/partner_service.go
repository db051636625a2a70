package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Vetting document kinds accepted for a cobbler application.
const (
	documentKindIDCardFront = "id_card_front"
	documentKindIDCardBack  = "id_card_back"
	documentKindRegistryDoc = "registry_doc"
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	geocoder    service.Geocoder
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	Geocoder    service.Geocoder
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		geocoder:    params.Geocoder,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateWorkshop applies the provided fields to the cobbler's own profile.
// An address change must geocode strictly: a workshop the platform cannot
// place on the map would silently fall out of assignment.
func (srv *partnerService) UpdateWorkshop(ctx context.Context, cobblerID uuid.UUID, input usecase.UpdateWorkshopInput) (*entity.User, error) {
	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findCobbler(ctx, userRepo, cobblerID)
		if err != nil {
			return err
		}

		if input.CompanyName != nil {
			user.CobblerProfile.CompanyName = *input.CompanyName
		}
		if input.BankAccount != nil {
			user.CobblerProfile.BankAccount = *input.BankAccount
		}
		if input.Address != nil {
			coord, err := srv.geocoder.Geocode(ctx, *input.Address, true)
			if err != nil {
				if errors.Is(err, service.ErrNoMatch) {
					return domainerrors.ErrAddressNotGeocodable.WrapMessage("workshop address did not geocode")
				}

				return errors.Wrap(err, "failed to geocode workshop address")
			}
			user.Address = *input.Address
			user.Coordinate = coord
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update workshop")
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute workshop update transaction")
	}

	srv.log(ctx).Info("Workshop updated", slog.Any("cobblerID", cobblerID))

	return updatedUser, nil
}

// UploadDocument stores one vetting document and records its key on the profile.
func (srv *partnerService) UploadDocument(ctx context.Context, cobblerID uuid.UUID, input usecase.UploadDocumentInput) error {
	if input.Kind != documentKindIDCardFront && input.Kind != documentKindIDCardBack && input.Kind != documentKindRegistryDoc {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown document kind")
	}

	key := fmt.Sprintf("partners/%s/%s", cobblerID, input.Kind)
	if err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.Content); err != nil {
		return errors.Wrap(err, "failed to store vetting document")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findCobbler(ctx, userRepo, cobblerID)
		if err != nil {
			return err
		}

		switch input.Kind {
		case documentKindIDCardFront:
			user.CobblerProfile.IDCardFrontKey = key
		case documentKindIDCardBack:
			user.CobblerProfile.IDCardBackKey = key
		case documentKindRegistryDoc:
			user.CobblerProfile.RegistryDocKey = key
		}

		return userRepo.UpdateCobblerProfile(ctx, user.CobblerProfile)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute document upload transaction")
	}

	srv.log(ctx).Info("Vetting document stored",
		slog.Any("cobblerID", cobblerID), slog.String("kind", input.Kind))

	return nil
}

// SignTerms records the partner terms acceptance with its source IP.
func (srv *partnerService) SignTerms(ctx context.Context, cobblerID uuid.UUID, ip string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findCobbler(ctx, userRepo, cobblerID)
		if err != nil {
			return err
		}

		now := time.Now()
		user.CobblerProfile.TermsSignedAt = &now
		user.CobblerProfile.TermsSignedIP = ip

		return userRepo.UpdateCobblerProfile(ctx, user.CobblerProfile)
	})
}

// ListPendingCobblers returns the applications waiting for a decision.
func (srv *partnerService) ListPendingCobblers(ctx context.Context) ([]*entity.User, error) {
	return srv.ListCobblers(ctx, entity.PartnerStatusPending)
}

// ListCobblers returns every cobbler account in the given vetting status.
func (srv *partnerService) ListCobblers(ctx context.Context, status entity.PartnerStatus) ([]*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown partner status")
	}

	users, err := srv.userRepo.ListCobblersByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cobblers")
	}

	return users, nil
}

// GetCobbler loads one cobbler account with its profile.
func (srv *partnerService) GetCobbler(ctx context.Context, cobblerID uuid.UUID) (*entity.User, error) {
	user, err := srv.findCobbler(ctx, srv.userRepo, cobblerID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ApproveCobbler marks the application approved and tries to place the
// workshop on the map. A geocoding miss does not block the approval; the
// cobbler simply stays out of assignment until the address is fixed.
func (srv *partnerService) ApproveCobbler(ctx context.Context, cobblerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findCobbler(ctx, userRepo, cobblerID)
		if err != nil {
			return err
		}
		if user.CobblerProfile.Status != entity.PartnerStatusPending {
			return domainerrors.ErrCobblerNotPending.WrapMessage("only pending applications can be approved")
		}

		now := time.Now()
		user.CobblerProfile.Status = entity.PartnerStatusApproved
		user.CobblerProfile.ApprovedAt = &now
		user.CobblerProfile.RejectionReason = ""

		if user.Coordinate == nil && user.Address != "" {
			coord, err := srv.geocoder.Geocode(ctx, user.Address, false)
			if err == nil {
				user.Coordinate = coord
			} else {
				srv.log(ctx).Warn("Workshop address did not geocode at approval",
					slog.Any("cobblerID", cobblerID), slog.Any("error", err))
			}
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to approve cobbler")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute approval transaction")
	}

	srv.log(ctx).Info("Cobbler approved", slog.Any("cobblerID", cobblerID))

	return nil
}

// RejectCobbler marks the application rejected with the administrator's reason.
func (srv *partnerService) RejectCobbler(ctx context.Context, cobblerID uuid.UUID, input usecase.RejectCobblerInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findCobbler(ctx, userRepo, cobblerID)
		if err != nil {
			return err
		}
		if user.CobblerProfile.Status != entity.PartnerStatusPending {
			return domainerrors.ErrCobblerNotPending.WrapMessage("only pending applications can be rejected")
		}

		now := time.Now()
		user.CobblerProfile.Status = entity.PartnerStatusRejected
		user.CobblerProfile.RejectedAt = &now
		user.CobblerProfile.RejectionReason = input.Reason

		return userRepo.UpdateCobblerProfile(ctx, user.CobblerProfile)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute rejection transaction")
	}

	srv.log(ctx).Info("Cobbler rejected", slog.Any("cobblerID", cobblerID))

	return nil
}

// DownloadDocument streams a stored vetting document back to an administrator.
func (srv *partnerService) DownloadDocument(ctx context.Context, cobblerID uuid.UUID, kind string) (*usecase.DocumentOutput, error) {
	user, err := srv.findCobbler(ctx, srv.userRepo, cobblerID)
	if err != nil {
		return nil, err
	}

	var key string
	switch kind {
	case documentKindIDCardFront:
		key = user.CobblerProfile.IDCardFrontKey
	case documentKindIDCardBack:
		key = user.CobblerProfile.IDCardBackKey
	case documentKindRegistryDoc:
		key = user.CobblerProfile.RegistryDocKey
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown document kind")
	}
	if key == "" {
		return nil, domainerrors.ErrDocumentNotFound.WrapMessage("document was never uploaded")
	}

	content, contentType, err := srv.fileStorage.Download(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vetting document")
	}

	return &usecase.DocumentOutput{ContentType: contentType, Content: content}, nil
}

// findCobbler loads a user and checks it carries a cobbler profile.
func (srv *partnerService) findCobbler(ctx context.Context, userRepo repository.UserRepository, cobblerID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, cobblerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCobblerNotFound.WrapMessage("no user with this id")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.CobblerProfile == nil {
		return nil, domainerrors.ErrCobblerNotFound.WrapMessage("user has no cobbler profile")
	}

	return user, nil
}
