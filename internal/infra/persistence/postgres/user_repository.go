// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their associated profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ClientProfile").
		Preload("CobblerProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ClientProfile").
		Preload("CobblerProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its associated profiles, to the database.
// GORM's Create with associations inserts into users, client_profiles and/or
// cobbler_profiles within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.ClientProfile != nil && userM.ClientProfile != nil {
		user.ClientProfile.UserID = userM.ClientProfile.UserID
		user.ClientProfile.UpdatedAt = userM.ClientProfile.UpdatedAt
	}
	if user.CobblerProfile != nil && userM.CobblerProfile != nil {
		user.CobblerProfile.UserID = userM.CobblerProfile.UserID
		user.CobblerProfile.UpdatedAt = userM.CobblerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateCobblerProfile modifies an existing cobbler profile row.
func (repo *userRepository) UpdateCobblerProfile(ctx context.Context, profile *entity.CobblerProfile) error {
	profileM := fromCobblerProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.CobblerProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cobbler profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListCobblersByStatus retrieves all users with a cobbler profile in the given status.
func (repo *userRepository) ListCobblersByStatus(ctx context.Context, status entity.PartnerStatus) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CobblerProfile").
		Joins("JOIN cobbler_profiles ON cobbler_profiles.user_id = users.id").
		Where("cobbler_profiles.status = ?", status.String()).
		Order("users.created_at").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cobblers by status")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindEligibleCobblers returns the id and workshop coordinate of every
// approved cobbler whose position is known.
func (repo *userRepository) FindEligibleCobblers(ctx context.Context) ([]*entity.EligibleCobbler, error) {
	var rows []struct {
		ID        uuid.UUID
		Latitude  float64
		Longitude float64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("users.id, users.latitude, users.longitude").
		Joins("JOIN cobbler_profiles ON cobbler_profiles.user_id = users.id").
		Where("cobbler_profiles.status = ?", entity.PartnerStatusApproved.String()).
		Where("users.latitude IS NOT NULL AND users.longitude IS NOT NULL").
		Order("users.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find eligible cobblers")
	}

	cobblers := make([]*entity.EligibleCobbler, 0, len(rows))
	for _, row := range rows {
		cobblers = append(cobblers, &entity.EligibleCobbler{
			ID: row.ID,
			Coordinate: entity.Coordinate{
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
			},
		})
	}

	return cobblers, nil
}

// CountClients returns the total number of users holding a client profile.
func (repo *userRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClientProfileModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count clients")
	}

	return count, nil
}

// CountCobblersByStatus returns the number of cobbler profiles in the given status.
func (repo *userRepository) CountCobblersByStatus(ctx context.Context, status entity.PartnerStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CobblerProfileModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cobblers by status")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var coord *entity.Coordinate
	if data.Latitude != nil && data.Longitude != nil {
		coord = &entity.Coordinate{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		Phone:          data.Phone,
		Address:        data.Address,
		Coordinate:     coord,
		IsAdmin:        data.IsAdmin,
		ClientProfile:  toClientProfileDomain(data.ClientProfile),
		CobblerProfile: toCobblerProfileDomain(data.CobblerProfile),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var lat, lon *float64
	if data.Coordinate != nil {
		lat = &data.Coordinate.Latitude
		lon = &data.Coordinate.Longitude
	}

	return &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		Phone:          data.Phone,
		Address:        data.Address,
		Latitude:       lat,
		Longitude:      lon,
		IsAdmin:        data.IsAdmin,
		ClientProfile:  fromClientProfileDomain(data.ClientProfile),
		CobblerProfile: fromCobblerProfileDomain(data.CobblerProfile),
	}
}

// toClientProfileDomain converts a GORM ClientProfileModel to a domain ClientProfile entity.
func toClientProfileDomain(data *model.ClientProfileModel) *entity.ClientProfile {
	if data == nil {
		return nil
	}

	return &entity.ClientProfile{
		UserID:          data.UserID,
		DeliveryAddress: data.DeliveryAddress,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromClientProfileDomain converts a domain ClientProfile entity to a GORM ClientProfileModel.
func fromClientProfileDomain(data *entity.ClientProfile) *model.ClientProfileModel {
	if data == nil {
		return nil
	}

	return &model.ClientProfileModel{
		UserID:          data.UserID,
		DeliveryAddress: data.DeliveryAddress,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toCobblerProfileDomain converts a GORM CobblerProfileModel to a domain CobblerProfile entity.
func toCobblerProfileDomain(data *model.CobblerProfileModel) *entity.CobblerProfile {
	if data == nil {
		return nil
	}

	return &entity.CobblerProfile{
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		SiretNumber:     data.SiretNumber,
		Status:          entity.PartnerStatus(data.Status),
		RejectionReason: data.RejectionReason,
		BankAccount:     data.BankAccount,
		StripeAccountID: data.StripeAccountID,
		IDCardFrontKey:  data.IDCardFrontKey,
		IDCardBackKey:   data.IDCardBackKey,
		RegistryDocKey:  data.RegistryDocKey,
		TermsSignedAt:   data.TermsSignedAt,
		TermsSignedIP:   data.TermsSignedIP,
		ApprovedAt:      data.ApprovedAt,
		RejectedAt:      data.RejectedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCobblerProfileDomain converts a domain CobblerProfile entity to a GORM CobblerProfileModel.
func fromCobblerProfileDomain(data *entity.CobblerProfile) *model.CobblerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CobblerProfileModel{
		UserID:          data.UserID,
		CompanyName:     data.CompanyName,
		SiretNumber:     data.SiretNumber,
		Status:          data.Status.String(),
		RejectionReason: data.RejectionReason,
		BankAccount:     data.BankAccount,
		StripeAccountID: data.StripeAccountID,
		IDCardFrontKey:  data.IDCardFrontKey,
		IDCardBackKey:   data.IDCardBackKey,
		RegistryDocKey:  data.RegistryDocKey,
		TermsSignedAt:   data.TermsSignedAt,
		TermsSignedIP:   data.TermsSignedIP,
		ApprovedAt:      data.ApprovedAt,
		RejectedAt:      data.RejectedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
