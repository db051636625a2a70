package postgres

import (
	"context"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRowID is the fixed primary key of the single platform_settings row.
const settingsRowID = 1

// settingsRepository implements the domain.SettingsRepository interface using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the current settings, falling back to the defaults when the
// document has never been written.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel
	err := repo.db.WithContext(ctx).Where("id = ?", settingsRowID).First(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultSettings(), nil
		}

		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Save stores the settings, replacing the previous document.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save platform settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM SettingsModel to a domain Settings entity.
func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	if data == nil {
		return nil
	}

	return &entity.Settings{
		DeliveryStandardPrice: data.StandardDeliveryPrice,
		DeliveryExpressPrice:  data.ExpressDeliveryPrice,
		DeliveryStandardDays:  data.StandardDeliveryDays,
		DeliveryExpressDays:   data.ExpressDeliveryDays,
		PlatformCommission:    data.CommissionPercent,
		Currency:              data.Currency,
		VATRate:               data.VATPercent,
		SupportEmail:          data.SupportEmail,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromSettingsDomain converts a domain Settings entity to a GORM model for persistence.
func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	if data == nil {
		return nil
	}

	return &model.SettingsModel{
		ID:                    settingsRowID,
		StandardDeliveryPrice: data.DeliveryStandardPrice,
		ExpressDeliveryPrice:  data.DeliveryExpressPrice,
		StandardDeliveryDays:  data.DeliveryStandardDays,
		ExpressDeliveryDays:   data.DeliveryExpressDays,
		CommissionPercent:     data.PlatformCommission,
		Currency:              data.Currency,
		VATPercent:            data.VATRate,
		SupportEmail:          data.SupportEmail,
	}
}
