package main

import (
	"cordonnier/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ClientProfileModel{},
		model.CobblerProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.RepairServiceModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.PaymentTransactionModel{},
		model.ReviewModel{},
		model.MediaItemModel{},
		model.SettingsModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
