package fx

import (
	"Mobilia/config"
	"Mobilia/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		infrastructure.NewPaymentRepository,
		infrastructure.NewCatalogRepository,
		infrastructure.NewPersonRepository,
		infrastructure.NewSaleRepository,
		infrastructure.NewPurchaseRepository,
		infrastructure.NewDeliveryRepository,
		infrastructure.NewAssemblyRepository,
		infrastructure.NewFinanceRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}
