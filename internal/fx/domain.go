package fx

import (
	"Mobilia/internal/domain/assembly"
	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/domain/delivery"
	"Mobilia/internal/domain/finance"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/purchase"
	"Mobilia/internal/domain/sale"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		payment.NewService,
		catalog.NewService,
		person.NewService,
		finance.NewService,
		newSaleService,
		newPurchaseService,
		newDeliveryService,
		newAssemblyService,
	),
)

func newSaleService(
	repo sale.Repository,
	catalogSvc *catalog.Service,
	personSvc *person.Service,
	paymentSvc *payment.Service,
	financeSvc *finance.Service,
) *sale.Service {
	return sale.NewService(repo, catalogSvc, personSvc, paymentSvc, financeSvc)
}

func newPurchaseService(
	repo purchase.Repository,
	catalogSvc *catalog.Service,
	personSvc *person.Service,
	financeSvc *finance.Service,
) *purchase.Service {
	return purchase.NewService(repo, catalogSvc, personSvc, financeSvc)
}

func newDeliveryService(
	repo delivery.Repository,
	saleSvc *sale.Service,
	personSvc *person.Service,
) *delivery.Service {
	return delivery.NewService(repo, saleSvc, personSvc)
}

func newAssemblyService(
	repo assembly.Repository,
	saleSvc *sale.Service,
	catalogSvc *catalog.Service,
	personSvc *person.Service,
) *assembly.Service {
	return assembly.NewService(repo, saleSvc, catalogSvc, personSvc)
}
