package fx

import (
	"time"

	"Mobilia/internal/domain/assembly"
	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/domain/delivery"
	"Mobilia/internal/domain/finance"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/purchase"
	"Mobilia/internal/domain/sale"
	"Mobilia/internal/middleware"
	"Mobilia/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP e o rate limiter da API
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newApiRateLimiter,
	),
)

func newHandler(
	paymentSvc *payment.Service,
	catalogSvc *catalog.Service,
	personSvc *person.Service,
	saleSvc *sale.Service,
	purchaseSvc *purchase.Service,
	deliverySvc *delivery.Service,
	assemblySvc *assembly.Service,
	financeSvc *finance.Service,
) *routes.Handler {
	return &routes.Handler{
		PaymentService:  paymentSvc,
		CatalogService:  catalogSvc,
		PersonService:   personSvc,
		SaleService:     saleSvc,
		PurchaseService: purchaseSvc,
		DeliveryService: deliverySvc,
		AssemblyService: assemblySvc,
		FinanceService:  financeSvc,
	}
}

func newApiRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
