package fx

import (
	"context"

	"Mobilia/config"
	"Mobilia/internal/logger"
	"Mobilia/internal/middleware"
	"Mobilia/internal/routes"

	docs "Mobilia/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	apiRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimiter))
	{
		paymentMethods := api.Group("/payment-methods")
		{
			paymentMethods.POST("", handler.CreatePaymentMethod)
			paymentMethods.GET("", handler.ListPaymentMethods)
			paymentMethods.GET("/:id", handler.GetPaymentMethod)
			paymentMethods.PATCH("/:id", handler.UpdatePaymentMethod)
		}

		cardBrands := api.Group("/card-brands")
		{
			cardBrands.POST("", handler.CreateCardBrand)
			cardBrands.GET("", handler.ListCardBrands)
			cardBrands.GET("/:id/fee-rules", handler.ListCardFeeRules)
		}

		feeRules := api.Group("/fee-rules")
		{
			feeRules.POST("", handler.CreateCardFeeRule)
			feeRules.DELETE("/:id", handler.DeleteCardFeeRule)
		}

		api.POST("/payment-plans/simulate", handler.SimulatePlan)

		products := api.Group("/products")
		{
			products.POST("", handler.CreateProduct)
			products.GET("", handler.ListProducts)
			products.GET("/:id", handler.GetProduct)
			products.PATCH("/:id", handler.UpdateProduct)
			products.POST("/:id/stock-in", handler.StockIn)
			products.POST("/:id/stock-out", handler.StockOut)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("/tree", handler.GetCategoryTree)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", handler.CreateCustomer)
			customers.GET("", handler.ListCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.PATCH("/:id", handler.UpdateCustomer)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.POST("", handler.CreateSupplier)
			suppliers.GET("", handler.ListSuppliers)
			suppliers.GET("/:id", handler.GetSupplier)
		}

		employees := api.Group("/employees")
		{
			employees.POST("", handler.CreateEmployee)
			employees.GET("", handler.ListEmployees)
			employees.GET("/:id", handler.GetEmployee)
			employees.PATCH("/:id", handler.UpdateEmployee)
			employees.GET("/:id/commissions", handler.ListCommissionsByEmployee)
		}

		sales := api.Group("/sales")
		{
			sales.POST("", handler.CreateSale)
			sales.GET("", handler.ListSales)
			sales.GET("/:id", handler.GetSale)
			sales.POST("/:id/cancel", handler.CancelSale)
			sales.GET("/:id/entries", handler.ListEntriesBySale)
			sales.GET("/:id/deliveries", handler.ListDeliveriesBySale)
			sales.GET("/:id/assemblies", handler.ListAssembliesBySale)
		}

		purchases := api.Group("/purchases")
		{
			purchases.POST("", handler.CreatePurchase)
			purchases.GET("", handler.ListPurchases)
			purchases.GET("/:id", handler.GetPurchase)
			purchases.POST("/:id/cancel", handler.CancelPurchase)
			purchases.GET("/:id/entries", handler.ListEntriesByPurchase)
		}

		deliveries := api.Group("/deliveries")
		{
			deliveries.POST("", handler.CreateDelivery)
			deliveries.GET("", handler.ListDeliveries)
			deliveries.GET("/:id", handler.GetDelivery)
			deliveries.POST("/:id/schedule", handler.ScheduleDelivery)
			deliveries.PATCH("/:id/status", handler.ChangeDeliveryStatus)
		}

		assemblies := api.Group("/assemblies")
		{
			assemblies.POST("", handler.CreateAssembly)
			assemblies.GET("", handler.ListAssemblies)
			assemblies.GET("/:id", handler.GetAssembly)
			assemblies.POST("/:id/schedule", handler.ScheduleAssembly)
			assemblies.PATCH("/:id/status", handler.ChangeAssemblyStatus)
		}

		entries := api.Group("/entries")
		{
			entries.GET("", handler.ListEntries)
			entries.GET("/:id", handler.GetEntry)
			entries.POST("/:id/settle", handler.SettleEntry)
			entries.POST("/:id/reopen", handler.ReopenEntry)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
