package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/billing"
	"github.com/atelieplus/atelie-api/internal/application/fiscal"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpresaUC      *usecase.EmpresaUseCase
	CustomerUC     *usecase.CustomerUseCase
	ProductUC      *usecase.ProductUseCase
	QuickServiceUC *usecase.QuickServiceUseCase
	InventoryUC    *usecase.InventoryUseCase
	FinanceUC      *usecase.FinanceUseCase
	ReferralUC     *usecase.ReferralUseCase
	UploadUC       *usecase.UploadUseCase
	MovementUC     *inventory.RegisterMovementUseCase
	OrderUC        *orders.OrderUseCase
	QuoteUC        *orders.QuoteUseCase
	ExecutionUC    *orders.ServiceExecutionUseCase
	FiscalUC       *fiscal.FiscalUseCase
	BillingUC      *billing.BillingUseCase
	JWTSecret      string
}

// Router registra as rotas da API. O cadastro de ateliê é público; todo o
// resto exige Bearer Token, e os módulos SaaS são verificados por grupo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Empresas (cadastro público)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	api.Post("/empresas", empresaHandler.Create)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/empresas", empresaHandler.List)
	protected.Get("/empresas/me", empresaHandler.Me)
	protected.Put("/empresas/me/modules/:name", empresaHandler.SetModule)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Catálogo de produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Serviços rápidos (execução avulsa dispara a baixa de estoque)
	services := protected.Group("/services")
	quickServiceHandler := NewQuickServiceHandler(deps.QuickServiceUC, deps.ExecutionUC)
	services.Post("/", quickServiceHandler.Create)
	services.Get("/", quickServiceHandler.List)
	services.Get("/:id", quickServiceHandler.GetByID)
	services.Put("/:id", quickServiceHandler.Update)
	services.Delete("/:id", quickServiceHandler.Delete)
	services.Post("/:id/execute", quickServiceHandler.Execute)

	// Estoque (módulo inventory)
	invGroup := protected.Group("/inventory", RequireModule(entity.ModuleInventory, deps.EmpresaUC))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.MovementUC)
	invGroup.Post("/items", inventoryHandler.CreateItem)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Get("/items/below-minimum", inventoryHandler.ListBelowMinimum)
	invGroup.Get("/items/:id", inventoryHandler.GetItem)
	invGroup.Put("/items/:id", inventoryHandler.UpdateItem)
	invGroup.Delete("/items/:id", inventoryHandler.DeleteItem)
	invGroup.Get("/items/:id/movements", inventoryHandler.ListMovements)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovementsByOrigin)

	// Pedidos e orçamentos (módulo orders)
	ordersGroup := protected.Group("/orders", RequireModule(entity.ModuleOrders, deps.EmpresaUC))
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)

	quotes := protected.Group("/quotes", RequireModule(entity.ModuleOrders, deps.EmpresaUC))
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id/status", quoteHandler.UpdateStatus)
	quotes.Post("/:id/convert", quoteHandler.Convert)
	quotes.Get("/:id/pdf", quoteHandler.RenderPDF)

	// Financeiro (módulo finance)
	finance := protected.Group("/finance", RequireModule(entity.ModuleFinance, deps.EmpresaUC))
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Post("/payables", financeHandler.CreatePayable)
	finance.Get("/payables", financeHandler.ListPayables)
	finance.Post("/payables/:id/pay", financeHandler.PayPayable)
	finance.Post("/receivables", financeHandler.CreateReceivable)
	finance.Get("/receivables", financeHandler.ListReceivables)
	finance.Post("/receivables/:id/pay", financeHandler.PayReceivable)
	finance.Get("/summary", financeHandler.Summary)

	// Notas fiscais (módulo fiscal)
	fiscalGroup := protected.Group("/fiscal", RequireModule(entity.ModuleFiscal, deps.EmpresaUC))
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	fiscalGroup.Post("/notes", fiscalHandler.Emit)
	fiscalGroup.Get("/notes", fiscalHandler.List)
	fiscalGroup.Get("/notes/:id", fiscalHandler.GetByID)
	fiscalGroup.Post("/notes/:id/refresh", fiscalHandler.Refresh)

	// Assinatura do próprio ateliê (sempre acessível; é como se contrata os módulos)
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingUC)
	billingGroup.Get("/plans", billingHandler.ListPlans)
	billingGroup.Post("/subscriptions", billingHandler.Subscribe)
	billingGroup.Get("/subscriptions/current", billingHandler.Current)
	billingGroup.Put("/subscriptions/plan", billingHandler.ChangePlan)
	billingGroup.Delete("/subscriptions", billingHandler.Cancel)

	// Programa de indicações (módulo referral)
	referrals := protected.Group("/referrals", RequireModule(entity.ModuleReferral, deps.EmpresaUC))
	referralHandler := NewReferralHandler(deps.ReferralUC)
	referrals.Post("/", referralHandler.Register)
	referrals.Get("/", referralHandler.List)
	referrals.Get("/account", referralHandler.Account)
	referrals.Post("/rewards", referralHandler.RedeemReward)
	referrals.Get("/rewards", referralHandler.ListRewards)

	// Uploads
	uploads := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.UploadUC)
	uploads.Post("/:code", uploadHandler.Upload)
}
