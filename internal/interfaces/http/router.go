package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/store-ledger/internal/application/auth"
	"github.com/tu-usuario/store-ledger/internal/application/ledger"
	"github.com/tu-usuario/store-ledger/internal/application/usecase"
	"github.com/tu-usuario/store-ledger/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	StoreUC       *usecase.StoreUseCase
	ProductUC     *usecase.ProductUseCase
	StockUC       *usecase.StockUseCase
	TransactionUC *usecase.TransactionUseCase
	PostingEngine *ledger.PostingEngine
	JWTSecret     string
}

// Router registra las rutas de la API. La autorización por acción corre sobre
// la política de acceso central: cada ruta protegida declara qué acción
// ejecuta y el rol del token decide.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: lectura pública, escritura de Supplier o Admin.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", AuthMiddleware(deps.JWTSecret), RequireAction(policy.ActionProductCreate), productHandler.Create)
	products.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireAction(policy.ActionProductUpdate), productHandler.Update)
	products.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireAction(policy.ActionProductDelete), productHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores: lectura autenticada, escritura solo Admin.
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.StockUC)
	stores.Get("/", RequireAction(policy.ActionStoreRead), storeHandler.List)
	stores.Get("/:id", RequireAction(policy.ActionStoreRead), storeHandler.GetByID)
	stores.Get("/:id/stock", RequireAction(policy.ActionStockRead), storeHandler.Stock)
	stores.Post("/", RequireAction(policy.ActionStoreCreate), storeHandler.Create)
	stores.Put("/:id", RequireAction(policy.ActionStoreUpdate), storeHandler.Update)
	stores.Delete("/:id", RequireAction(policy.ActionStoreDelete), storeHandler.Delete)

	// Transactions: posting y lecturas del libro mayor.
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.PostingEngine, deps.TransactionUC)
	transactions.Post("/", RequireAction(policy.ActionTransactionPost), transactionHandler.Post)
	transactions.Get("/", RequireAction(policy.ActionTransactionRead), transactionHandler.List)
	transactions.Get("/:id", RequireAction(policy.ActionTransactionRead), transactionHandler.GetByID)
}
