package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/recipe"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	MovementUC     *usecase.MovementUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockUC        *inventory.StockUseCase
	ProduceUC      *inventory.ProduceUseCase
	ReconcileUC    *inventory.ReconcileUseCase
	RecipeUC       *recipe.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Warehouses (protegido; crear es solo ADMIN)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)

	// Products (protegido; escrituras solo ADMIN)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/export", productHandler.Export)
	products.Post("/", adminOnly, productHandler.Create)
	products.Post("/import", adminOnly, productHandler.Import)
	products.Get("/:id", productHandler.GetByID)

	// Movements (protegido; libro append-only, sin PUT ni DELETE)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Record)

	// Stock derivado (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.WarehouseUC, deps.ProductUC)
	stock.Get("/", stockHandler.Get)
	stock.Get("/export", stockHandler.Export)

	// Recipes (protegido; escrituras solo ADMIN)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/", adminOnly, recipeHandler.Create)
	recipes.Put("/:id", adminOnly, recipeHandler.Update)
	recipes.Delete("/:id", adminOnly, recipeHandler.Delete)

	// Production y toma de inventario (protegido)
	productionHandler := NewProductionHandler(deps.ProduceUC, deps.ReconcileUC, deps.MovementUC)
	protected.Post("/production", productionHandler.Produce)
	protected.Post("/inventory-counts", productionHandler.Reconcile)

	// Users (protegido; todo solo ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)
}
