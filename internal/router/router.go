// Package router mounts every HTTP and websocket route on a fiber app.
package router

import (
	"netplas-inventory/internal/handler"
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"
	"netplas-inventory/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Services is everything the routes need. Hub may be nil, in which case
// /ws is not mounted.
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	ProductStocks service.StockService[model.ProductStock]
	RawStocks     service.StockService[model.RawStock]
	Catalog       service.CatalogService
	Clients       service.PartyService[model.Client]
	Suppliers     service.PartyService[model.Supplier]
	Orders        service.OrderService
	Damage        service.DamageService
	Budget        service.BudgetService
	Hub           *ws.Hub
}

// mutate registers the handlers for both PUT and PATCH.
func mutate(r fiber.Router, path string, handlers ...fiber.Handler) {
	r.Put(path, handlers...)
	r.Patch(path, handlers...)
}

func Setup(app *fiber.App, s Services) {
	authHandler := handler.NewAuthHandler(s.Auth)
	userHandler := handler.NewUserHandler(s.Users)
	productStockHandler := handler.NewProductStockHandler(s.ProductStocks)
	rawStockHandler := handler.NewRawStockHandler(s.RawStocks)
	catalogHandler := handler.NewCatalogHandler(s.Catalog)
	clientHandler := handler.NewClientHandler(s.Clients)
	supplierHandler := handler.NewSupplierHandler(s.Suppliers)
	orderHandler := handler.NewOrderHandler(s.Orders)
	damageHandler := handler.NewDamageHandler(s.Damage)
	budgetHandler := handler.NewBudgetHandler(s.Budget)

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", middleware.OptionalAuth(s.Auth), authHandler.Register)
	auth.Post("/login", authHandler.Login)
	mutate(auth, "/password/reset", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(s.Auth))

	protected.Put("/auth/password", authHandler.ChangePassword)

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/me", userHandler.Me)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequireRole(model.RoleAdmin), userHandler.CreateUser)
	mutate(protected, "/users/:id", middleware.RequireRole(model.RoleAdmin), userHandler.UpdateUser)

	// Stocks
	protected.Get("/product-stocks", productStockHandler.List)
	protected.Post("/product-stocks", productStockHandler.Create)
	mutate(protected, "/product-stocks/:id", productStockHandler.Update)
	protected.Delete("/product-stocks/:id", productStockHandler.Delete)

	protected.Get("/raw-stocks", rawStockHandler.List)
	protected.Post("/raw-stocks", rawStockHandler.Create)
	mutate(protected, "/raw-stocks/:id", rawStockHandler.Update)
	protected.Delete("/raw-stocks/:id", rawStockHandler.Delete)

	// Catalog
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/products", catalogHandler.CreateProduct)
	mutate(protected, "/products/:id", catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", catalogHandler.DeleteProduct)

	protected.Get("/raws", catalogHandler.GetRaws)
	protected.Post("/raws", catalogHandler.CreateRaw)
	mutate(protected, "/raws/:id", catalogHandler.UpdateRaw)
	protected.Delete("/raws/:id", catalogHandler.DeleteRaw)

	protected.Get("/recipes", catalogHandler.GetRecipes)
	protected.Post("/recipes", catalogHandler.CreateRecipe)
	mutate(protected, "/recipes/:id", catalogHandler.UpdateRecipe)
	protected.Delete("/recipes/:id", catalogHandler.DeleteRecipe)

	protected.Post("/product-attributes", catalogHandler.AddAttribute)

	// Parties
	protected.Get("/clients", clientHandler.List)
	protected.Post("/clients", clientHandler.Create)
	mutate(protected, "/clients/:id", clientHandler.Update)
	protected.Delete("/clients/:id", clientHandler.Delete)

	protected.Get("/suppliers", supplierHandler.List)
	protected.Post("/suppliers", supplierHandler.Create)
	mutate(protected, "/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)

	// Orders
	protected.Get("/product-orders", orderHandler.GetProductOrders)
	protected.Post("/product-orders", orderHandler.CreateProductOrder)
	mutate(protected, "/product-orders/:id", orderHandler.UpdateProductOrder)
	protected.Delete("/product-orders/:id", orderHandler.DeleteProductOrder)

	protected.Get("/raw-orders", orderHandler.GetRawOrders)
	protected.Post("/raw-orders", orderHandler.CreateRawOrder)
	mutate(protected, "/raw-orders/:id", orderHandler.UpdateRawOrder)
	protected.Delete("/raw-orders/:id", orderHandler.DeleteRawOrder)

	// Damaged goods
	protected.Get("/damaged-products", damageHandler.GetDamagedProducts)
	protected.Post("/damaged-products", damageHandler.CreateDamagedProduct)
	mutate(protected, "/damaged-products/:id", damageHandler.UpdateDamagedProduct)
	protected.Delete("/damaged-products/:id", damageHandler.DeleteDamagedProduct)

	protected.Get("/damaged-raws", damageHandler.GetDamagedRaws)
	protected.Post("/damaged-raws", damageHandler.CreateDamagedRaw)
	mutate(protected, "/damaged-raws/:id", damageHandler.UpdateDamagedRaw)
	protected.Delete("/damaged-raws/:id", damageHandler.DeleteDamagedRaw)

	// Budget
	protected.Get("/budget/total", budgetHandler.GetTotal)
	protected.Get("/budget/detail", budgetHandler.GetDetail)
	protected.Get("/budget/income", budgetHandler.GetIncome)
	protected.Get("/budget/outcome", budgetHandler.GetOutcome)

	// WebSocket Route
	if s.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(s.Hub.Handle))
	}
}
