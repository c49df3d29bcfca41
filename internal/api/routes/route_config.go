package routes

import (
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/handlers"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ProductHandler      handlers.ProductHandler
	PantryHandler       handlers.PantryHandler
	ShoppingListHandler handlers.ShoppingListHandler
	DashboardHandler    handlers.DashboardHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.Pantry()
	c.ShoppingList()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/products")
	// literal routes before parameterized ones
	{
		products.Get("/search", c.ProductHandler.SearchProducts)
		products.Get("/category/:category", c.ProductHandler.GetProductsByCategory)
		products.Get("", c.ProductHandler.GetProducts)
		products.Post("", c.ProductHandler.CreateProduct)
		products.Get("/:id", c.ProductHandler.GetProductDetails)
		products.Put("/:id", c.ProductHandler.UpdateProduct)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/pantry")
	{
		pantry.Get("/search", c.PantryHandler.SearchPantryItems)
		pantry.Get("/product/:productId", c.PantryHandler.GetPantryItemsByProduct)
		pantry.Post("/quick-purchase", c.PantryHandler.QuickPurchase)
		pantry.Post("/consume-batch", c.PantryHandler.ConsumeBatch)
		pantry.Post("/discard-expired", c.PantryHandler.DiscardExpired)
		pantry.Get("", c.PantryHandler.GetPantryItems)
		pantry.Post("", c.PantryHandler.AddPantryItem)
		pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
		pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Post("/:id/consume", c.PantryHandler.Consume)
		pantry.Post("/:id/discard", c.PantryHandler.Discard)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/shopping-list")
	{
		shoppingList.Get("/pending", c.ShoppingListHandler.GetPendingItems)
		shoppingList.Post("/purchased-batch", c.ShoppingListHandler.MarkPurchasedBatch)
		shoppingList.Delete("/clear-purchased", c.ShoppingListHandler.ClearPurchased)
		shoppingList.Get("", c.ShoppingListHandler.GetShoppingListItems)
		shoppingList.Post("", c.ShoppingListHandler.AddShoppingListItem)
		shoppingList.Get("/:id", c.ShoppingListHandler.GetShoppingListItemDetails)
		shoppingList.Put("/:id", c.ShoppingListHandler.UpdateShoppingListItem)
		shoppingList.Post("/:id/purchased", c.ShoppingListHandler.MarkPurchased)
		shoppingList.Post("/:id/cancel", c.ShoppingListHandler.Cancel)
		shoppingList.Delete("/:id", c.ShoppingListHandler.DeleteShoppingListItem)
	}
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/dashboard")
	{
		dashboard.Get("/alerts", c.DashboardHandler.GetAlerts)
		dashboard.Post("/alerts/add-to-shopping-list", c.DashboardHandler.GenerateShoppingList)
		dashboard.Post("/alerts/add-selected-to-shopping-list", c.DashboardHandler.AddSelectedAlerts)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
