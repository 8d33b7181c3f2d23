package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/punam06/chatbot-inovatex/internal/api/handlers"
	"github.com/punam06/chatbot-inovatex/internal/middleware"
	"github.com/punam06/chatbot-inovatex/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	CatalogHandler   handlers.CatalogHandler
	InventoryHandler handlers.InventoryHandler
	ChatHandler      handlers.ChatHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Inventory()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")
	catalog.Get("", c.CatalogHandler.GetCatalogItems)
	catalog.Get("/:id", c.CatalogHandler.GetCatalogItemDetails)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	inventory.Post("", c.InventoryHandler.PurchaseItem)
	inventory.Get("", c.InventoryHandler.GetInventory)
	inventory.Get("/expiring", c.InventoryHandler.GetExpiringItems)
	inventory.Get("/stats", c.InventoryHandler.GetConsumptionStats)
	inventory.Post("/image", c.InventoryHandler.UploadItemImage)

	inventory.Post("/:id/consume", c.InventoryHandler.ConsumeItem)
	inventory.Post("/:id/waste", c.InventoryHandler.WasteItem)
	inventory.Post("/:id/donate", c.InventoryHandler.DonateItem)
}

func (c *Config) Chat() {
	c.App.Post("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService), c.ChatHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
