package routes

import (
	"emenu/internal/api/handlers"
	"emenu/internal/middleware"
	"emenu/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	UserHandler handlers.UserHandler
	MenuHandler handlers.MenuHandler
	DishHandler handlers.DishHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menus()
	c.Dishes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

// Menus wires the menu endpoints. Reads are public; the listing still runs
// the optional auth middleware because anonymous and authenticated callers
// see different collections.
func (c *Config) Menus() {
	menus := c.App.Group("/api/v1/menus")

	menus.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.MenuHandler.ListMenus)
	menus.Get("/:id", c.MenuHandler.GetMenuDetail)

	menus.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.CreateMenu)
	menus.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UpdateMenu)
	menus.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UpdateMenu)
	menus.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.DeleteMenu)
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes")

	dishes.Get("", c.DishHandler.ListDishes)
	dishes.Get("/:id", c.DishHandler.GetDishDetail)

	dishes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.CreateDish)
	dishes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.UpdateDish)
	dishes.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.UpdateDish)
	dishes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.DeleteDish)
	dishes.Post("/:id/upload-image", c.Middleware.AuthMiddleware(c.JWTService), c.DishHandler.UploadDishImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
