package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jgmedellin/coffee-shop-api/internal/api/handler"
	"github.com/jgmedellin/coffee-shop-api/internal/api/middleware"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Users    *handler.UserHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Health   *handler.HealthHandler
}

// NewRouter builds the echo engine with middleware, the authorization
// policy, and all API routes mounted under /api/v1.
func NewRouter(h Handlers, tokens ports.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("coffeeshop"))
	e.Use(middleware.Auth(tokens))
	e.Use(middleware.Policy(middleware.DefaultTable))

	e.GET("/health", h.Health.Live)
	e.GET("/health/ready", h.Health.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("/register", h.Users.Register)
	users.POST("/login", h.Users.Login)
	users.PATCH("/changeRole", h.Users.ChangeRole)
	users.GET("", h.Users.GetAll)
	users.GET("/:id", h.Users.GetByID)
	users.PUT("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)

	products := v1.Group("/products")
	products.POST("", h.Products.CreateMany)
	products.GET("", h.Products.GetAll)
	products.GET("/:id", h.Products.GetByID)
	products.PATCH("/:id", h.Products.Update)
	products.DELETE("/:id", h.Products.Delete)

	orders := v1.Group("/orders")
	orders.POST("", h.Orders.Create)
	orders.GET("/history", h.Orders.GetMine)
	orders.GET("", h.Orders.GetAll)
	orders.GET("/:id", h.Orders.GetOne)
	orders.PATCH("/:id", h.Orders.Update)
	orders.DELETE("/:id", h.Orders.Delete)

	return e
}
