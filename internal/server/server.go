package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"mall-storefront/internal/client"
	"mall-storefront/internal/handler"
	"mall-storefront/internal/middleware"
	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
	"mall-storefront/internal/store"
)

type Server struct {
	echo *echo.Echo

	prefs store.PrefStore

	sessionHandler *handler.SessionHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	toggleHandler  *handler.ToggleHandler
	blogHandler    *handler.BlogHandler
	catalogHandler *handler.CatalogHandler
	adminHandler   *handler.AdminHandler
}

func NewServer(
	api client.StorefrontClient,
	prefs store.PrefStore,
	sessions service.SessionService,
	cart service.CartService,
	checkout service.CheckoutService,
	orders service.OrderService,
	toggles service.ToggleService,
	notifier service.Notifier,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		prefs:          prefs,
		sessionHandler: handler.NewSessionHandler(sessions, notifier),
		cartHandler:    handler.NewCartHandler(cart, checkout),
		orderHandler:   handler.NewOrderHandler(orders),
		toggleHandler:  handler.NewToggleHandler(toggles),
		blogHandler:    handler.NewBlogHandler(api, sessions, toggles),
		catalogHandler: handler.NewCatalogHandler(api),
		adminHandler:   handler.NewAdminHandler(api),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	app := s.echo.Group("/app")

	app.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- session --------
	auth := app.Group("/auth")
	auth.POST("/login", s.sessionHandler.Login)
	auth.POST("/logout", s.sessionHandler.Logout)

	app.GET("/notifications", s.sessionHandler.Notifications)

	// -------- public browsing --------
	app.GET("/products", s.catalogHandler.ListProducts)
	app.GET("/products/:id", s.catalogHandler.GetProduct)
	app.GET("/shops", s.catalogHandler.ListShops)
	app.GET("/blogs", s.blogHandler.List)
	app.GET("/blogs/:id", s.blogHandler.Get)

	// -------- toggles (handle anonymity themselves for the login
	// redirect memory) --------
	app.POST("/favorites/:id/toggle", s.toggleHandler.ToggleFavorite)
	app.GET("/favorites", s.toggleHandler.Favorites)
	app.POST("/blogs/:id/toggle-like", s.toggleHandler.ToggleBlogLike)

	// -------- signed-in user --------
	user := app.Group("", middleware.RequireLogin(s.prefs))
	user.GET("/profile", s.sessionHandler.Profile)
	user.PATCH("/profile", s.sessionHandler.UpdateProfile)

	user.GET("/cart", s.cartHandler.View)
	user.POST("/cart", s.cartHandler.Add)
	user.PATCH("/cart/:id", s.cartHandler.UpdateQuantity)
	user.DELETE("/cart/:id", s.cartHandler.Remove)
	user.POST("/checkout", s.cartHandler.Checkout)

	user.GET("/orders", s.orderHandler.ListByUser)
	user.GET("/orders/:id/details", s.orderHandler.Details)
	user.POST("/orders/:id/cancel", s.orderHandler.Cancel)
	user.POST("/orders/qr-payment", s.orderHandler.QRPayment)
	user.POST("/orders/payment-complete", s.orderHandler.PaymentComplete)

	user.POST("/blogs/:id/comments", s.blogHandler.CreateComment)
	user.PUT("/comments/:id", s.blogHandler.EditComment)
	user.DELETE("/comments/:id", s.blogHandler.DeleteComment)

	// -------- shop dashboard --------
	shop := app.Group("/shop", middleware.RequireRole(s.prefs, model.RoleShop))
	shop.GET("/orders", s.orderHandler.ListByShop)
	shop.PATCH("/orders/:id/status", s.orderHandler.EditStatus)
	shop.GET("/statistics/revenue", s.orderHandler.Revenue)
	shop.POST("/products", s.catalogHandler.CreateProduct)
	shop.PUT("/products/:id", s.catalogHandler.UpdateProduct)
	shop.DELETE("/products/:id", s.catalogHandler.DeleteProduct)

	// -------- admin dashboard --------
	admin := app.Group("/admin", middleware.RequireRole(s.prefs, model.RoleAdmin))
	admin.GET("/users", s.adminHandler.ListUsers)
	admin.PATCH("/users/:id/block-unblock", s.adminHandler.BlockUnblockUser)
	admin.PATCH("/shops/:id/block-unblock", s.adminHandler.BlockUnblockShop)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
