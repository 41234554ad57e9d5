package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/stride/internal/config"
	"github.com/example/stride/internal/handlers"
	"github.com/example/stride/internal/middleware"
	"github.com/example/stride/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	notifier := services.NewAdminNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	settingsCache := services.NewSettingsCache(services.DBSettingsLoader(db), cfg.SettingsTTL)
	gateway := services.NewGatewayClient(cfg.GatewayAPIURL)
	checkoutService := services.NewCheckoutService(db, settingsCache, gateway, notifier)
	cartStore := services.NewCartStore(db)
	wishlistService := services.NewWishlistService(db)
	reviewHub := services.NewReviewHub()

	authHandler := handlers.NewAuthHandler(db, cfg)
	resetHandler := handlers.NewPasswordResetHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	cartHandler := handlers.NewCartHandler(db, cartStore)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	checkoutHandler := handlers.NewCheckoutHandler(db, checkoutService)
	orderHandler := handlers.NewOrderHandler(db)
	reviewHandler := handlers.NewReviewHandler(db, reviewHub)
	marketingHandler := handlers.NewMarketingHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db, settingsCache)
	supportHandler := handlers.NewSupportHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/send-verification", authHandler.SendVerification)
	auth.Post("/verify-email", authHandler.VerifyEmail)
	auth.Post("/forgot-password", resetHandler.ForgotPassword)
	auth.Post("/verify-reset-code", resetHandler.VerifyResetCode)
	auth.Post("/reset-password", resetHandler.ResetPassword)

	// Storefront catalog
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Get("/:id/reviews", reviewHandler.ListReviews)
	products.Get("/:id/reviews/stream", reviewHandler.StreamReviews)
	products.Post("/:id/reviews", middleware.AuthMiddleware(cfg), reviewHandler.CreateReview)

	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/categories/:id", catalogHandler.GetCategory)

	api.Delete("/reviews/:reviewId", middleware.AuthMiddleware(cfg), reviewHandler.DeleteReview)

	// Public site content
	api.Get("/settings", settingsHandler.GetSettings)
	api.Get("/banners", marketingHandler.ListBanners)
	api.Get("/ads", marketingHandler.ListPromotionalAds)
	api.Get("/payment-methods", marketingHandler.ListLocalPaymentMethods)
	api.Get("/pages", supportHandler.ListSupportPages)
	api.Get("/pages/:slug", supportHandler.GetSupportPage)
	api.Post("/contact", supportHandler.CreateContactMessage)

	// Cart and wishlist accept either a bearer token or a guest token header
	cart := api.Group("/cart", middleware.OptionalAuthMiddleware(cfg))
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items", cartHandler.UpdateItem)
	cart.Delete("/items", cartHandler.RemoveItem)
	cart.Delete("/", cartHandler.ClearCart)

	wishlist := api.Group("/wishlist", middleware.OptionalAuthMiddleware(cfg))
	wishlist.Get("/", wishlistHandler.GetWishlist)
	wishlist.Post("/toggle", wishlistHandler.ToggleWishlist)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/cart/merge", cartHandler.MergeCart)
	protected.Post("/wishlist/merge", wishlistHandler.MergeWishlist)

	protected.Post("/checkout", checkoutHandler.PlaceOrder)

	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
	protected.Get("/profile/addresses", profileHandler.ListAddresses)
	protected.Post("/profile/addresses", profileHandler.CreateAddress)
	protected.Put("/profile/addresses/:id", profileHandler.UpdateAddress)
	protected.Delete("/profile/addresses/:id", profileHandler.DeleteAddress)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())

	admin.Get("/dashboard", adminHandler.DashboardStats)
	admin.Get("/dashboard/recent-orders", adminHandler.RecentOrders)

	admin.Get("/products", productHandler.ListAllProducts)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Put("/categories/:id", catalogHandler.UpdateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)

	admin.Post("/banners", marketingHandler.CreateBanner)
	admin.Put("/banners/:id", marketingHandler.UpdateBanner)
	admin.Delete("/banners/:id", marketingHandler.DeleteBanner)

	admin.Post("/ads", marketingHandler.CreatePromotionalAd)
	admin.Put("/ads/:id", marketingHandler.UpdatePromotionalAd)
	admin.Delete("/ads/:id", marketingHandler.DeletePromotionalAd)

	admin.Post("/payment-methods", marketingHandler.CreateLocalPaymentMethod)
	admin.Put("/payment-methods/:id", marketingHandler.UpdateLocalPaymentMethod)
	admin.Delete("/payment-methods/:id", marketingHandler.DeleteLocalPaymentMethod)

	admin.Post("/pages", supportHandler.CreateSupportPage)
	admin.Put("/pages/:id", supportHandler.UpdateSupportPage)
	admin.Delete("/pages/:id", supportHandler.DeleteSupportPage)

	admin.Get("/messages", supportHandler.ListContactMessages)
	admin.Delete("/messages/:id", supportHandler.DeleteContactMessage)

	admin.Get("/orders", orderHandler.ListAllOrders)
	admin.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)

	admin.Get("/users", adminHandler.ListAllUsers)
	admin.Put("/users/:id/block", adminHandler.SetUserBlocked)
	admin.Put("/users/:id/role", adminHandler.SetUserRole)

	admin.Put("/settings", settingsHandler.UpdateSettings)
}
