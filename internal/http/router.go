// Package http wires the gin router: middleware chain, public storefront
// routes, the designer canvas API and the admin surface.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/config"
	"remeralab.com/app/internal/http/cartcookie"
	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/handlers"
	adminhandlers "remeralab.com/app/internal/http/handlers/admin"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/modules/cart"
	"remeralab.com/app/internal/modules/categories"
	"remeralab.com/app/internal/modules/checkout"
	"remeralab.com/app/internal/modules/designer"
	"remeralab.com/app/internal/modules/orders"
	"remeralab.com/app/internal/modules/products"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/internal/upload"
)

func NewRouter(logger *slog.Logger, cfg config.Config, api *shopapi.Client, uploader upload.Uploader) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	flashCodec := flash.NewCodec(cfg.SecretKey, "notice", cfg.Secure)
	cartCodec := cartcookie.New(cfg.SecretKey, "cart", cfg.Secure)
	sessions := middleware.NewSessionCodec(cfg.SecretKey, "session", cfg.Secure, 0)

	pricing := designer.Pricing{
		BasePriceCents:      int64(cfg.Designer.BasePriceCents),
		PrintSurchargeCents: int64(cfg.Designer.PrintSurchargeCents),
		Currency:            cfg.Designer.Currency,
	}
	sceneStore := designer.NewStore(designer.Config{
		SceneWidth:      cfg.Designer.SceneWidth,
		SceneHeight:     cfg.Designer.SceneHeight,
		MaxDesignWidth:  cfg.Designer.MaxDesignWidth,
		MaxDesignHeight: cfg.Designer.MaxDesignHeight,
		MaxUploadBytes:  cfg.Designer.MaxUploadBytes,
	}, cfg.Designer.SceneTTL)
	packager := designer.NewPackager(uploader, pricing)

	productsSvc := products.NewService(api, cfg.Designer.Currency)
	categoriesSvc := categories.NewService(api)
	cartSvc := cart.NewService(api, cfg.Designer.Currency)
	checkoutSvc := checkout.NewService(api)
	ordersSvc := orders.NewService(api, cfg.Designer.Currency)

	productsH := handlers.NewProductsHandler(productsSvc, categoriesSvc)
	cartH := handlers.NewCartHandler(flashCodec, cartCodec, cartSvc, productsSvc)
	checkoutH := handlers.NewCheckoutHandler(flashCodec, cartCodec, cartSvc, checkoutSvc)
	ordersH := handlers.NewOrdersHandler(flashCodec, ordersSvc)
	authH := handlers.NewAuthHandler(api, sessions, flashCodec)
	accountH := handlers.NewAccountHandler(api, sessions, flashCodec)
	designerH := handlers.NewDesignerHandler(sceneStore, packager, pricing, flashCodec, cartCodec)

	adminProductsH := adminhandlers.NewProductsHandler(api)
	adminCategoriesH := adminhandlers.NewCategoriesHandler(api)
	adminOrdersH := adminhandlers.NewOrdersHandler(api)

	r := gin.New()
	// ErrorHandler must wrap Recovery: a panic unwinds to Recovery, which
	// records it via Fail, and the drain renders it on the way back out.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.Session(sessions),
		middleware.Flash(flashCodec),
		middleware.CartCount(cartCodec),
	)

	r.GET("/", productsH.Home)
	r.GET("/products", productsH.List)
	r.GET("/products/:id", productsH.Detail)

	r.GET("/cart", cartH.Show)
	r.POST("/cart/items", cartH.Add)
	r.POST("/cart/items/update", cartH.Update)
	r.POST("/cart/items/remove", cartH.Remove)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/logout", authH.Logout)
		auth.GET("/verify-email/:token", authH.VerifyEmail)
		auth.POST("/resend-verification", authH.ResendVerification)
	}

	designerGroup := r.Group("/designer")
	{
		designerGroup.POST("/scenes", designerH.Create)
		designerGroup.GET("/scenes/:id", designerH.Show)
		designerGroup.POST("/scenes/:id/background", designerH.SetBackground)
		designerGroup.POST("/scenes/:id/image", designerH.UploadImage)
		designerGroup.POST("/scenes/:id/layer/center", designerH.CenterLayer)
		designerGroup.POST("/scenes/:id/layer/rotate", designerH.RotateLayer)
		designerGroup.POST("/scenes/:id/layer/transform", designerH.TransformLayer)
		designerGroup.DELETE("/scenes/:id/layer", designerH.RemoveLayer)
		designerGroup.GET("/scenes/:id/preview", designerH.Preview)
		designerGroup.POST("/scenes/:id/confirm", designerH.Confirm)
	}

	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.GET("/checkout", checkoutH.Show)
		authed.POST("/checkout", checkoutH.Place)
		authed.GET("/orders", ordersH.List)
		authed.GET("/orders/:id", ordersH.Detail)
		authed.POST("/orders/:id/cancel", ordersH.Cancel)
		authed.GET("/account", accountH.Show)
		authed.POST("/account", accountH.Update)
	}

	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", adminOrdersH.Dashboard)

		admin.GET("/products", adminProductsH.List)
		admin.POST("/products", adminProductsH.Create)
		admin.PUT("/products/:id", adminProductsH.Update)
		admin.DELETE("/products/:id", adminProductsH.Delete)
		admin.POST("/products/:id/images", adminProductsH.UploadImage)
		admin.DELETE("/products/:id/images/:imageID", adminProductsH.DeleteImage)

		admin.GET("/categories", adminCategoriesH.List)
		admin.POST("/categories", adminCategoriesH.Create)
		admin.PUT("/categories/:id", adminCategoriesH.Update)
		admin.DELETE("/categories/:id", adminCategoriesH.Delete)
		admin.POST("/categories/:id/image", adminCategoriesH.UploadImage)
		admin.DELETE("/categories/:id/image", adminCategoriesH.DeleteImage)

		admin.GET("/orders", adminOrdersH.List)
		admin.GET("/orders/:id", adminOrdersH.Detail)
		admin.PUT("/orders/:id/confirm", adminOrdersH.Confirm)
		admin.PUT("/orders/:id/status", adminOrdersH.UpdateStatus)
		admin.PUT("/orders/:id/payment", adminOrdersH.UpdatePayment)
	}

	return r
}
