package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/checkout"
	"storefront/internal/handlers"
	"storefront/internal/kv"
	"storefront/internal/repository"
	"storefront/internal/session"
)

func RegisterRoutes(router *gin.Engine, client *mongo.Client, db *mongo.Database, sessions *session.Store, cache *kv.Store) {
	products := repository.NewProductRepository(db.Collection("products"))
	carts := repository.NewCartRepository(db.Collection("carts"))
	orders := repository.NewOrderRepository(db.Collection("orders"))
	payments := repository.NewPaymentRepository(db.Collection("payments"))
	invoices := repository.NewInvoiceRepository(db.Collection("invoices"))
	auditLogs := repository.NewAuditLogRepository(db.Collection("audit_logs"))
	users := repository.NewUserRepository(db.Collection("users"))
	sequences := repository.NewSequenceRepository(db.Collection("counters"))

	checkoutService := checkout.NewService(products, carts, orders, payments, invoices, sequences)

	productHandler := handlers.NewProductHandler(products, auditLogs, cache)
	cartHandler := handlers.NewCartHandler(carts, products)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, orders, payments, invoices, sessions)
	authHandler := handlers.NewAuthHandler(users, sessions)
	healthHandler := handlers.NewHealthHandler(client)

	router.Use(handlers.SessionMiddleware(sessions))

	v1 := router.Group("/v1")
	{
		v1.GET("/health/live", healthHandler.Live)
		v1.GET("/health/mongo", healthHandler.Mongo)

		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/logout", authHandler.Logout)

		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:id", productHandler.GetProduct)

		v1.GET("/cart", cartHandler.GetCart)
		v1.GET("/cart/count", cartHandler.GetCount)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PATCH("/cart/items/:product_id", cartHandler.UpdateItem)
		v1.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
		v1.DELETE("/cart", cartHandler.ClearCart)

		authed := v1.Group("", handlers.RequireAuth())
		{
			authed.POST("/checkout/orders", checkoutHandler.PlaceOrder)
			authed.POST("/checkout/payments", checkoutHandler.Pay)
			authed.GET("/checkout/summary", checkoutHandler.PaymentSummary)
			authed.GET("/orders", checkoutHandler.ListOrders)
			authed.GET("/orders/:number", checkoutHandler.GetOrder)
		}

		admin := v1.Group("/admin", handlers.RequireAuth(), handlers.RequireAdmin())
		{
			admin.POST("/products", productHandler.CreateProduct)
			admin.PATCH("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)
			admin.GET("/audit-logs", productHandler.ListAuditLogs)
		}
	}
}
