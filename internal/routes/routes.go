package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parfumy_back_end/internal/handlers"
	"parfumy_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// --- Vitrine publique ---
	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/:id/order", h.OrderProduct)
		api.GET("/products/:id/order/qr", h.OrderProductQR)
		api.GET("/categories", h.ListCategories)
		api.GET("/testimonials", h.ListTestimonials)
		api.POST("/testimonials/next", h.NextTestimonial)
		api.POST("/testimonials/prev", h.PrevTestimonial)
		api.POST("/testimonials/pause", h.PauseTestimonials)
		api.POST("/testimonials/resume", h.ResumeTestimonials)
		api.POST("/contact", h.Contact)
	}

	// Synchronisation temps réel de la vitrine
	r.GET("/ws/catalog", h.CatalogWebSocket)

	// --- Admin ---
	adminGroup := r.Group("/api/admin")
	adminGroup.POST("/login", h.Login)
	adminGroup.GET("/session", h.Session)

	protected := adminGroup.Group("")
	protected.Use(middleware.AuthRequired(h.Gate))
	{
		protected.POST("/logout", h.Logout)
		protected.PUT("/credentials", h.UpdateCredentials)

		protected.GET("/products", h.AdminListProducts)
		protected.POST("/products", h.CreateProduct)
		protected.PUT("/products/:id", h.UpdateProduct)
		protected.DELETE("/products/:id", h.DeleteProduct)
		protected.POST("/products/image", h.UploadProductImage)

		protected.GET("/categories", h.AdminListCategories)
		protected.POST("/categories", h.CreateCategory)
		protected.PUT("/categories/:name", h.RenameCategory)
		protected.DELETE("/categories/:name", h.DeleteCategory)

		protected.GET("/users", h.ListUsers)
		protected.POST("/users", h.SaveUser)
		protected.DELETE("/users/:id", h.DeleteUser)
	}
}
