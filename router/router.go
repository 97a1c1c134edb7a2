package router

import (
	"log/slog"
	"net/http"

	"faq-assistant/handlers"
	"faq-assistant/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
	Faq      *handlers.FaqHandler
}

// SetupRouter registers every route. Everything below /api/v1 except
// register and login requires a bearer token.
func SetupRouter(h Handlers, auth gin.HandlerFunc, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
		}

		protected := v1.Group("/")
		protected.Use(auth)
		{
			protected.GET("/profile", h.Auth.GetProfile)

			users := protected.Group("/users")
			{
				users.GET("", h.User.GetUsers)
				users.GET("/:id", h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			categories := protected.Group("/categories")
			{
				categories.POST("", h.Category.CreateCategory)
				categories.GET("", h.Category.GetCategories)
				categories.GET("/details", h.Category.GetCategoryDetails)
				categories.GET("/:id", h.Category.GetCategory)
				categories.PUT("/:id", h.Category.UpdateCategory)
				categories.DELETE("/:id", h.Category.DeleteCategory)
			}

			tags := protected.Group("/tags")
			{
				tags.POST("", h.Tag.CreateTag)
				tags.GET("", h.Tag.GetTags)
				tags.GET("/details", h.Tag.GetTagDetails)
				tags.GET("/:id", h.Tag.GetTag)
				tags.PUT("/:id", h.Tag.UpdateTag)
				tags.DELETE("/:id", h.Tag.DeleteTag)
			}

			faqs := protected.Group("/faqs")
			{
				faqs.POST("", h.Faq.CreateFaq)
				faqs.GET("", h.Faq.GetFaqs)
				faqs.GET("/:id", h.Faq.GetFaq)
				faqs.PUT("/:id", h.Faq.UpdateFaq)
				faqs.DELETE("/:id", h.Faq.DeleteFaq)
				faqs.POST("/:id/rating", h.Faq.RateFaq)
				faqs.POST("/:id/ask-ai", h.Faq.AskAI)
			}
		}
	}

	return router
}
