package routes

import (
	"halo-lounge-backend/config"
	"halo-lounge-backend/controllers"
	"halo-lounge-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://halohairlounge.com",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public catalog routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
		}

		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
		}

		// Authenticated routes
		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			appointments := authed.Group("/appointments")
			{
				appointments.POST("", controllers.CreateAppointment)
				appointments.GET("", controllers.GetAppointments)
			}

			cart := authed.Group("/cart")
			{
				cart.GET("", controllers.GetCart)
				cart.POST("/items", controllers.AddCartItem)
				cart.PUT("/items/:id", controllers.UpdateCartItem)
				cart.DELETE("/items/:id", controllers.RemoveCartItem)
				cart.DELETE("", controllers.ClearCart)
			}

			authed.POST("/checkout", controllers.Checkout)
			authed.GET("/orders", controllers.GetOrders)

			// Dashboard routes
			authed.GET("/dashboard", controllers.GetDashboardOverview)
		}

		// Admin routes
		admin := api.Group("")
		admin.Use(utils.AuthMiddleware(), utils.AdminMiddleware())
		{
			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)

			admin.PATCH("/appointments/:id/status", controllers.UpdateAppointmentStatus)
		}
	}

	return r
}
