package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// RegisterRoutes mounts the health check and every /api route on r. Session
// middleware must already be installed on r.
func RegisterRoutes(r gin.IRouter, svc *services.Services) {
	authHandler := NewAuthHandler(svc.Auth)
	profileHandler := NewProfileHandler(svc.Profiles)
	gigHandler := NewGigHandler(svc.Gigs)
	orderHandler := NewOrderHandler(svc.Orders)
	connectionHandler := NewConnectionHandler(svc.Connections)
	projectHandler := NewProjectHandler(svc.Projects)
	notificationHandler := NewNotificationHandler(svc.Notifications)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Freelance Marketplace API is running",
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.POST("/connect-wallet", authHandler.ConnectWallet)
		}

		api.GET("/profile/:userId", profileHandler.GetProfile)
		api.PATCH("/profile/:id", profileHandler.UpdateProfile)
		api.GET("/freelancers", profileHandler.ListFreelancers)

		gigs := api.Group("/gigs")
		{
			gigs.GET("", gigHandler.ListGigs)
			gigs.POST("", gigHandler.CreateGig)
			gigs.GET("/:id", gigHandler.GetGig)
			gigs.PATCH("/:id", gigHandler.UpdateGig)
			gigs.DELETE("/:id", gigHandler.DeleteGig)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/client/:clientId", orderHandler.ListClientOrders)
			orders.GET("/freelancer/:freelancerId", orderHandler.ListFreelancerOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id", orderHandler.UpdateOrder)
		}

		connections := api.Group("/connections")
		{
			connections.GET("/:clientId", connectionHandler.ListConnections)
			connections.POST("", connectionHandler.CreateConnection)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/:userId", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
		}
	}
}
