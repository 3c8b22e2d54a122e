package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pawmart.backend/internal/interfaces/http/handlers"
	"pawmart.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	breederHandler *handlers.BreederHandler
	listingHandler *handlers.ListingHandler
	catalogHandler *handlers.CatalogHandler
	paymentHandler *handlers.PaymentHandler
	adminHandler   *handlers.AdminHandler
	uploadHandler  *handlers.UploadHandler
	authMiddleware gin.HandlerFunc
	statusGate     gin.HandlerFunc
	env            string
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			if d.env == "development" {
				auth.POST("/mock-login", d.authHandler.MockLogin)
			}
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authMiddleware, d.statusGate, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.statusGate, d.authHandler.GetMe)
			auth.PUT("/me", d.authMiddleware, d.statusGate, d.authHandler.UpdateMe)
		}

		// Public catalog
		v1.GET("/breeds", d.catalogHandler.ListBreeds)
		v1.GET("/cities", d.catalogHandler.ListCities)
		v1.GET("/pets", d.catalogHandler.ListPets)
		v1.GET("/pets/:id", d.catalogHandler.GetPet)

		// Public listings and breeder pages
		v1.GET("/listings", d.listingHandler.SearchListings)
		v1.GET("/listings/:id", d.listingHandler.GetBreederListing)
		v1.GET("/breeders/:slug", d.breederHandler.GetProfileBySlug)
		v1.GET("/adoptions", d.listingHandler.ListAdoptionListings)

		// Breeder routes (protected)
		breeder := v1.Group("/breeder")
		breeder.Use(d.authMiddleware, d.statusGate)
		{
			breeder.POST("/applications", d.breederHandler.SubmitApplication)
			breeder.GET("/applications/me", d.breederHandler.GetMyApplication)
			breeder.GET("/profile", d.breederHandler.GetMyProfile)
			breeder.PUT("/profile", d.breederHandler.UpdateMyProfile)
			breeder.POST("/listings", d.listingHandler.CreateBreederListing)
			breeder.GET("/listings", d.listingHandler.MyBreederListings)
			breeder.PUT("/listings/:id", d.listingHandler.UpdateBreederListing)
			breeder.PATCH("/listings/:id/status", d.listingHandler.SetBreederListingStatus)
			breeder.DELETE("/listings/:id", d.listingHandler.DeleteBreederListing)
		}

		// Adoption routes (protected writes, public reads above)
		adoptions := v1.Group("/adoptions")
		adoptions.Use(d.authMiddleware, d.statusGate)
		{
			adoptions.POST("", d.listingHandler.CreateAdoptionListing)
			adoptions.GET("/mine", d.listingHandler.MyAdoptionListings)
			adoptions.PUT("/:id", d.listingHandler.UpdateAdoptionListing)
			adoptions.DELETE("/:id", d.listingHandler.DeleteAdoptionListing)
		}
		v1.GET("/adoptions/:id", d.listingHandler.GetAdoptionListing)

		// Payment routes (protected)
		payments := v1.Group("/payments")
		payments.Use(d.authMiddleware, d.statusGate)
		{
			payments.POST("/initiate", middleware.IdempotencyMiddleware(), d.paymentHandler.InitiatePayment)
			payments.POST("/verify", d.paymentHandler.VerifyPayment)
		}

		// Upload routes (protected)
		uploads := v1.Group("/uploads")
		uploads.Use(d.authMiddleware, d.statusGate)
		{
			uploads.POST("", d.uploadHandler.UploadImage)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.statusGate, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PATCH("/users/:id/status", d.adminHandler.SetUserStatus)
			admin.GET("/stats", d.adminHandler.GetStats)

			admin.GET("/applications", d.breederHandler.ListPendingApplications)
			admin.POST("/applications/:id/approve", d.breederHandler.ApproveApplication)
			admin.POST("/applications/:id/reject", d.breederHandler.RejectApplication)
			admin.POST("/applications/:id/request-info", d.breederHandler.RequestApplicationInfo)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID, Idempotency-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pawmart-backend",
			"version": "1.0.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
