// @title MO3D CMS API
// @version 1.0
// @description Back-office and storefront API for the MO3D catalog
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/controllers/cms/upload_controller"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/middleware"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/routes/cms_routes"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/routes/ecommerce_routes"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := upload_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize session service for admin auth
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET environment variable not set")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("❌ ADMIN_PASSWORD environment variable not set")
	}
	if err := services.InitSessionService(sessionSecret, adminPassword); err != nil {
		log.Fatalf("Failed to initialize session service: %v", err)
	}
	log.Println("✅ Session service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Page-level guard: locale redirects and the /admin login wall
	router.Use(middleware.RouteGuard())

	// Register API routes
	api := router.Group("/api/v1")

	// Admin routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAdminRoutes(adminGroup)
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupQuotationRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
