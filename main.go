package main

import (
	"fmt"
	"log"
	"os"

	"invoicedesk-backend/config"
	"invoicedesk-backend/models"
	"invoicedesk-backend/routes"
	"invoicedesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Invoice{},
		&models.LineItem{},
		&models.ReconciliationLog{},
	)

	seedCatalog()
}

// seedCatalog installs the default product list on an empty catalog
func seedCatalog() {
	var count int64
	config.DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}
	for _, p := range models.DefaultCatalog() {
		if err := config.DB.Create(&p).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", p.Name, err)
		}
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reconciler := services.NewReconcilerService(config.DB)
	reconciler.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
