package routes

import (
	"invoicedesk-backend/config"
	"invoicedesk-backend/controllers"
	"invoicedesk-backend/services"
	"invoicedesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	workspace := services.NewWorkspace(config.DB)
	invoiceController := controllers.NewInvoiceController(workspace)
	panelController := controllers.NewPanelController(workspace)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes
		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Invoice list routes (read side)
		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
		}

		// Panel routes (create/edit/delete state machine)
		panel := api.Group("/panel")
		{
			panel.GET("", panelController.GetPanel)
			panel.POST("/create", panelController.StartCreate)
			panel.POST("/edit/:id", panelController.StartEdit)
			panel.POST("/delete/:id", panelController.StartDelete)
			panel.PUT("/draft", panelController.UpdateDraft)
			panel.POST("/submit", panelController.Submit)
			panel.POST("/cancel", panelController.Cancel)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
		api.GET("/reconciliation", controllers.GetReconciliationLogs)
	}

	return r
}
