// Package router assembles the HTTP surface of the API.
package router

import (
	"net/http"

	"homeledger/internal/handlers"
	"homeledger/internal/i18n"
	"homeledger/internal/metrics"
	"homeledger/internal/middleware"
	"homeledger/internal/models"
	"homeledger/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services is every service the routes depend on.
type Services struct {
	Access     services.AccessServicer
	Backfill   services.BackfillServicer
	Audit      services.AuditServicer
	Home       services.HomeServicer
	Area       services.AreaServicer
	Room       services.RoomServicer
	Supplier   services.SupplierServicer
	Purchase   services.PurchaseServicer
	Extraction services.ExtractionServicer
	Attachment services.AttachmentServicer
	Category   services.CategoryServicer
	Tag        services.TagServicer
	Report     services.ReportServicer
}

// Deps carries the shared infrastructure for New. Metrics may be nil.
type Deps struct {
	Services   Services
	Verifier   middleware.TokenVerifier
	Translator *i18n.Translator
	Metrics    *metrics.Metrics
}

// New builds the gin engine with middleware and all routes registered.
func New(d Deps) *gin.Engine {
	s := d.Services

	adminHandler := handlers.NewAdminHandler(s.Access, s.Backfill, s.Audit)
	homeHandler := handlers.NewHomeHandler(s.Home, s.Audit)
	areaHandler := handlers.NewAreaHandler(s.Area, s.Audit)
	roomHandler := handlers.NewRoomHandler(s.Room, s.Audit)
	supplierHandler := handlers.NewSupplierHandler(s.Supplier, s.Audit)
	purchaseHandler := handlers.NewPurchaseHandler(s.Purchase, s.Extraction, s.Audit)
	attachmentHandler := handlers.NewAttachmentHandler(s.Attachment, s.Audit)
	categoryHandler := handlers.NewCategoryHandler(s.Category, s.Audit)
	tagHandler := handlers.NewTagHandler(s.Tag, s.Audit)
	reportHandler := handlers.NewReportHandler(s.Report)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
	}
	router.Use(middleware.Locale(d.Translator))
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(d.Verifier))

	// Bootstrap runs before any AppUser exists, so it only needs a verified identity.
	v1.POST("/admin/bootstrap", adminHandler.Bootstrap)

	protected := v1.Group("/")
	protected.Use(middleware.RequireCaller(s.Access))

	editor := middleware.RequireRole(models.RoleAdmin, models.RoleEditor)
	admin := middleware.RequireRole(models.RoleAdmin)

	protected.GET("/me", adminHandler.Me)

	homes := protected.Group("/homes")
	homes.GET("", homeHandler.ListHomes)
	homes.POST("", editor, homeHandler.CreateHome)
	homes.GET("/:id", homeHandler.GetHome)
	homes.PUT("/:id", editor, homeHandler.UpdateHome)
	homes.DELETE("/:id", editor, homeHandler.DeleteHome)
	homes.GET("/:id/images", homeHandler.ListImages)
	homes.POST("/:id/images", editor, homeHandler.AddImage)
	homes.DELETE("/:id/images/:imageId", editor, homeHandler.DeleteImage)

	areas := protected.Group("/areas")
	areas.GET("", areaHandler.ListAreas)
	areas.POST("", editor, areaHandler.CreateArea)
	areas.GET("/:id", areaHandler.GetArea)
	areas.PUT("/:id", editor, areaHandler.UpdateArea)
	areas.DELETE("/:id", editor, areaHandler.DeleteArea)

	rooms := protected.Group("/rooms")
	rooms.GET("", roomHandler.ListRooms)
	rooms.POST("", editor, roomHandler.CreateRoom)
	rooms.GET("/:id", roomHandler.GetRoom)
	rooms.PUT("/:id", editor, roomHandler.UpdateRoom)
	rooms.DELETE("/:id", editor, roomHandler.DeleteRoom)

	suppliers := protected.Group("/suppliers")
	suppliers.GET("", supplierHandler.ListSuppliers)
	suppliers.POST("", editor, supplierHandler.CreateSupplier)
	suppliers.GET("/:id", supplierHandler.GetSupplier)
	suppliers.PUT("/:id", editor, supplierHandler.UpdateSupplier)
	suppliers.DELETE("/:id", editor, supplierHandler.DeleteSupplier)

	purchases := protected.Group("/purchases")
	purchases.GET("", purchaseHandler.ListPurchases)
	purchases.POST("", editor, purchaseHandler.CreatePurchase)
	purchases.POST("/extract", editor, purchaseHandler.ExtractInvoice)
	purchases.GET("/:id", purchaseHandler.GetPurchase)
	purchases.PUT("/:id", editor, purchaseHandler.UpdatePurchase)
	purchases.DELETE("/:id", editor, purchaseHandler.DeletePurchase)
	purchases.GET("/:id/attachments", attachmentHandler.ListPurchaseAttachments)
	purchases.POST("/:id/attachments", editor, attachmentHandler.CreatePurchaseAttachment)

	attachments := protected.Group("/attachments")
	attachments.POST("", editor, attachmentHandler.CreateAttachment)
	attachments.DELETE("/:id", editor, attachmentHandler.DeleteAttachment)

	tags := protected.Group("/tags")
	tags.GET("", tagHandler.ListTags)
	tags.POST("", editor, tagHandler.CreateTag)
	tags.GET("/:id", tagHandler.GetTag)
	tags.PUT("/:id", editor, tagHandler.UpdateTag)
	tags.DELETE("/:id", editor, tagHandler.DeleteTag)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", admin, categoryHandler.CreateCategory)
	categories.PUT("/:id", admin, categoryHandler.UpdateCategory)
	categories.DELETE("/:id", admin, categoryHandler.DeleteCategory)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/areas", reportHandler.AreaBreakdown)
	reports.GET("/expiring-documents", reportHandler.ExpiringDocuments)
	reports.GET("/expiring-warranties", reportHandler.ExpiringWarranties)

	adminRoutes := protected.Group("/admin", admin)
	adminRoutes.GET("/users", adminHandler.ListUsers)
	adminRoutes.POST("/users", adminHandler.InviteUser)
	adminRoutes.PUT("/users/:id", adminHandler.UpdateUser)
	adminRoutes.POST("/backfill-home-ids", adminHandler.BackfillHomeIDs)

	return router
}
