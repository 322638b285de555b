package routes

import (
	"cmms-backend/internal/api/handlers"
	"cmms-backend/internal/api/middleware"
	"cmms-backend/internal/config"
	"cmms-backend/internal/repository"
	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	partRepo := repository.NewPartRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamUserRepo := repository.NewTeamUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	procedureRepo := repository.NewProcedureRepository(db)

	// Initialize services
	vendorService := service.NewVendorService(vendorRepo, validator)
	assetService := service.NewAssetService(assetRepo, validator)
	partService := service.NewPartService(partRepo, validator)
	teamService := service.NewTeamService(teamRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	teamUserService := service.NewTeamUserService(teamUserRepo, teamRepo, userRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	workOrderService := service.NewWorkOrderService(workOrderRepo, vendorRepo, procedureRepo, categoryRepo, partRepo, validator)
	procedureService := service.NewProcedureService(procedureRepo, assetRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	assetHandler := handlers.NewAssetHandler(assetService)
	partHandler := handlers.NewPartHandler(partService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)
	teamUserHandler := handlers.NewTeamUserHandler(teamUserService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	procedureHandler := handlers.NewProcedureHandler(procedureService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Vendor routes
		vendors := v1.Group("/vendors")
		{
			vendors.GET("", vendorHandler.ListVendors)
			vendors.POST("", vendorHandler.CreateVendor)
			vendors.GET("/:id", vendorHandler.GetVendor)
			vendors.PATCH("/:id", vendorHandler.UpdateVendor)
			vendors.DELETE("/:id", vendorHandler.DeleteVendor)
		}

		// Asset routes
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PATCH("/:id", assetHandler.UpdateAsset)
			assets.DELETE("/:id", assetHandler.DeleteAsset)
		}

		// Part routes
		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.CreatePart)
			parts.GET("/:id", partHandler.GetPart)
			parts.PATCH("/:id", partHandler.UpdatePart)
			parts.DELETE("/:id", partHandler.DeletePart)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/users", teamUserHandler.GetTeamUsers)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Team membership routes
		teamUsers := v1.Group("/team-users")
		{
			teamUsers.GET("", teamUserHandler.ListAssignments)
			teamUsers.POST("", teamUserHandler.AssignUser)
			teamUsers.DELETE("/:id", teamUserHandler.UnassignUser)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
		}

		// Work order routes
		workOrders := v1.Group("/work-orders")
		{
			workOrders.GET("", workOrderHandler.ListWorkOrders)
			workOrders.POST("", workOrderHandler.CreateWorkOrder)
			workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
			workOrders.PATCH("/:id", workOrderHandler.UpdateWorkOrder)
			workOrders.DELETE("/:id", workOrderHandler.DeleteWorkOrder)
		}

		// Procedure template routes
		procedures := v1.Group("/procedures")
		{
			procedures.GET("", procedureHandler.ListProcedures)
			procedures.POST("", procedureHandler.CreateProcedure)
			procedures.GET("/:id", procedureHandler.GetProcedure)
			procedures.PATCH("/:id", procedureHandler.UpdateProcedure)
			procedures.DELETE("/:id", procedureHandler.DeleteProcedure)
		}
	}

	return router
}
