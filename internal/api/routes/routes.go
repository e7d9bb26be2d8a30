package routes

import (
	"time"

	"foodshare-backend/internal/api/handlers"
	"foodshare-backend/internal/api/middleware"
	"foodshare-backend/internal/auth"
	"foodshare-backend/internal/config"
	"foodshare-backend/internal/repository"
	"foodshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	relationRepo := repository.NewRelationRepository(db)

	// Initialize services
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	userService := service.NewUserService(userRepo, recipeRepo, relationRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, relationRepo, validate, cfg.MediaRoot)
	relationService := service.NewRelationService(relationRepo, recipeRepo, userService)
	shoppingListService := service.NewShoppingListService(recipeRepo)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, validate, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, relationService, shoppingListService)
	userHandler := handlers.NewUserHandler(userService, relationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		// Auth
		v1.POST("/auth/signup", authHandler.Signup)
		v1.POST("/auth/token/login", authHandler.Login)

		// Catalogs (public reads)
		v1.GET("/tags", tagHandler.ListTags)
		v1.GET("/tags/:id", tagHandler.GetTag)
		v1.GET("/ingredients", ingredientHandler.ListIngredients)
		v1.GET("/ingredients/:id", ingredientHandler.GetIngredient)

		// Recipes: reads are public but honor an optional token for the
		// per-requester flags; writes require auth
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", authMiddleware.OptionalAuth(), recipeHandler.ListRecipes)
			recipes.GET("/download_shopping_cart", authMiddleware.RequireAuth(), recipeHandler.DownloadShoppingCart)
			recipes.GET("/:id", authMiddleware.OptionalAuth(), recipeHandler.GetRecipe)
			recipes.POST("", authMiddleware.RequireAuth(), recipeHandler.CreateRecipe)
			recipes.PATCH("/:id", authMiddleware.RequireAuth(), recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", authMiddleware.RequireAuth(), recipeHandler.DeleteRecipe)
			recipes.POST("/:id/favorite", authMiddleware.RequireAuth(), recipeHandler.AddFavorite)
			recipes.DELETE("/:id/favorite", authMiddleware.RequireAuth(), recipeHandler.RemoveFavorite)
			recipes.POST("/:id/shopping_cart", authMiddleware.RequireAuth(), recipeHandler.AddToShoppingCart)
			recipes.DELETE("/:id/shopping_cart", authMiddleware.RequireAuth(), recipeHandler.RemoveFromShoppingCart)
		}

		// Users and subscriptions
		users := v1.Group("/users")
		{
			users.GET("", authMiddleware.OptionalAuth(), userHandler.ListUsers)
			users.GET("/me", authMiddleware.RequireAuth(), userHandler.Me)
			users.GET("/subscriptions", authMiddleware.RequireAuth(), userHandler.Subscriptions)
			users.GET("/:id", authMiddleware.OptionalAuth(), userHandler.GetUser)
			users.POST("/:id/subscribe", authMiddleware.RequireAuth(), userHandler.Subscribe)
			users.DELETE("/:id/subscribe", authMiddleware.RequireAuth(), userHandler.Unsubscribe)
		}
	}

	return router
}
