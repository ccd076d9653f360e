package main

import (
	"log"
	"net/http"
	"os"

	"recipe-api/config"
	"recipe-api/handlers"
	"recipe-api/helper"
	"recipe-api/middleware"
	"recipe-api/repositories"
	"recipe-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	recipeHandler := handlers.NewRecipeHandler(recipeService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, httpHelper)

	// Setup router
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		httpHelper.SendError(c, "Method not allowed", httpHelper.EmptyJsonMap(), http.StatusMethodNotAllowed, `methodNotAllowed`)
	})

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// User routes (public)
		users := v1.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/token", authHandler.Token)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/users/me", authHandler.GetProfile)
			protected.PATCH("/users/me", authHandler.UpdateProfile)

			// Recipes
			recipes := protected.Group("/recipes")
			{
				recipes.POST("", recipeHandler.CreateRecipe)
				recipes.GET("", recipeHandler.GetRecipes)
				recipes.GET("/:id", recipeHandler.GetRecipe)
				recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
				recipes.PUT("/:id", recipeHandler.UpdateRecipe)
				recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
				recipes.POST("/:id/upload-image", recipeHandler.UploadImage)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
				tags.PATCH("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			// Ingredients
			ingredients := protected.Group("/ingredients")
			{
				ingredients.GET("", ingredientHandler.GetIngredients)
				ingredients.GET("/:id", ingredientHandler.GetIngredient)
				ingredients.PATCH("/:id", ingredientHandler.UpdateIngredient)
				ingredients.DELETE("/:id", ingredientHandler.DeleteIngredient)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
