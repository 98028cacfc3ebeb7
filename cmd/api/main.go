package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bereketsol/Inkwell/internal/domain/authz"
	handlerHttp "github.com/bereketsol/Inkwell/internal/handler/http"
	redisclient "github.com/bereketsol/Inkwell/internal/infrastructure/cache"
	"github.com/bereketsol/Inkwell/internal/infrastructure/config"
	database "github.com/bereketsol/Inkwell/internal/infrastructure/database"
	"github.com/bereketsol/Inkwell/internal/infrastructure/jwt"
	"github.com/bereketsol/Inkwell/internal/infrastructure/logger"
	passwordservice "github.com/bereketsol/Inkwell/internal/infrastructure/password_service"
	"github.com/bereketsol/Inkwell/internal/infrastructure/repository/mongodb"
	"github.com/bereketsol/Inkwell/internal/infrastructure/store"
	"github.com/bereketsol/Inkwell/internal/infrastructure/uuidgen"
	"github.com/bereketsol/Inkwell/internal/infrastructure/validator"
	"github.com/bereketsol/Inkwell/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	blogRepo := mongodb.NewBlogRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	checker := authz.NewChecker()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	blogUsecase := usecase.NewBlogUseCase(blogRepo, categoryRepo, uuidGenerator, appLogger)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, blogRepo, userRepo, uuidGenerator)
	categoryUsecase := usecase.NewCategoryUseCase(categoryRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			blogUsecase.SetBlogCache(store.NewBlogCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, blogUsecase, commentUsecase, categoryUsecase, jwtService, checker)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
