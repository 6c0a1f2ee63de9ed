package app

import (
	"context"
	"fmt"
	"time"

	"haatbazar_admin/internal/auth"
	"haatbazar_admin/internal/config"
	"haatbazar_admin/internal/handlers"
	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/middleware"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/routes"
	"haatbazar_admin/internal/services"
	"haatbazar_admin/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := ConnectMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}
	logger.Info("MongoDB connected", "database", cfg.Database.Name)

	if err := SeedFirstAdmin(context.Background(), db, cfg); err != nil {
		// Без учетной записи админа панель бесполезна - не запускаемся
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// ConnectMongo открывает соединение с MongoDB и проверяет его ping'ом
func ConnectMongo(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client.Database(cfg.Database.Name), nil
}

func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	// --- Инициализация репозиториев ---
	adminRepo := repositories.NewAdminRepository(db)
	userRepo := repositories.NewUserRepository(db)
	regRepo := repositories.NewRegistrationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(adminRepo)
	jobService := services.NewJobService(jobRepo, userRepo)
	userService := services.NewUserService(userRepo, regRepo)
	bookingService := services.NewBookingService(bookingRepo)

	// --- Инициализация хэндлеров ---
	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, authService),
		JobHandler:     handlers.NewJobHandler(base, jobService),
		UserHandler:    handlers.NewUserHandler(base, userService),
		BookingHandler: handlers.NewBookingHandler(base, bookingService),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, adminRepo)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	// Панель живет на отдельном origin'е
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	ginRouter.Use(cors.New(corsConfig))

	return ginRouter
}

// SeedFirstAdmin создает учетную запись админа при пустой коллекции.
// Публичной регистрации админов нет, это единственный путь появления записи.
func SeedFirstAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	adminRepo := repositories.NewAdminRepository(db)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin collection is empty and no seed credentials configured")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.AdminInfo{
		Email:    cfg.Admin.Email,
		Password: hash,
		Name:     cfg.Admin.Name,
		Role:     "admin",
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("First admin seeded", "email", admin.Email)
	return nil
}
