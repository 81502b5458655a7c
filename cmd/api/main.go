package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/agoraboard/agora-backend/internal/config"
	"github.com/agoraboard/agora-backend/internal/handler"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/migration"
	"github.com/agoraboard/agora-backend/internal/repository"
	"github.com/agoraboard/agora-backend/internal/routes"
	"github.com/agoraboard/agora-backend/internal/service"
	pkgcache "github.com/agoraboard/agora-backend/pkg/cache"
	"github.com/agoraboard/agora-backend/pkg/jwt"
	pkglogger "github.com/agoraboard/agora-backend/pkg/logger"
	pkgredis "github.com/agoraboard/agora-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	cfg := config.Load()

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Cache service initialized")
	}

	// JWT Manager
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn,
		cfg.JWT.RefreshIn,
	)

	// Repositories
	forumRepo := repository.NewForumRepository(db)
	userRepo := repository.NewUserRepository(db)
	treeRepo := repository.NewTreeRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	historyService := service.NewHistoryService(historyRepo)
	moderationService := service.NewModerationService(
		messageRepo, treeRepo, forumRepo, userRepo, ratingRepo,
		historyService, cfg.Ban.MaxBanCount,
	)
	treeService := service.NewTreeService(
		treeRepo, messageRepo, forumRepo, userRepo, ratingRepo,
		historyService, moderationService, cacheService, cfg.Ban.MaxBanCount,
	)
	ratingService := service.NewRatingService(ratingRepo, messageRepo, cacheService)
	statisticsService := service.NewStatisticsService(statsRepo, forumRepo, cacheService)
	authService := service.NewAuthService(userRepo, jwtManager)
	forumService := service.NewForumService(forumRepo, userRepo)
	userService := service.NewUserService(userRepo, cfg.Ban)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	forumHandler := handler.NewForumHandler(forumService)
	threadHandler := handler.NewThreadHandler(treeService)
	messageHandler := handler.NewMessageHandler(treeService, moderationService, historyService)
	moderationHandler := handler.NewModerationHandler(moderationService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	adminHandler := handler.NewAdminHandler(userService)

	if env != "development" && env != "dev" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Middleware
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if redisClient != nil && env != "local" {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "agora-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(
		router,
		authHandler,
		forumHandler,
		threadHandler,
		messageHandler,
		moderationHandler,
		ratingHandler,
		statisticsHandler,
		adminHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection with sane pool defaults
func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)

	mysqlCfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	gormLogLevel := gormlogger.Warn
	if cfg.Env == "local" || cfg.Env == "development" {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
