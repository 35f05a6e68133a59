// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"secad-service/internal/config"
	"secad-service/internal/db"
	assetHandler "secad-service/internal/handlers/asset"
	authHandler "secad-service/internal/handlers/auth"
	chatHandler "secad-service/internal/handlers/chat"
	eventHandler "secad-service/internal/handlers/event"
	reportHandler "secad-service/internal/handlers/report"
	vehicleHandler "secad-service/internal/handlers/vehicle"
	"secad-service/internal/middleware"
	"secad-service/internal/pkg/auth"
	"secad-service/internal/repository/postgres"
	assetUsecase "secad-service/internal/service/asset"
	chatUsecase "secad-service/internal/service/chat"
	eventUsecase "secad-service/internal/service/event"
	reportUsecase "secad-service/internal/service/report"
	vehicleUsecase "secad-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	if err := db.Migrate(s.cfg.DatabaseDSN, "migrations"); err != nil {
		return err
	}

	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- Tokens -----
	tokens, err := auth.NewManager(s.cfg.JWTSecret, s.cfg.JWTTTL)
	if err != nil {
		return err
	}

	// ----- Repositories -----
	store := postgres.NewDB(pool)
	vehicleRepo := postgres.NewVehicleRepository(store)
	assetRepo := postgres.NewAssetRepository(store)
	eventRepo := postgres.NewEventRepository(store)

	// ----- Inference -----
	groq, err := chatUsecase.NewGroqClient(s.cfg.GroqBaseURL, s.cfg.GroqAPIKey, s.cfg.GroqModel)
	if err != nil {
		return err
	}

	// ----- Services -----
	vehicleService := vehicleUsecase.NewVehicleService(vehicleRepo, logger)
	assetService := assetUsecase.NewAssetService(assetRepo, logger)
	eventService := eventUsecase.NewEventService(eventRepo, logger)
	reportService := reportUsecase.NewReportService(vehicleService, assetService, logger)
	chatService := chatUsecase.NewChatService(
		vehicleRepo,
		assetRepo,
		eventRepo,
		redisClient,
		groq,
		s.cfg.SnapshotTTL,
		logger,
	)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(tokens, s.cfg.OperatorUser, s.cfg.OperatorPasswordHash, logger)
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(vehicleService)
	assetHandlerInst := assetHandler.NewAssetHandler(assetService)
	eventHandlerInst := eventHandler.NewEventHandler(eventService)
	reportHandlerInst := reportHandler.NewReportHandler(reportService)
	chatHandlerInst := chatHandler.NewChatHandler(chatService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		VehicleHandler: vehicleHandlerInst,
		AssetHandler:   assetHandlerInst,
		EventHandler:   eventHandlerInst,
		ReportHandler:  reportHandlerInst,
		ChatHandler:    chatHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases the connection pools.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
