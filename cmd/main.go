package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/help_request_system/internal/config"
	v1 "github.com/shenikar/help_request_system/internal/handler/http/v1"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/realtime"
	"github.com/shenikar/help_request_system/internal/repository"
	mongorepo "github.com/shenikar/help_request_system/internal/repository/mongodb"
	"github.com/shenikar/help_request_system/internal/service"
	"github.com/shenikar/help_request_system/internal/webhook"
	"github.com/shenikar/help_request_system/pkg/logger"
	"github.com/shenikar/help_request_system/pkg/mongodb"
	"github.com/shenikar/help_request_system/pkg/postgres"
	redisclient "github.com/shenikar/help_request_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/help_request_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Help Request System API
// @version 1.0
// @description Help request lifecycle and realtime notification API.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// stores - репозитории выбранного хранилища
type stores struct {
	helpRequests service.HelpRequestRepository
	chat         service.ChatRepository
	participants service.ParticipantRepository
	sos          service.AnonymousSOSRepository
	close        func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := mongodb.NewMongoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = mongodb.Disconnect(client)
			return nil, err
		}
		log.Info("Successfully connected to MongoDB")
		return &stores{
			helpRequests: mongorepo.NewHelpRequestRepository(db),
			chat:         mongorepo.NewChatRepository(db),
			participants: mongorepo.NewParticipantRepository(db),
			sos:          mongorepo.NewAnonymousSOSRepository(db),
			close: func() {
				if err := mongodb.Disconnect(client); err != nil {
					log.WithError(err).Warn("Failed to disconnect from MongoDB")
				}
			},
		}, nil
	default:
		if err := runMigrations(cfg, log); err != nil {
			return nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return &stores{
			helpRequests: repository.NewHelpRequestRepository(dbpool),
			chat:         repository.NewChatRepository(dbpool),
			participants: repository.NewParticipantRepository(dbpool),
			sos:          repository.NewAnonymousSOSRepository(dbpool),
			close:        dbpool.Close,
		}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	policy, err := models.ParseReleasePolicy(cfg.ReleasePolicy)
	if err != nil {
		log.Fatalf("Invalid release policy: %v", err)
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к хранилищу (PostgreSQL или MongoDB)
	store, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open store %q: %v", cfg.StoreDriver, err)
	}
	defer store.close()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхук диспетчерской: без WEBHOOK_URL события не ставятся в очередь
	var dispatch webhook.DispatchPublisher = webhook.NopDispatchPublisher{}
	if cfg.WebhookURL != "" {
		dispatch = webhook.NewRedisDispatchPublisher(redisClient)
		webhook.NewDispatchWorker(redisClient, log, cfg).Start(ctx)
	}

	// Realtime: реестр подключений, хаб и доставка уведомлений
	registry := realtime.NewRegistry()
	hub := realtime.NewHub(registry, log)
	go hub.Run(ctx)

	var notifier notify.Notifier = realtime.NewBroadcaster(hub, registry, log)
	if cfg.RealtimeFanout == config.FanoutRedis {
		fanout := realtime.NewRedisFanout(redisClient, cfg.RealtimeChannel, notifier, log)
		go fanout.Run(ctx)
		notifier = fanout
	}

	// Инициализация сервисов
	participantService := service.NewParticipantService(
		store.participants,
		repository.NewOfficerCache(redisClient, cfg.OfficerCacheTTL),
		log,
	)
	helpRequestService := service.NewHelpRequestService(store.helpRequests, participantService, notifier, dispatch, policy, log)
	chatService := service.NewChatService(store.chat, helpRequestService, notifier, log)
	sosService := service.NewAnonymousSOSService(store.sos, notifier, dispatch, cfg.SOSWindow, log)

	dispatcher := realtime.NewDispatcher(chatService, hub, log)
	gateway := realtime.NewGateway(hub, dispatcher, cfg.WSAllowedOrigins, cfg.WSSendBuffer, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(helpRequestService, participantService, sosService, gateway, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router.Group("/"))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":    cfg.HTTPPort,
		"store":   cfg.StoreDriver,
		"fanout":  cfg.RealtimeFanout,
		"release": policy,
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	// останавливает хаб, воркер вебхуков и подписчика fan-out
	cancel()

	log.Info("Server gracefully stopped")
}
