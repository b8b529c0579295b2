package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/config"
	"github.com/troski/troski/internal/pkg/database"
	"github.com/troski/troski/internal/pkg/health"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/mailer"
	"github.com/troski/troski/internal/pkg/mapbox"
	"github.com/troski/troski/internal/pkg/middleware"
	"github.com/troski/troski/internal/pkg/models"
	nsqpkg "github.com/troski/troski/internal/pkg/nsq"
	"github.com/troski/troski/internal/pkg/server"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/internal/pkg/validator"
	wspkg "github.com/troski/troski/internal/pkg/websocket"
	"github.com/troski/troski/services/auth"
	authGateway "github.com/troski/troski/services/auth/gateway"
	authHandler "github.com/troski/troski/services/auth/handler"
	authUsecase "github.com/troski/troski/services/auth/usecase"
	"github.com/troski/troski/services/booking"
	bookingGateway "github.com/troski/troski/services/booking/gateway"
	bookingHandler "github.com/troski/troski/services/booking/handler"
	bookingRepository "github.com/troski/troski/services/booking/repository"
	bookingUsecase "github.com/troski/troski/services/booking/usecase"
	"github.com/troski/troski/services/notification"
	notificationHandler "github.com/troski/troski/services/notification/handler"
	notificationRepository "github.com/troski/troski/services/notification/repository"
	notificationUsecase "github.com/troski/troski/services/notification/usecase"
	"github.com/troski/troski/services/support"
	supportHandler "github.com/troski/troski/services/support/handler"
	supportRepository "github.com/troski/troski/services/support/repository"
	supportUsecase "github.com/troski/troski/services/support/usecase"
	toastHandler "github.com/troski/troski/services/toast/handler"
	toastUsecase "github.com/troski/troski/services/toast/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("TROSKI_CONFIG")
	if configPath == "" {
		configPath = "config/troski.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	mode := "live"
	if configs.App.MockMode() {
		mode = "mock"
	}
	zapLogger.Info("Starting application",
		zap.String("app", configs.App.Name),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("mode", mode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthService := health.NewHealthService()

	// Redis backs sessions, bookings and notifications when configured
	var redisClient *database.RedisClient
	if configs.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		healthService.AddChecker("redis", health.PingChecker{Pinger: redisClient})
	} else {
		zapLogger.Warn("Redis not configured, keeping state in memory")
	}

	// PostgreSQL backs support tickets when configured
	var postgresClient *database.PostgresClient
	if configs.Database.Enabled() {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		healthService.AddChecker("postgres", health.PingChecker{Pinger: postgresClient})
	} else {
		zapLogger.Warn("PostgreSQL not configured, serving support fixtures from memory")
	}

	var sessionStore session.Store
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient, configs.Session.TTL)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	tokens := session.NewTokens(sessionStore)

	// Toasts
	toastHub := toastUsecase.NewHub(configs.Booking)
	wsManager := wspkg.NewManager()

	// Upstream API client, used by the live gateways. Failures surface as toasts.
	apiClient := apiclient.NewClient(apiclient.ConfigFromModel(configs.API)).
		WithTokenStore(tokens).
		WithErrorHook(toastHub.ReportAPIError)

	// Booking events go to NSQ when a daemon is configured
	var publisher booking.EventPublisher
	var producer *nsqpkg.Producer
	if configs.NSQ.NSQDAddress != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		publisher = producer
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}

	// Booking
	var bookingGW booking.BookingGW
	if configs.App.MockMode() {
		bookingGW = bookingGateway.NewSimulator(configs.Booking, bookingGateway.NewRand(time.Now().UnixNano()))
	} else {
		bookingGW = bookingGateway.NewHTTPGateway(apiClient)
	}

	var bookingRepo booking.BookingRepo
	if redisClient != nil {
		bookingRepo = bookingRepository.NewBookingRepository(configs, redisClient)
	} else {
		bookingRepo = bookingRepository.NewMemoryBookingRepository()
	}

	var geocoder booking.Geocoder
	if mapboxGeocoder := mapbox.NewGeocoder(configs.Mapbox); mapboxGeocoder.Enabled() {
		geocoder = mapboxGeocoder
	}

	bookingUC := bookingUsecase.NewBookingUC(bookingGW, bookingRepo, publisher, toastHub, geocoder)

	// Notifications, one use case per role
	var notificationRepo notification.NotificationRepo
	if redisClient != nil {
		notificationRepo = notificationRepository.NewNotificationRepository(redisClient)
	} else {
		notificationRepo = notificationRepository.NewMemoryNotificationRepository()
	}

	riderNotifications, err := notificationUsecase.NewNotificationUC(ctx, models.RoleRider, notificationRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize rider notifications", zap.Error(err))
	}
	driverNotifications, err := notificationUsecase.NewNotificationUC(ctx, models.RoleDriver, notificationRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize driver notifications", zap.Error(err))
	}

	// Auth
	var authGW auth.AuthGW
	var codeSender auth.CodeSender
	if configs.App.MockMode() {
		authGW = authGateway.NewMockGateway()
	} else {
		authGW = authGateway.NewHTTPGateway(apiClient)
		if configs.Mail.Enabled() {
			codeSender = mailer.NewMailgunMailer(configs.Mail, zapLogger)
		}
	}
	authUC := authUsecase.NewAuthUC(authGW, sessionStore, codeSender)

	// Support
	var supportRepo support.SupportRepo
	if postgresClient != nil {
		supportRepo = supportRepository.NewSupportRepository(postgresClient.GetDB())
	} else {
		tickets, messages := supportUsecase.Fixtures(time.Now())
		supportRepo = supportRepository.NewMemorySupportRepository(tickets, messages)
	}
	supportUC := supportUsecase.NewSupportUC(supportRepo)

	// Handlers
	bookingHandlers := bookingHandler.NewHandler(bookingUC)
	toastHandlers := toastHandler.NewHandler(toastHub, wsManager)
	notificationHandlers := notificationHandler.NewHandler(riderNotifications, driverNotifications)
	authHandlers := authHandler.NewHandler(authUC, configs.API.SignInPath)
	supportHandlers := supportHandler.NewHandler(supportUC)

	if configs.NSQ.NSQDAddress != "" || configs.NSQ.LookupdAddress != "" {
		if err := notificationHandlers.InitNSQConsumers(configs.NSQ); err != nil {
			zapLogger.Fatal("Failed to initialize NSQ consumers", zap.Error(err))
		}
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.SessionMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name, mode, healthService)

	requireUser := middleware.RequireUser(sessionStore, configs.API.SignInPath)
	authHandlers.RegisterRoutes(e, requireUser)
	bookingHandlers.RegisterRoutes(e, requireUser)
	notificationHandlers.RegisterRoutes(e, requireUser)
	supportHandlers.RegisterRoutes(e, requireUser)
	toastHandlers.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	srv := server.NewGracefulServer(e, zapLogger, addr, time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if redisClient != nil {
		srv.Register("redis", func(context.Context) error { return redisClient.Close() })
	}
	if postgresClient != nil {
		srv.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	}
	if producer != nil {
		srv.Register("nsq producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	srv.Register("nsq consumers", func(context.Context) error {
		notificationHandlers.StopNSQConsumers()
		return nil
	})
	srv.Register("toasts", func(context.Context) error {
		toastHub.Close()
		return nil
	})

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}
