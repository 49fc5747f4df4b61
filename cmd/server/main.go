package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bubbleflash/service-movers/internal/application"
	"github.com/bubbleflash/service-movers/internal/config"
	"github.com/bubbleflash/service-movers/internal/database"
	"github.com/bubbleflash/service-movers/internal/domain/booking"
	"github.com/bubbleflash/service-movers/internal/domain/catalog"
	"github.com/bubbleflash/service-movers/internal/events"
	"github.com/bubbleflash/service-movers/internal/handler"
	"github.com/bubbleflash/service-movers/internal/health"
	"github.com/bubbleflash/service-movers/internal/logger"
	"github.com/bubbleflash/service-movers/internal/middleware"
	"github.com/bubbleflash/service-movers/internal/payment"
	"github.com/bubbleflash/service-movers/internal/repository"
)

const serviceName = "service-movers"

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName, zap.String("port", cfg.Port))

	db, err := database.Connect(cfg.Database.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.BookingModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.Database.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		producer := events.NewKafkaProducer(cfg.Kafka.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = producer
	} else {
		log.Info("kafka disabled, lifecycle events will not be published")
	}

	bookingRepo := repository.NewBookingRepository(db)
	quoter := booking.NewHomeMoveQuoter()
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	verifier := payment.NewVerifier(cfg.Razorpay.KeySecret)
	itemCatalog := catalog.New(catalog.DefaultServices())

	bookingService := application.NewBookingService(
		bookingRepo,
		quoter,
		gateway,
		verifier,
		publisher,
		log,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	healthHandler := health.NewHandler(db, serviceName)
	healthHandler.RegisterRoutes(router)

	api := router.Group("/api/v1")
	handler.NewBookingHandler(bookingService).RegisterRoutes(api)
	handler.NewCatalogHandler(itemCatalog).RegisterRoutes(api)

	admin := api.Group("/admin", middleware.AdminAuth(cfg.JWTSecret))
	handler.NewAdminHandler(bookingService).RegisterRoutes(admin)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
