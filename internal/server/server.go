package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"legalcase/internal/config"
	"legalcase/internal/database"
	"legalcase/internal/events"
	"legalcase/internal/handlers"
	"legalcase/internal/middlewares"
	"legalcase/internal/monitoring"
	"legalcase/internal/repositories"
	"legalcase/internal/routes"
	"legalcase/internal/services"
)

// NewServer loads configuration, connects the store and optional
// integrations, and returns a configured HTTP server plus a release function
// to run after Shutdown. Fatal on anything the process cannot run without.
func NewServer() (*http.Server, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	var producer *events.KafkaProducer
	if cfg.KafkaBroker != "" {
		producer, err = events.NewKafkaProducer(cfg.KafkaBroker)
		if err != nil {
			log.Fatalf("failed to connect to Kafka at %s: %v", cfg.KafkaBroker, err)
		}
		log.Println("Connected to Kafka successfully")
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatalf("failed to initialize Sentry: %v", err)
		}
	}

	router := NewRouter(pool, rdb, producer, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, func() { releaseResources(pool, rdb, producer) }
}

// releaseResources drains the event producer before closing the store
// connections, so kafka batches still in their flush window go out instead
// of being dropped at exit. Safe when optional integrations were never
// configured.
func releaseResources(pool *pgxpool.Pool, rdb *redis.Client, producer *events.KafkaProducer) {
	if err := producer.Close(); err != nil {
		log.Printf("failed to close Kafka producer: %v", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("failed to close Redis client: %v", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
}

// NewRouter builds the gin engine and wires repositories, services and
// handlers. rdb and producer may be nil; throttling and change events are
// then disabled.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, producer *events.KafkaProducer, cfg *config.Config) *gin.Engine {
	monitoring.Init()

	router := gin.Default()
	router.Use(corsMiddleware(cfg))
	router.Use(middlewares.RequestID())
	router.Use(middlewares.PrometheusMetrics())
	router.Use(middlewares.SentryCapture())

	// Dependency injection
	adminRepo := repositories.NewAdminRepository(pool)
	lawyerRepo := repositories.NewLawyerRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	caseRepo := repositories.NewCaseRepository(pool)
	appointmentRepo := repositories.NewAppointmentRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)

	var redisRepo *repositories.RedisRepository
	if rdb != nil {
		redisRepo = repositories.NewRedisRepository(rdb)
	}

	authService := services.NewAuthService(adminRepo, redisRepo, cfg.JWTSecret)
	lawyerService := services.NewLawyerService(lawyerRepo, producer)
	clientService := services.NewClientService(clientRepo, producer)
	caseService := services.NewCaseService(caseRepo, producer)
	appointmentService := services.NewAppointmentService(appointmentRepo, producer)
	reportService := services.NewReportService(reportRepo)

	routes.RegisterRoutes(router, cfg.JWTSecret, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Lawyer:      handlers.NewLawyerHandler(lawyerService),
		Client:      handlers.NewClientHandler(clientService),
		Case:        handlers.NewCaseHandler(caseService),
		Appointment: handlers.NewAppointmentHandler(appointmentService),
		Report:      handlers.NewReportHandler(reportService),
	})

	return router
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}

	return cors.New(corsConfig)
}
