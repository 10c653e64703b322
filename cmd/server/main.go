package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitguide/fitness-app/internal/ai"
	"fitguide/fitness-app/internal/api"
	"fitguide/fitness-app/internal/catalog"
	"fitguide/fitness-app/internal/config"
	"fitguide/fitness-app/internal/localcache"
	"fitguide/fitness-app/internal/logging"
	"fitguide/fitness-app/internal/metrics"
	"fitguide/fitness-app/internal/repository"
	"fitguide/fitness-app/internal/repository/mongo"
	"fitguide/fitness-app/internal/repository/postgres"
	"fitguide/fitness-app/internal/service"
	"fitguide/fitness-app/internal/storage"
	"fitguide/fitness-app/internal/workoutlog"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type repositories struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	logs     repository.WorkoutLogRepository
	close    func()
}

// @title FitGuide API
// @version 1.0
// @description Exercise recommendations, workout logging and AI coaching.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Anonymous callers send X-Device-ID instead.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Infof("starting fitguide server, remote=%s local=%s", cfg.Remote.Driver, cfg.Local.Driver)

	ctx := context.Background()

	// --- Metrics ---
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitguide", "server", promRegistry)

	// --- Remote store ---
	repos, err := openRepositories(ctx, cfg, promRegistry)
	if err != nil {
		log.Fatalf("could not open remote store: %s", err)
	}
	defer repos.close()

	// --- Local cache ---
	var redisClient *redis.Client
	if cfg.Local.Driver == config.LocalRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Local.RedisAddr,
			DB:   0,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Errorf("close redis: %s", err)
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Errorf("failed to ping redis: %s", err)
		}
	}
	cache, err := openLocalCache(cfg.Local, redisClient)
	if err != nil {
		log.Fatalf("could not open local cache: %s", err)
	}

	// --- Catalog ---
	exerciseCatalog := catalog.Default()
	if cfg.Catalog.Path != "" {
		if exerciseCatalog, err = catalog.LoadFile(cfg.Catalog.Path); err != nil {
			log.Fatalf("could not load catalog: %s", err)
		}
	}
	log.Infof("exercise catalog loaded: %d exercises", exerciseCatalog.Len())

	store := workoutlog.NewStore(repos.logs, cache, metricsManager, workoutlog.Config{
		ReadTimeout:  cfg.Remote.ReadTimeout,
		WriteTimeout: cfg.Remote.WriteTimeout,
	})

	// --- AI coach ---
	var generator ai.Generator
	gemini, err := ai.NewGeminiGenerator(ctx, cfg.AI)
	switch {
	case errors.Is(err, ai.ErrDisabled):
		log.Warnln("ai.api_key not set, coach will serve static content")
	case err != nil:
		log.Errorf("could not create gemini client, coach will serve static content: %s", err)
	case redisClient != nil && cfg.AI.RequestsPerMinute > 0:
		generator = ai.NewLimitedGenerator(gemini, redis_rate.NewLimiter(redisClient), "ai:global", cfg.AI.RequestsPerMinute)
	default:
		generator = gemini
	}
	coach := ai.NewCoach(generator, metricsManager)

	// --- Object storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		if fileStorage, err = storage.NewS3Storage(ctx, cfg.S3); err != nil {
			log.Fatalf("could not initialize s3 storage: %s", err)
		}
	} else {
		log.Warnln("s3.bucket_name not set, photo uploads disabled")
	}

	// --- Services ---
	profileService := service.NewProfileService(repos.profiles)
	exerciseService := service.NewExerciseService(exerciseCatalog, profileService, cfg.Catalog.PageSize)
	services := api.Services{
		Auth:     service.NewAuthService(repos.users, store, profileService, cfg.JWT.Secret, cfg.JWT.Expiration),
		Profile:  profileService,
		Exercise: exerciseService,
		Workout:  service.NewWorkoutService(store, exerciseService),
		Coach:    service.NewCoachService(coach, profileService),
		Scan:     service.NewScanService(fileStorage, coach),
		Devices:  store,
	}

	// --- HTTP ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, services, metricsManager, promRegistry)

	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// No WriteTimeout: /logs/events is a long-lived stream.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	// Let background syncs finish before the stores close.
	store.Wait()
	log.Infoln("server exiting")
}

func openRepositories(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*repositories, error) {
	switch cfg.Remote.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		reg.MustRegister(pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": "fitguide"}))
		return &repositories{
			users:    postgres.NewUserRepo(pool),
			profiles: postgres.NewProfileRepo(pool),
			logs:     postgres.NewWorkoutLogRepo(pool),
			close:    pool.Close,
		}, nil
	default:
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.Name)

		go func() {
			ictx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ictx, db)
		}()

		return &repositories{
			users:    mongo.NewMongoUserRepository(db),
			profiles: mongo.NewMongoProfileRepository(db),
			logs:     mongo.NewMongoWorkoutLogRepository(db),
			close: func() {
				if err := mongo.DisconnectDB(client); err != nil {
					log.Errorf("disconnect mongo: %s", err)
				}
			},
		}, nil
	}
}

func openLocalCache(cfg config.LocalConfig, redisClient *redis.Client) (localcache.Cache, error) {
	switch cfg.Driver {
	case config.LocalRedis:
		return localcache.NewRedisCache(redisClient, cfg.Namespace), nil
	case config.LocalMemory:
		log.Warnln("local cache is in memory, pending logs are lost on restart")
		return localcache.NewMemoryCache(), nil
	default:
		return localcache.NewFileCache(cfg.Path)
	}
}
