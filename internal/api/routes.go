package api

import (
	"net/http"

	"fitguide/fitness-app/internal/metrics"
	"fitguide/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth     service.AuthService
	Profile  service.ProfileService
	Exercise service.ExerciseService
	Workout  service.WorkoutService
	Coach    service.CoachService
	Scan     service.ScanService
	Devices  DeviceIdentity
}

func SetupRoutes(
	router *gin.Engine,
	services Services,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	authHandler := NewAuthHandler(services.Auth)
	profileHandler := NewProfileHandler(services.Profile)
	exerciseHandler := NewExerciseHandler(services.Exercise)
	logHandler := NewWorkoutLogHandler(services.Workout, services.Devices)
	coachHandler := NewCoachHandler(services.Coach, services.Scan)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	apiV1.Use(MetricsMiddleware(metricsManager))
	apiV1.Use(IdentityMiddleware(services.Auth, services.Devices))
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		apiV1.GET("/me", authHandler.Me)

		profileGroup := apiV1.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.SaveProfile)
			profileGroup.GET("/bmi", profileHandler.GetBMI)
			profileGroup.GET("/nutrition", profileHandler.GetNutrition)
		}

		apiV1.GET("/equipment", exerciseHandler.ListEquipment)
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}

		logGroup := apiV1.Group("/logs")
		{
			logGroup.POST("", logHandler.RecordLog)
			logGroup.GET("", logHandler.ListLogs)
			logGroup.DELETE("", logHandler.ClearLogs)
			logGroup.GET("/stats", logHandler.Stats)
			logGroup.GET("/events", logHandler.Events)
			// POST /api/v1/logs/migrate - retry after a login reported migrationPending
			logGroup.POST("/migrate", RequireAuth(), logHandler.MigrateLogs)
		}

		coachGroup := apiV1.Group("/coach")
		{
			coachGroup.POST("/insight", coachHandler.Insight)
			coachGroup.POST("/routine", coachHandler.Routine)
			coachGroup.POST("/meal-plan", coachHandler.MealPlan)
			coachGroup.POST("/chat", coachHandler.Chat)
		}

		scanGroup := apiV1.Group("/scan")
		{
			scanGroup.POST("/upload-url", coachHandler.UploadURL)
			scanGroup.POST("/analyze", coachHandler.Analyze)
		}
	}
}
