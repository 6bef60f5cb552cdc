package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/app"
	iauth "github.com/volunteerconnect/server/internal/auth"
	"github.com/volunteerconnect/server/internal/handlers"
	"github.com/volunteerconnect/server/internal/middleware"
	"github.com/volunteerconnect/server/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// Health endpoint (public)
	r.GET("/health", handlers.Health(db))

	notificationSvc, err := services.NewNotificationService(db)
	if err != nil {
		return nil, err
	}
	profileSvc, err := services.NewProfileService(db)
	if err != nil {
		return nil, err
	}
	matchingSvc, err := services.NewMatchingService(db, profileSvc, notificationSvc)
	if err != nil {
		return nil, err
	}

	authHandler, err := handlers.NewAuthHandler(db, jwt, cfg.Auth.LocalProviderConfig())
	if err != nil {
		return nil, err
	}

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	requireAuth := middleware.Auth(jwt)

	api := r.Group("/api")
	api.Use(requireAuth)

	api.GET("/auth/me", authHandler.Me)

	// Events
	eventHandler, err := handlers.NewEventHandler(db, notificationSvc)
	if err != nil {
		return nil, err
	}
	events := api.Group("/events")
	{
		events.GET("", eventHandler.List)
		events.POST("", eventHandler.Create)
		events.PUT("/:id", eventHandler.Update)
	}

	// Volunteer profiles
	profileHandler, err := handlers.NewProfileHandler(db)
	if err != nil {
		return nil, err
	}
	profile := api.Group("/profile")
	{
		profile.GET("", profileHandler.Get)
		profile.POST("", profileHandler.Upsert)
		profile.PUT("", profileHandler.Upsert)
	}

	// Notifications
	notificationHandler := handlers.NewNotificationHandler(notificationSvc)
	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("", notificationHandler.Create)
	}

	// Volunteer history
	historyHandler, err := handlers.NewHistoryHandler(db)
	if err != nil {
		return nil, err
	}
	history := api.Group("/volunteer-history")
	{
		history.GET("", historyHandler.List)
		history.POST("", historyHandler.Create)
		history.PUT("/:id", historyHandler.Update)
	}

	// Matching
	matchingHandler := handlers.NewMatchingHandler(matchingSvc)
	matching := api.Group("/matching")
	{
		matching.GET("", matchingHandler.List)
		matching.POST("", matchingHandler.Accept)
	}

	// Organization dashboard
	orgHandler, err := handlers.NewOrganizationHandler(db)
	if err != nil {
		return nil, err
	}
	org := api.Group("/organization")
	{
		org.GET("/profile", orgHandler.Profile)
		org.GET("/stats", orgHandler.Stats)
		org.GET("/volunteer-data", orgHandler.VolunteerData)
	}

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
