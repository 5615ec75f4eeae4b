package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propview/real-estate-api/internal/api/handler"
	"github.com/propview/real-estate-api/internal/api/middleware"
	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
	"github.com/propview/real-estate-api/internal/core/service"
	mongorepo "github.com/propview/real-estate-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/propview/real-estate-api/internal/infrastructure/db/redis"
	"github.com/propview/real-estate-api/internal/infrastructure/http/handlers"
	"github.com/propview/real-estate-api/internal/pkg/config"
	"github.com/propview/real-estate-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploader ports.ImageUploader, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("realestate"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	developerRepo := mongorepo.NewDeveloperRepository(db)
	compoundRepo := mongorepo.NewCompoundRepository(db)
	propertyRepo := mongorepo.NewPropertyRepository(db)
	bookingRepo := mongorepo.NewBookingRepository(db)
	policyRepo := mongorepo.NewPolicyRepository(db)
	policyCache := redisrepo.NewPolicyCache(rdb)

	// --- Services ---
	log := logger.Get()
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	developerService := service.NewDeveloperService(developerRepo, log)
	compoundService := service.NewCompoundService(compoundRepo, developerRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, compoundRepo, developerRepo, log)
	bookingService := service.NewBookingService(bookingRepo, propertyRepo, log)
	policyService := service.NewPolicyService(policyRepo, policyCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	developerHandler := handler.NewDeveloperHandler(developerService, uploader)
	compoundHandler := handler.NewCompoundHandler(compoundService, uploader)
	propertyHandler := handler.NewPropertyHandler(propertyService, uploader)
	bookingHandler := handler.NewBookingHandler(bookingService)
	policyHandler := handler.NewPolicyHandler(policyService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/validate-token", authHandler.ValidateToken, auth)

	// --- Users (admin only) ---
	e.POST("/users/create", userHandler.Create, auth, adminOnly)

	// --- Properties ---
	e.GET("/properties/all", propertyHandler.List)
	e.GET("/properties/one/:id", propertyHandler.Get)
	e.POST("/properties/create", propertyHandler.Create,
		auth, middleware.RequireMenuItem(domain.MenuProperties, policyService))

	// --- Developers ---
	e.GET("/developers/all", developerHandler.List)
	e.POST("/developers/create", developerHandler.Create,
		auth, middleware.RequireMenuItem(domain.MenuDevelopers, policyService))

	// --- Compounds ---
	e.GET("/compounds/all", compoundHandler.List)
	e.POST("/compounds/create", compoundHandler.Create,
		auth, middleware.RequireMenuItem(domain.MenuCompounds, policyService))

	// --- Bookings ---
	e.POST("/bookings/create", bookingHandler.Create,
		auth, middleware.RequireMenuItem(domain.MenuBookings, policyService))

	// --- Role policies ---
	e.POST("/user-policy/create", policyHandler.Create, auth, adminOnly)
	e.PUT("/user-policy/update/:id", policyHandler.Update, auth, adminOnly)
	e.DELETE("/user-policy/delete/:id", policyHandler.Delete, auth, adminOnly)
	e.GET("/user-policy/get/one/:role", policyHandler.GetForRole, auth)
	e.GET("/user-policy/get/company", policyHandler.ListForCompany, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
