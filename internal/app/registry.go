package app

import (
	"net/http"

	"go-workforce/internal/backend/attendance"
	"go-workforce/internal/backend/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the shared resources every module is built from. Redis and
// Publisher may be nil.
type Deps struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher kafka.Publisher
	Logger    *zap.Logger
}

func models() []any {
	return []any{
		&employee.Employee{},
		&attendance.Record{},
	}
}

// NewRouter builds the gin engine serving /api and /healthz.
func NewRouter(deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	router.GET("/healthz", healthHandler(deps.DB))

	registerModules(router, deps, logger)
	return router
}

func registerModules(router *gin.Engine, deps Deps, logger *zap.Logger) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(deps.DB)
	employeeRepo := employee.NewRepository(deps.DB)

	// --- Services ---
	attendanceService := attendance.NewService(deps.DB, attendanceRepo, deps.Redis, deps.Publisher, logger)
	employeeService := employee.NewService(deps.DB, employeeRepo, deps.Redis, deps.Publisher, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
