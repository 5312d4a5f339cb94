package main

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/fitcoach-go-api/internal/calstore"
)

// Handler holds shared dependencies (db pool, calorie store, LLM config) for
// all route handlers.
type Handler struct {
	db            *pgxpool.Pool
	calories      *calstore.Store
	openAIBaseURL string // overridable for tests
	openAIModel   string
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		zap.L().Error("[queryOne] query error", zap.Error(err))
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("[queryOne] scan error", zap.Error(err))
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		zap.L().Error("[queryMany] query error", zap.Error(err))
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		zap.L().Error("[queryMany] scan error", zap.Error(err))
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// userKey is the authenticated user's id as the calorie store expects it.
func userKey(c *gin.Context) string {
	return strconv.Itoa(c.GetInt("user_id"))
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// Neon closes idle connections after ~5 minutes.
func getDBPool(dbURL string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		zap.L().Error("[db] unable to parse DB URL", zap.Error(err))
		os.Exit(1)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from Neon's server-side prepared statement cache after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		zap.L().Error("[db] unable to connect to database", zap.Error(err))
		os.Exit(1)
	}
	zap.L().Info("[db] pool ready")
	return pool
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.PUT("/weight-log/:id", h.updateWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)

	h.registerProgramRoutes(api)
}

// registerProgramRoutes registers the program, calorie-map and energy routes.
// Split out so tests can mount them behind a stub auth middleware.
func (h *Handler) registerProgramRoutes(api *gin.RouterGroup) {
	workout := api.Group("/programs/workout")
	workout.GET("", h.getWorkoutProgram)
	workout.POST("/parse", h.parseWorkoutProgram)
	workout.POST("/generate", h.generateWorkoutProgram)
	workout.POST("/estimate", h.estimateWorkoutDay)
	workout.GET("/calories", h.getWorkoutCalories)
	workout.PUT("/calories/:day", h.putWorkoutCalorieDay)
	workout.DELETE("/calories", h.deleteWorkoutCalories)

	meal := api.Group("/programs/meal")
	meal.GET("", h.getMealPlan)
	meal.POST("/parse", h.parseMealPlan)
	meal.POST("/generate", h.generateMealPlan)

	api.GET("/energy/week-summary", h.getEnergyWeekSummary)
}
