// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/transaction-categorizer/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	transactions := r.engine.Group("/transactions")
	{
		transactions.POST("", r.transactionController.Submit)
		transactions.POST("/upload", r.transactionController.Upload)
		transactions.GET("", r.transactionController.List)
		transactions.GET("/:id", r.transactionController.GetByID)
	}

	return r.engine
}
