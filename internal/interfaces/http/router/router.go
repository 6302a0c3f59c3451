package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar registers a set of routes on an API route group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router assembles the gin engine from middleware and route registrars
type Router struct {
	engine     *gin.Engine
	logger     *zap.Logger
	registrars []RouteRegistrar
}

// New creates a router around an existing gin engine
func New(engine *gin.Engine, logger *zap.Logger) *Router {
	return &Router{
		engine: engine,
		logger: logger,
	}
}

// Register adds route registrars to be mounted by Setup
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.registrars = append(r.registrars, registrars...)
}

// Setup mounts all registered routes under /api/v1
func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	r.logger.Info("routes mounted",
		zap.Int("registrars", len(r.registrars)))
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
