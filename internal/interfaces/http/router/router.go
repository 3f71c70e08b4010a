// Package router assembles the HTTP route tree.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a handler's routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// PublicRouteRegistrar registers routes that skip JWT authentication
type PublicRouteRegistrar interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Public registrars go on the bare
// API group; the rest sit behind the auth middleware chain.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	authChain  []gin.HandlerFunc
	public     []PublicRouteRegistrar
	protected  []RouteRegistrar
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAuthChain sets the middleware protecting non-public routes
func WithAuthChain(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.authChain = middleware
	}
}

// NewRouter creates a Router
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPublic adds a registrar whose routes skip authentication
func (r *Router) RegisterPublic(registrar PublicRouteRegistrar) *Router {
	r.public = append(r.public, registrar)
	return r
}

// Register adds a registrar behind the auth chain
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.protected = append(r.protected, registrar)
	return r
}

// Setup wires every registered route onto the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterPublicRoutes(api)
	}

	authed := api.Group("", r.authChain...)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(authed)
	}
}
