// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-ops/internal/auth"
	"github.com/iliyamo/restaurant-ops/internal/config"
	"github.com/iliyamo/restaurant-ops/internal/handler"
	"github.com/iliyamo/restaurant-ops/internal/middleware"
	"github.com/iliyamo/restaurant-ops/internal/ws"
)

// Deps bundles everything the route table needs. main builds one of these
// and hands it over; the router owns which middleware guards which path.
type Deps struct {
	Cfg       config.Config
	CacheCfg  config.CacheConfig
	RateCfg   config.RateLimitConfig
	Redis     *redis.Client
	Users     middleware.UserLoader
	Auth      *handler.AuthHandler
	UserH     *handler.UserHandler
	Menu      *handler.MenuHandler
	Category  *handler.CategoryHandler
	SubCat    *handler.SubCategoryHandler
	Table     *handler.TableHandler
	Order     *handler.OrderHandler
	Resv      *handler.ReservationHandler
	MenuGate  *ws.Gate
	OrderGate *ws.Gate
}

// RegisterRoutes registers the full route table on the provided Echo
// instance. Reads on menu, category and table data are public and cached;
// mutations require an authenticated user whose role carries the "crud"
// permission. Order status updates are restricted to staff roles.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	jwt := middleware.JWTAuth(d.Cfg.JWTSecret, d.Users)
	optional := middleware.OptionalAuth(d.Cfg.JWTSecret, d.Users)
	crud := middleware.RequirePermission(auth.PermCRUD)
	cache := middleware.ResponseCache(d.CacheCfg, d.Redis)
	rate := middleware.RateLimit(d.RateCfg, d.Redis)

	// Credential endpoints sit behind the rate limiter.
	ag := e.Group("/auth")
	ag.POST("/register", d.Auth.Register, rate)
	ag.POST("/login", d.Auth.Login, rate)
	e.GET("/me", d.Auth.Me, jwt)

	// User administration: any authenticated user may hit these; the
	// handler exposes no password hashes.
	ug := e.Group("/users", jwt)
	ug.GET("", d.UserH.List)
	ug.GET("/:id", d.UserH.Get)
	ug.PUT("/:id", d.UserH.Update)
	ug.DELETE("/:id", d.UserH.Delete)

	// Menu: public reads (cached), staff-only mutations.
	e.GET("/menu", d.Menu.List, cache)
	e.GET("/menu/:id", d.Menu.Get, cache)
	e.POST("/menu", d.Menu.Create, jwt, crud)
	e.PUT("/menu/:id", d.Menu.Update, jwt, crud)
	e.DELETE("/menu/:id", d.Menu.Delete, jwt, crud)

	e.GET("/category", d.Category.List, cache)
	e.GET("/category/:id", d.Category.Get, cache)
	e.POST("/category", d.Category.Create, jwt, crud)
	e.PUT("/category/:id", d.Category.Update, jwt, crud)
	e.DELETE("/category/:id", d.Category.Delete, jwt, crud)

	e.GET("/sub_categories", d.SubCat.List, cache)
	e.GET("/sub_categories/:id", d.SubCat.Get, cache)
	e.POST("/sub_categories", d.SubCat.Create, jwt, crud)
	e.PUT("/sub_categories/:id", d.SubCat.Update, jwt, crud)
	e.DELETE("/sub_categories/:id", d.SubCat.Delete, jwt, crud)

	e.GET("/tables", d.Table.List, cache)
	e.POST("/tables", d.Table.Create, jwt, crud)
	e.PUT("/tables/:id", d.Table.Update, jwt, crud)
	e.DELETE("/tables/:id", d.Table.Delete, jwt, crud)

	// Orders: guests place orders without an account, so creation takes
	// the optional gate. Status moves are what staff screens do.
	e.POST("/orders", d.Order.Create, optional)
	e.GET("/orders", d.Order.List, jwt, middleware.RequireRoles(auth.EmployeeRoles...))
	e.GET("/orders/:id", d.Order.Get, optional)
	e.PUT("/orders/:id/status", d.Order.UpdateStatus, jwt, middleware.RequireRoles(auth.EmployeeRoles...))

	rg := e.Group("/reservations", jwt)
	rg.GET("", d.Resv.List)
	rg.GET("/:id", d.Resv.Get)
	rg.POST("", d.Resv.Create)
	rg.PUT("/:id", d.Resv.Update)
	rg.DELETE("/:id", d.Resv.Delete)

	// Live feeds. The socket gate does its own token check.
	e.GET("/ws/menu", d.MenuGate.Serve)
	e.GET("/ws/orders", d.OrderGate.Serve)
}
