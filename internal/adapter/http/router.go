package http

import (
	"github.com/labstack/echo/v4"

	"multisuministros-codes/internal/adapter/middleware"
	"multisuministros-codes/internal/domain/user"
)

type Handlers struct {
	Health        *Handler
	Auth          *AuthHandler
	Requests      *RequestHandler
	Products      *ProductHandler
	Notifications *NotificationHandler
	Settings      *SettingHandler
}

// RegisterRoutes mounts the API. session must already be installed on e;
// idemp guards the request lifecycle writes and may be nil.
func RegisterRoutes(e *echo.Echo, h Handlers, idemp echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/register", h.Auth.Register)

	api := e.Group("/api", middleware.RequireRole())
	admin := middleware.RequireRole(string(user.RoleAdmin))
	seller := middleware.RequireRole(string(user.RoleVendor), string(user.RoleAdmin))

	writes := []echo.MiddlewareFunc{}
	if idemp != nil {
		writes = append(writes, idemp)
	}

	reqs := api.Group("/requests")
	reqs.POST("", h.Requests.Submit, append([]echo.MiddlewareFunc{seller}, writes...)...)
	reqs.GET("/mine", h.Requests.Mine, seller)
	reqs.GET("/pending", h.Requests.Pending, admin)
	reqs.POST("/:id/approve", h.Requests.Approve, append([]echo.MiddlewareFunc{admin}, writes...)...)
	reqs.POST("/:id/reject", h.Requests.Reject, append([]echo.MiddlewareFunc{admin}, writes...)...)

	prods := api.Group("/products", seller)
	prods.GET("/similar", h.Products.Similar)
	prods.GET("/search", h.Products.Search)
	prods.GET("/export", h.Products.Export)

	notes := api.Group("/notifications")
	notes.GET("", h.Notifications.List)
	notes.POST("/read", h.Notifications.MarkAllRead)

	settings := api.Group("/settings", admin)
	settings.GET("/tolerance", h.Settings.GetTolerance)
	settings.PUT("/tolerance", h.Settings.SetTolerance)

	vendors := api.Group("/admin/vendors", admin)
	vendors.GET("", h.Auth.VendorCount)
	vendors.POST("", h.Auth.CreateVendor)
}
