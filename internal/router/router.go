// Package router builds the echo instance: global middleware in order,
// the system routes and the versioned API.
package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerV1Routes(v1, h)

	return router
}

func registerV1Routes(g *echo.Group, h *handler.Handlers) {
	properties := g.Group("/properties")
	properties.GET("", handler.Handle(h.Property.GetAllProperties, http.StatusOK))
	properties.POST("", handler.Handle(h.Property.AddProperty, http.StatusCreated))

	users := g.Group("/users")
	users.GET("", handler.Handle(h.User.GetUserByEmail, http.StatusOK))
	users.POST("", handler.Handle(h.User.AddUser, http.StatusCreated))
	users.GET("/:id", handler.Handle(h.User.GetUser, http.StatusOK))
	users.GET("/:id/reservations", handler.Handle(h.Reservation.GetAllReservations, http.StatusOK))
}
