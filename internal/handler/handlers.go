package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups every HTTP handler so the router takes a single value.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Property    *PropertyHandler
	User        *UserHandler
	Reservation *ReservationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Property:    NewPropertyHandler(s, services.Properties),
		User:        NewUserHandler(s, services.Users),
		Reservation: NewReservationHandler(s, services.Reservations),
	}
}
