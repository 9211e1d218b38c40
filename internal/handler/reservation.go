package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

type GetAllReservationsRequest struct {
	GuestID int64 `param:"id" validate:"required,gt=0"`
	Limit   int   `query:"limit" validate:"gte=0"`
}

func (r *GetAllReservationsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ReservationHandler) GetAllReservations(c echo.Context, req *GetAllReservationsRequest) ([]model.Reservation, error) {
	return h.reservations.GetAllReservations(c.Request().Context(), req.GuestID, req.Limit)
}
