package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error)
}

type ReservationService struct {
	logger       *zerolog.Logger
	reservations ReservationStore
}

func NewReservationService(logger *zerolog.Logger, reservations ReservationStore) *ReservationService {
	return &ReservationService{
		logger:       logger,
		reservations: reservations,
	}
}

func (s *ReservationService) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	reservations, err := s.reservations.GetAllReservations(ctx, guestID, limit)
	if err != nil {
		s.logger.Error().Err(err).Int64("guest_id", guestID).Msg("failed to get reservations")
		return nil, err
	}
	return reservations, nil
}
