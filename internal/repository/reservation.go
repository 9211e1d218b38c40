package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

// getAllReservationsQuery lists a guest's past reservations, earliest first.
var getAllReservationsQuery = `SELECT reservations.id, reservations.start_date, reservations.end_date,
	reservations.property_id, reservations.guest_id, ` + strings.Join(propertyColumns, ", ") + `
FROM reservations
JOIN properties ON properties.id = reservations.property_id
WHERE reservations.guest_id = $1 AND reservations.start_date < now()::date
ORDER BY reservations.start_date ASC, reservations.id ASC
LIMIT $2`

type ReservationRepository struct {
	db Querier
}

func NewReservationRepository(db Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetAllReservations returns up to limit reservations of guestID that started
// before today. A guest with none gets an empty slice.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, getAllReservationsQuery, guestID, model.EffectiveLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for guest_id=%d: %w", guestID, err)
	}

	reservations, err := pgx.CollectRows(rows, scanReservation)
	if err != nil {
		return nil, fmt.Errorf("failed to collect reservations for guest_id=%d: %w", guestID, err)
	}

	return reservations, nil
}
