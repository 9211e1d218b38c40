package repository

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

// propertyColumns is the column order every property scanner expects.
var propertyColumns = []string{
	"properties.id",
	"properties.owner_id",
	"properties.title",
	"properties.description",
	"properties.thumbnail_photo_url",
	"properties.cover_photo_url",
	"properties.cost_per_night",
	"properties.parking_spaces",
	"properties.number_of_bathrooms",
	"properties.number_of_bedrooms",
	"properties.country",
	"properties.street",
	"properties.city",
	"properties.province",
	"properties.post_code",
	"properties.active",
}

func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	return u, err
}

func scanProperty(row pgx.Row) (model.Property, error) {
	var p model.Property
	err := row.Scan(propertyDest(&p)...)
	return p, err
}

// scanRatedProperty reads propertyColumns followed by the average rating.
func scanRatedProperty(row pgx.CollectableRow) (model.Property, error) {
	var p model.Property
	err := row.Scan(append(propertyDest(&p), &p.AverageRating)...)
	return p, err
}

// scanReservation reads the reservation columns followed by propertyColumns.
func scanReservation(row pgx.CollectableRow) (model.Reservation, error) {
	var r model.Reservation
	dest := append([]any{&r.ID, &r.StartDate, &r.EndDate, &r.PropertyID, &r.GuestID}, propertyDest(&r.Property)...)
	err := row.Scan(dest...)
	return r, err
}
