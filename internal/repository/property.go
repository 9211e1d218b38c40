package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

var addPropertyQuery = `INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
	cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
	country, street, city, province, post_code, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + strings.Join(propertyColumns, ", ")

type PropertyRepository struct {
	db Querier
}

func NewPropertyRepository(db Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetAllProperties returns the properties matching filter, cheapest first.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	query, args, err := BuildPropertySearch(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build property search: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	properties, err := pgx.CollectRows(rows, scanRatedProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to collect properties: %w", err)
	}

	return properties, nil
}

// AddProperty inserts a property and returns the stored row. The new row is
// visible to GetAllProperties immediately.
func (r *PropertyRepository) AddProperty(ctx context.Context, payload model.NewProperty) (*model.Property, error) {
	row := r.db.QueryRow(ctx, addPropertyQuery,
		payload.OwnerID,
		payload.Title,
		payload.Description,
		payload.ThumbnailPhotoURL,
		payload.CoverPhotoURL,
		payload.CostPerNight,
		payload.ParkingSpaces,
		payload.NumberOfBathrooms,
		payload.NumberOfBedrooms,
		payload.Country,
		payload.Street,
		payload.City,
		payload.Province,
		payload.PostCode,
		payload.Active,
	)

	property, err := scanProperty(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	return &property, nil
}
