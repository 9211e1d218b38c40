package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

type PropertyStore interface {
	GetAllProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error)
	AddProperty(ctx context.Context, payload model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	logger     *zerolog.Logger
	properties PropertyStore
}

func NewPropertyService(logger *zerolog.Logger, properties PropertyStore) *PropertyService {
	return &PropertyService{
		logger:     logger,
		properties: properties,
	}
}

func (s *PropertyService) GetAllProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	properties, err := s.properties.GetAllProperties(ctx, filter)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", filter.City).
			Int64("owner_id", filter.OwnerID).
			Msg("failed to search properties")
		return nil, err
	}
	return properties, nil
}

func (s *PropertyService) AddProperty(ctx context.Context, payload model.NewProperty) (*model.Property, error) {
	property, err := s.properties.AddProperty(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", payload.OwnerID).Msg("failed to add property")
		return nil, err
	}

	s.logger.Info().
		Int64("property_id", property.ID).
		Int64("owner_id", property.OwnerID).
		Msg("property added")

	return property, nil
}
