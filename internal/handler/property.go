package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

// GetAllPropertiesRequest carries the search filters. Prices are in
// currency units.
type GetAllPropertiesRequest struct {
	City                 string  `query:"city"`
	OwnerID              int64   `query:"owner_id" validate:"gte=0"`
	MinimumPricePerNight float64 `query:"minimum_price_per_night" validate:"gte=0"`
	MaximumPricePerNight float64 `query:"maximum_price_per_night" validate:"gte=0"`
	MinimumRating        float64 `query:"minimum_rating" validate:"gte=0,lte=5"`
	Limit                int     `query:"limit" validate:"gte=0"`
}

func (r *GetAllPropertiesRequest) Validate() error {
	return validation.Struct(r)
}

func (r *GetAllPropertiesRequest) filter() model.PropertyFilter {
	return model.PropertyFilter{
		City:                 r.City,
		OwnerID:              r.OwnerID,
		MinimumPricePerNight: r.MinimumPricePerNight,
		MaximumPricePerNight: r.MaximumPricePerNight,
		MinimumRating:        r.MinimumRating,
		Limit:                r.Limit,
	}
}

func (h *PropertyHandler) GetAllProperties(c echo.Context, req *GetAllPropertiesRequest) ([]model.Property, error) {
	return h.properties.GetAllProperties(c.Request().Context(), req.filter())
}

// AddPropertyRequest is the body of POST /properties. CostPerNight is in cents.
type AddPropertyRequest struct {
	model.NewProperty
}

func (r *AddPropertyRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) AddProperty(c echo.Context, req *AddPropertyRequest) (*model.Property, error) {
	return h.properties.AddProperty(c.Request().Context(), req.NewProperty)
}
