package model

// Property is a row of the properties table. CostPerNight is in cents.
//
// AverageRating is the mean of the property's reviews; nil when it has none.
type Property struct {
	ID                int64    `json:"id"`
	OwnerID           int64    `json:"owner_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url"`
	CoverPhotoURL     string   `json:"cover_photo_url"`
	CostPerNight      int64    `json:"cost_per_night"`
	ParkingSpaces     int      `json:"parking_spaces"`
	NumberOfBathrooms int      `json:"number_of_bathrooms"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms"`
	Country           string   `json:"country"`
	Street            string   `json:"street"`
	City              string   `json:"city"`
	Province          string   `json:"province"`
	PostCode          string   `json:"post_code"`
	Active            bool     `json:"active"`
	AverageRating     *float64 `json:"average_rating,omitempty"`
}

// NewProperty is the payload for inserting a property. CostPerNight is in cents.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

// DefaultLimit is the page size used when a caller asks for none.
const DefaultLimit = 10

// PropertyFilter selects properties for a search. A zero field is absent.
//
// Prices are in currency units (dollars) and only apply when both bounds
// are set.
type PropertyFilter struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight float64
	MaximumPricePerNight float64
	MinimumRating        float64
	Limit                int
}

// HasPriceRange reports whether both price bounds are set.
func (f PropertyFilter) HasPriceRange() bool {
	return f.MinimumPricePerNight != 0 && f.MaximumPricePerNight != 0
}

// EffectiveLimit returns Limit, or DefaultLimit when unset.
func (f PropertyFilter) EffectiveLimit() int {
	return EffectiveLimit(f.Limit)
}

// EffectiveLimit returns limit, or DefaultLimit when it is not positive.
func EffectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
