package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/shopspring/decimal"
)

// psql numbers placeholders $1, $2, ... in the order arguments are added.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var searchColumns = append(append([]string{}, propertyColumns...),
	"avg(property_reviews.rating)::float8 AS average_rating")

// BuildPropertySearch renders the property search for filter.
//
// Each present filter adds one predicate and its arguments, so the
// placeholders always run $1..$n in argument order with the limit last.
// Properties without reviews are kept with a NULL average rating.
func BuildPropertySearch(filter model.PropertyFilter) (string, []any, error) {
	query := psql.
		Select(searchColumns...).
		From("properties").
		LeftJoin("property_reviews ON properties.id = property_reviews.property_id")

	if filter.City != "" {
		query = query.Where(sq.Like{"properties.city": "%" + filter.City + "%"})
	}

	if filter.OwnerID != 0 {
		query = query.Where(sq.Eq{"properties.owner_id": filter.OwnerID})
	}

	// A single price bound is ignored.
	if filter.HasPriceRange() {
		query = query.Where(sq.And{
			sq.GtOrEq{"properties.cost_per_night": toCents(filter.MinimumPricePerNight)},
			sq.LtOrEq{"properties.cost_per_night": toCents(filter.MaximumPricePerNight)},
		})
	}

	query = query.GroupBy("properties.id")

	if filter.MinimumRating != 0 {
		query = query.Having("avg(property_reviews.rating) >= ?", filter.MinimumRating)
	}

	return query.
		OrderBy("properties.cost_per_night ASC", "properties.id ASC").
		Suffix("LIMIT ?", filter.EffectiveLimit()).
		ToSql()
}

// toCents converts a price in currency units to the stored cent amount.
func toCents(units float64) int64 {
	return decimal.NewFromFloat(units).Shift(2).Round(0).IntPart()
}
