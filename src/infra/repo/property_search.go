package repo

import (
	"lightbnb/src/core/domain"
	"lightbnb/src/infra/db"
)

const propertySearchSelect = `SELECT ` + propertyColumns + `, avg(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id`

// propertySearchPredicates returns the WHERE and HAVING predicates for the
// present filters, in the fixed order city, owner, minimum price, maximum
// price, then rating. Prices are converted to minor units here.
func propertySearchPredicates(f domain.PropertyFilter) (where, having []db.Predicate) {
	if f.City != nil {
		where = append(where, db.Predicate{SQL: "properties.city LIKE $?", Arg: "%" + *f.City + "%"})
	}
	if f.OwnerID != nil {
		where = append(where, db.Predicate{SQL: "properties.owner_id = $?", Arg: *f.OwnerID})
	}
	if f.MinimumPricePerNight != nil {
		where = append(where, db.Predicate{SQL: "properties.cost_per_night >= $?", Arg: domain.ToMinorUnits(*f.MinimumPricePerNight)})
	}
	if f.MaximumPricePerNight != nil {
		where = append(where, db.Predicate{SQL: "properties.cost_per_night <= $?", Arg: domain.ToMinorUnits(*f.MaximumPricePerNight)})
	}
	if f.MinimumRating != nil {
		having = append(having, db.Predicate{SQL: "avg(property_reviews.rating) >= $?", Arg: *f.MinimumRating})
	}
	return where, having
}

// buildPropertySearch renders the property listing statement. Placeholders
// are numbered by final argument position, so WHERE arguments come first,
// then HAVING, and the limit is always last.
func buildPropertySearch(f domain.PropertyFilter, limit int) (string, []any) {
	where, having := propertySearchPredicates(f)

	var qb db.QueryBuilder
	qb.Add(propertySearchSelect)
	qb.Conditions("WHERE", where)
	qb.Add("GROUP BY properties.id")
	qb.Conditions("HAVING", having)
	qb.Add("ORDER BY properties.cost_per_night ASC")
	qb.Add("LIMIT $?", domain.NormalizeLimit(limit))

	return qb.String(), qb.Args()
}
