package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"lightbnb/src/core/domain"
)

// GetAllReservations lists a guest's reservations with the reserved property.
// The review join is kept with GROUP BY properties.id, reservations.id so
// each reservation appears once however many reviews its property has.
func (r *PostgresRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error) {
	const q = `
		SELECT reservations.id, reservations.start_date, reservations.end_date,
			reservations.property_id, reservations.guest_id, ` + propertyColumns + `
		FROM reservations
		JOIN properties ON reservations.property_id = properties.id
		JOIN property_reviews ON properties.id = property_reviews.property_id
		WHERE reservations.guest_id = $1
		GROUP BY properties.id, reservations.id
		ORDER BY reservations.start_date ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, q, guestID, domain.NormalizeLimit(limit))
	if err != nil {
		return nil, r.translateError(ctx, "GetAllReservations", err)
	}
	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ReservationWithProperty, error) {
		var rp domain.ReservationWithProperty
		res := &rp.Reservation
		dest := append([]any{&res.ID, &res.StartDate, &res.EndDate, &res.PropertyID, &res.GuestID}, propertyFields(&rp.Property)...)
		err := row.Scan(dest...)
		return rp, err
	})
	if err != nil {
		return nil, r.translateError(ctx, "GetAllReservations", err)
	}
	return reservations, nil
}
