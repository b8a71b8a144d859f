package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"lightbnb/src/core/domain"
)

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description, ` +
	`properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night, ` +
	`properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms, ` +
	`properties.country, properties.street, properties.city, properties.province, ` +
	`properties.post_code, properties.active`

// propertyFields returns scan destinations in propertyColumns order.
func propertyFields(p *domain.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province,
		&p.PostCode, &p.Active,
	}
}

// GetAllProperties lists properties with their average review rating.
// Properties without reviews are excluded by the inner join.
func (r *PostgresRepository) GetAllProperties(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.PropertyWithRating, error) {
	q, args := buildPropertySearch(filter, limit)
	r.logFor(ctx).Debug().Str("sql", q).Interface("args", args).Msg("property search")

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, r.translateError(ctx, "GetAllProperties", err)
	}
	properties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PropertyWithRating, error) {
		var p domain.PropertyWithRating
		err := row.Scan(append(propertyFields(&p.Property), &p.AverageRating)...)
		return p, err
	})
	if err != nil {
		return nil, r.translateError(ctx, "GetAllProperties", err)
	}
	return properties, nil
}

// AddProperty inserts property and returns the stored row with its generated id.
func (r *PostgresRepository) AddProperty(ctx context.Context, property domain.NewProperty) (*domain.Property, error) {
	const q = `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night,
			parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + propertyColumns

	var p domain.Property
	err := r.db.QueryRow(ctx, q,
		property.OwnerID, property.Title, property.Description,
		property.ThumbnailPhotoURL, property.CoverPhotoURL, property.CostPerNight,
		property.ParkingSpaces, property.NumberOfBathrooms, property.NumberOfBedrooms,
		property.Country, property.Street, property.City, property.Province, property.PostCode,
	).Scan(propertyFields(&p)...)
	if err != nil {
		return nil, r.translateError(ctx, "AddProperty", err)
	}
	return &p, nil
}
