// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"lightbnb/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository looks up and creates users.
type UserRepository interface {
	// GetUserWithEmail matches email case-insensitively.
	GetUserWithEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserWithID(ctx context.Context, id int64) (*domain.User, error)
	AddUser(ctx context.Context, user domain.NewUser) (*domain.User, error)
}

// PropertyRepository searches and creates properties.
type PropertyRepository interface {
	// GetAllProperties returns properties matching filter, cheapest first,
	// capped at limit (domain.DefaultListLimit when limit <= 0).
	GetAllProperties(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.PropertyWithRating, error)
	AddProperty(ctx context.Context, property domain.NewProperty) (*domain.Property, error)
}

// ReservationRepository lists a guest's reservations.
type ReservationRepository interface {
	// GetAllReservations returns the guest's reservations ordered by start date.
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error)
}

// ListingRepository is the composite repository the application is wired with.
type ListingRepository interface {
	Repository
	UserRepository
	PropertyRepository
	ReservationRepository
}
