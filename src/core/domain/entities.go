package domain

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered account. Email is unique and stored lower-cased.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
}

// NewUser is the payload for inserting a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// Normalized returns a copy of u with the email lower-cased.
func (u NewUser) Normalized() NewUser {
	u.Email = NormalizeEmail(u.Email)
	return u
}

// NormalizeEmail lower-cases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// Property is a rental listing owned by a user.
type Property struct {
	ID                int64
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	// CostPerNight is in minor units (cents).
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
	Active            bool
}

// NewProperty is the payload for inserting a property.
// CostPerNight is already in minor units.
type NewProperty struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

// PropertyWithRating is a property plus the average of its review ratings.
type PropertyWithRating struct {
	Property
	AverageRating float64
}

// Reservation links a guest to a property for a date range.
type Reservation struct {
	ID         int64
	StartDate  time.Time
	EndDate    time.Time
	PropertyID int64
	GuestID    int64
}

// ReservationWithProperty is a reservation together with the reserved property.
type ReservationWithProperty struct {
	Reservation Reservation
	Property    Property
}

// PropertyFilter holds the optional search filters for property listings.
// A nil field means the filter is absent. Prices are whole currency units.
type PropertyFilter struct {
	City                 *string
	OwnerID              *int64
	MinimumPricePerNight *int64
	MaximumPricePerNight *int64
	MinimumRating        *float64
}

// Empty reports whether no filter is present.
func (f PropertyFilter) Empty() bool {
	return f.City == nil &&
		f.OwnerID == nil &&
		f.MinimumPricePerNight == nil &&
		f.MaximumPricePerNight == nil &&
		f.MinimumRating == nil
}

// Validate rejects price filters outside [0, MaxPricePerNight], whose cents
// would not fit the cost_per_night column.
func (f PropertyFilter) Validate() error {
	if err := validatePrice("minimum_price_per_night", f.MinimumPricePerNight); err != nil {
		return err
	}
	if err := validatePrice("maximum_price_per_night", f.MaximumPricePerNight); err != nil {
		return err
	}
	if f.MinimumRating != nil && (*f.MinimumRating < 0 || *f.MinimumRating > 5) {
		return NewValidationError("minimum_rating", "must be between 0 and 5")
	}
	return nil
}

func validatePrice(field string, units *int64) error {
	if units == nil {
		return nil
	}
	if *units < 0 || *units > MaxPricePerNight {
		return NewValidationError(field, fmt.Sprintf("must be between 0 and %d", MaxPricePerNight))
	}
	return nil
}
