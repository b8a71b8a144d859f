package dto

import (
	"strings"

	"lightbnb/src/core/domain"
)

// DateLayout is the wire format of reservation dates.
const DateLayout = "2006-01-02"

// CreateUserRequest is the payload for POST /v1/users.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *CreateUserRequest) ToDomain() domain.NewUser {
	return domain.NewUser{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// CreatePropertyRequest is the payload for POST /v1/properties.
// CostPerNight is in whole currency units, capped at domain.MaxPricePerNight.
type CreatePropertyRequest struct {
	OwnerID           int64  `json:"owner_id" binding:"required,min=1"`
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" binding:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" binding:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" binding:"min=0,max=21474836"`
	ParkingSpaces     int    `json:"parking_spaces" binding:"min=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" binding:"min=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" binding:"min=0"`
	Country           string `json:"country" binding:"required"`
	Street            string `json:"street" binding:"required"`
	City              string `json:"city" binding:"required"`
	Province          string `json:"province" binding:"required"`
	PostCode          string `json:"post_code" binding:"required"`
}

// ToDomain converts the request, storing the nightly cost in cents.
func (r *CreatePropertyRequest) ToDomain() domain.NewProperty {
	return domain.NewProperty{
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      domain.ToMinorUnits(r.CostPerNight),
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
	}
}

// PropertySearchQuery is bound from the GET /v1/properties query string.
// Prices are whole currency units capped at domain.MaxPricePerNight so their
// cents fit the cost_per_night column. Empty and zero values mean "no filter".
type PropertySearchQuery struct {
	City                 string  `form:"city"`
	OwnerID              int64   `form:"owner_id" binding:"min=0"`
	MinimumPricePerNight int64   `form:"minimum_price_per_night" binding:"min=0,max=21474836"`
	MaximumPricePerNight int64   `form:"maximum_price_per_night" binding:"min=0,max=21474836"`
	MinimumRating        float64 `form:"minimum_rating" binding:"min=0,max=5"`
	Limit                int     `form:"limit" binding:"min=0"`
}

func (q *PropertySearchQuery) ToFilter() domain.PropertyFilter {
	var f domain.PropertyFilter
	if city := strings.TrimSpace(q.City); city != "" {
		f.City = &city
	}
	if q.OwnerID != 0 {
		f.OwnerID = &q.OwnerID
	}
	if q.MinimumPricePerNight != 0 {
		f.MinimumPricePerNight = &q.MinimumPricePerNight
	}
	if q.MaximumPricePerNight != 0 {
		f.MaximumPricePerNight = &q.MaximumPricePerNight
	}
	if q.MinimumRating != 0 {
		f.MinimumRating = &q.MinimumRating
	}
	return f
}

// UserLookupQuery is bound from GET /v1/users?email=.
type UserLookupQuery struct {
	Email string `form:"email" binding:"required"`
}

// ReservationListQuery is bound from GET /v1/users/:user_id/reservations.
type ReservationListQuery struct {
	Limit int `form:"limit" binding:"min=0"`
}

// UserResponse is a user without its password.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// PropertyResponse is a property as stored; cost_per_night is in cents.
type PropertyResponse struct {
	ID                int64  `json:"id"`
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

func NewPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:                p.ID,
		OwnerID:           p.OwnerID,
		Title:             p.Title,
		Description:       p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL,
		CoverPhotoURL:     p.CoverPhotoURL,
		CostPerNight:      p.CostPerNight,
		ParkingSpaces:     p.ParkingSpaces,
		NumberOfBathrooms: p.NumberOfBathrooms,
		NumberOfBedrooms:  p.NumberOfBedrooms,
		Country:           p.Country,
		Street:            p.Street,
		City:              p.City,
		Province:          p.Province,
		PostCode:          p.PostCode,
		Active:            p.Active,
	}
}

// PropertyListingResponse is a search result row.
type PropertyListingResponse struct {
	PropertyResponse
	AverageRating float64 `json:"average_rating"`
}

func NewPropertyListing(properties []domain.PropertyWithRating) []PropertyListingResponse {
	out := make([]PropertyListingResponse, 0, len(properties))
	for i := range properties {
		out = append(out, PropertyListingResponse{
			PropertyResponse: NewPropertyResponse(&properties[i].Property),
			AverageRating:    properties[i].AverageRating,
		})
	}
	return out
}

// ReservationResponse is a reservation with the reserved property nested.
type ReservationResponse struct {
	ID         int64            `json:"id"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	PropertyID int64            `json:"property_id"`
	GuestID    int64            `json:"guest_id"`
	Property   PropertyResponse `json:"property"`
}

func NewReservationList(reservations []domain.ReservationWithProperty) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		r := reservations[i].Reservation
		out = append(out, ReservationResponse{
			ID:         r.ID,
			StartDate:  r.StartDate.Format(DateLayout),
			EndDate:    r.EndDate.Format(DateLayout),
			PropertyID: r.PropertyID,
			GuestID:    r.GuestID,
			Property:   NewPropertyResponse(&reservations[i].Property),
		})
	}
	return out
}
