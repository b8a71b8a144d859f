package usecase

import (
	"context"
	"sort"
	"strings"

	"lightbnb/src/core/domain"
)

// fakeRepo is an in-memory ports.ListingRepository.
type fakeRepo struct {
	users        []domain.User
	properties   []domain.PropertyWithRating
	reservations []domain.ReservationWithProperty

	healthErr error
	err       error

	lastFilter domain.PropertyFilter
	lastLimit  int
}

func (f *fakeRepo) Health(ctx context.Context) error { return f.healthErr }

func (f *fakeRepo) GetUserWithEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	email = strings.ToLower(email)
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (f *fakeRepo) GetUserWithID(ctx context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (f *fakeRepo) AddUser(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, domain.NewConflictError("email already registered")
		}
	}
	u := domain.User{ID: int64(len(f.users) + 1), Name: user.Name, Email: user.Email, Password: user.Password}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeRepo) GetAllProperties(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.PropertyWithRating, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := append([]domain.PropertyWithRating(nil), f.properties...)
	sort.Slice(out, func(i, j int) bool { return out[i].CostPerNight < out[j].CostPerNight })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) AddProperty(ctx context.Context, p domain.NewProperty) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := domain.Property{
		ID:           int64(len(f.properties) + 1),
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		CostPerNight: p.CostPerNight,
		City:         p.City,
		Active:       true,
	}
	f.properties = append(f.properties, domain.PropertyWithRating{Property: created})
	return &created, nil
}

func (f *fakeRepo) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ReservationWithProperty
	for _, r := range f.reservations {
		if r.Reservation.GuestID == guestID {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
