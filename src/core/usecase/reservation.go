package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"lightbnb/src/core/domain"
	"lightbnb/src/core/ports"
)

// ReservationService lists reservations for guests.
type ReservationService struct {
	users        ports.UserRepository
	reservations ports.ReservationRepository
	log          *zerolog.Logger
}

func NewReservationService(users ports.UserRepository, reservations ports.ReservationRepository, log *zerolog.Logger) *ReservationService {
	return &ReservationService{users: users, reservations: reservations, log: log}
}

// ListForGuest returns the guest's reservations ordered by start date.
// An unknown guest is reported as not found rather than as an empty list.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]domain.ReservationWithProperty, error) {
	if _, err := s.users.GetUserWithID(ctx, guestID); err != nil {
		return nil, err
	}
	reservations, err := s.reservations.GetAllReservations(ctx, guestID, domain.NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []domain.ReservationWithProperty{}
	}
	loggerFor(ctx, s.log).Debug().Int64("guest_id", guestID).Int("count", len(reservations)).Msg("reservations listed")
	return reservations, nil
}
