package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"lightbnb/src/core/domain"
	"lightbnb/src/core/ports"
)

// PropertyService handles property search and creation.
type PropertyService struct {
	repo ports.PropertyRepository
	log  *zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, log *zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, log: log}
}

// Search lists properties matching filter, cheapest first.
func (s *PropertyService) Search(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.PropertyWithRating, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	loggerFor(ctx, s.log).Debug().Bool("filtered", !filter.Empty()).Int("limit", limit).Msg("property search")

	properties, err := s.repo.GetAllProperties(ctx, filter, domain.NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []domain.PropertyWithRating{}
	}
	return properties, nil
}

// Create inserts a property and returns it with its generated id.
func (s *PropertyService) Create(ctx context.Context, property domain.NewProperty) (*domain.Property, error) {
	if property.CostPerNight < 0 || property.CostPerNight > domain.MaxCostPerNight {
		return nil, domain.NewValidationError("cost_per_night", "out of range")
	}
	created, err := s.repo.AddProperty(ctx, property)
	if err != nil {
		return nil, err
	}
	loggerFor(ctx, s.log).Info().
		Int64("property_id", created.ID).
		Int64("owner_id", created.OwnerID).
		Msg("property created")
	return created, nil
}
