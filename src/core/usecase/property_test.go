package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbnb/src/core/domain"
)

func TestPropertyService_Search(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{properties: []domain.PropertyWithRating{
		{Property: domain.Property{ID: 1, CostPerNight: 30000}},
		{Property: domain.Property{ID: 2, CostPerNight: 10000}},
		{Property: domain.Property{ID: 3, CostPerNight: 20000}},
	}}
	svc := NewPropertyService(repo, nopLogger())

	t.Run("default limit", func(t *testing.T) {
		_, err := svc.Search(ctx, domain.PropertyFilter{}, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultListLimit, repo.lastLimit)
	})

	t.Run("filter and limit are passed through", func(t *testing.T) {
		city := "Van"
		got, err := svc.Search(ctx, domain.PropertyFilter{City: &city}, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.lastLimit)
		assert.Equal(t, &city, repo.lastFilter.City)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("out of range price is rejected before the query", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewPropertyService(repo, nopLogger())
		huge := int64(92233720368547759)
		_, err := svc.Search(ctx, domain.PropertyFilter{MinimumPricePerNight: &huge}, 5)
		assert.True(t, domain.IsValidationError(err))
		assert.Zero(t, repo.lastLimit)
	})

	t.Run("no rows is an empty list", func(t *testing.T) {
		svc := NewPropertyService(&fakeRepo{}, nopLogger())
		got, err := svc.Search(ctx, domain.PropertyFilter{}, 5)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewPropertyService(&fakeRepo{}, nopLogger())

	created, err := svc.Create(ctx, domain.NewProperty{OwnerID: 4, Title: "Loft", CostPerNight: 12500, City: "Vancouver"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(12500), created.CostPerNight)

	_, err = svc.Create(ctx, domain.NewProperty{OwnerID: 4, CostPerNight: -1})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Create(ctx, domain.NewProperty{OwnerID: 4, CostPerNight: domain.MaxCostPerNight + 1})
	assert.True(t, domain.IsValidationError(err))
}
