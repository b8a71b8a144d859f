package repo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lightbnb/src/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestBuildPropertySearch(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.PropertyFilter
		limit    int
		contains []string
		absent   []string
		args     []any
	}{
		{
			name:     "no filters",
			limit:    5,
			contains: []string{"GROUP BY properties.id\n", "ORDER BY properties.cost_per_night ASC\nLIMIT $1\n"},
			absent:   []string{"WHERE", "HAVING"},
			args:     []any{5},
		},
		{
			name:     "city is a substring match",
			filter:   domain.PropertyFilter{City: ptr("Van")},
			limit:    10,
			contains: []string{"WHERE properties.city LIKE $1\n", "LIMIT $2"},
			absent:   []string{"HAVING"},
			args:     []any{"%Van%", 10},
		},
		{
			name:     "owner",
			filter:   domain.PropertyFilter{OwnerID: ptr(int64(42))},
			limit:    10,
			contains: []string{"WHERE properties.owner_id = $1\n", "LIMIT $2"},
			args:     []any{int64(42), 10},
		},
		{
			name: "price range is converted to cents",
			filter: domain.PropertyFilter{
				MinimumPricePerNight: ptr(int64(50)),
				MaximumPricePerNight: ptr(int64(150)),
			},
			limit:    10,
			contains: []string{"WHERE properties.cost_per_night >= $1 AND properties.cost_per_night <= $2\n", "LIMIT $3"},
			args:     []any{int64(5000), int64(15000), 10},
		},
		{
			name:     "rating goes to HAVING",
			filter:   domain.PropertyFilter{MinimumRating: ptr(4.0)},
			limit:    10,
			contains: []string{"GROUP BY properties.id\nHAVING avg(property_reviews.rating) >= $1\n", "LIMIT $2"},
			absent:   []string{"WHERE"},
			args:     []any{4.0, 10},
		},
		{
			name: "city, minimum price and rating",
			filter: domain.PropertyFilter{
				City:                 ptr("Van"),
				MinimumPricePerNight: ptr(int64(100)),
				MinimumRating:        ptr(3.5),
			},
			limit: 20,
			contains: []string{
				"WHERE properties.city LIKE $1 AND properties.cost_per_night >= $2\n",
				"HAVING avg(property_reviews.rating) >= $3\n",
				"LIMIT $4\n",
			},
			args: []any{"%Van%", int64(10000), 3.5, 20},
		},
		{
			name:  "all filters",
			limit: 1,
			filter: domain.PropertyFilter{
				City:                 ptr("Sooke"),
				OwnerID:              ptr(int64(7)),
				MinimumPricePerNight: ptr(int64(10)),
				MaximumPricePerNight: ptr(int64(20)),
				MinimumRating:        ptr(2.0),
			},
			contains: []string{
				"WHERE properties.city LIKE $1 AND properties.owner_id = $2 AND properties.cost_per_night >= $3 AND properties.cost_per_night <= $4\n",
				"HAVING avg(property_reviews.rating) >= $5\n",
				"LIMIT $6\n",
			},
			args: []any{"%Sooke%", int64(7), int64(1000), int64(2000), 2.0, 1},
		},
		{
			name:     "zero limit falls back to the default",
			limit:    0,
			contains: []string{"LIMIT $1"},
			args:     []any{domain.DefaultListLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildPropertySearch(tt.filter, tt.limit)

			assert.True(t, strings.HasPrefix(sql, propertySearchSelect), "statement starts with the select")
			for _, s := range tt.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, sql, s)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildPropertySearchClauseOrder(t *testing.T) {
	sql, _ := buildPropertySearch(domain.PropertyFilter{City: ptr("a"), MinimumRating: ptr(1.0)}, 3)

	where := strings.Index(sql, "WHERE")
	group := strings.Index(sql, "GROUP BY")
	having := strings.Index(sql, "HAVING")
	order := strings.Index(sql, "ORDER BY")
	limit := strings.Index(sql, "LIMIT")

	assert.Less(t, where, group)
	assert.Less(t, group, having)
	assert.Less(t, having, order)
	assert.Less(t, order, limit)
}

func TestBuildPropertySearchPlaceholdersMatchArgs(t *testing.T) {
	filter := domain.PropertyFilter{
		City:                 ptr("x"),
		MaximumPricePerNight: ptr(int64(99)),
		MinimumRating:        ptr(4.5),
	}
	sql, args := buildPropertySearch(filter, 8)

	assert.Equal(t, len(args), strings.Count(sql, "$"))
	assert.NotContains(t, sql, "$?")
}
