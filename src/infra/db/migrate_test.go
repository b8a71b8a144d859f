package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"001_create_users.sql",
		"002_create_properties.sql",
		"003_create_reservations.sql",
		"004_create_property_reviews.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "---- create above / drop below ----"), name)
	}
}
