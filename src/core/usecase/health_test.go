package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	healthy := NewHealthService(&fakeRepo{}, nopLogger()).Check(context.Background())
	assert.Equal(t, "ok", healthy.Status)
	assert.Equal(t, "healthy", healthy.Components["database"].Status)

	down := NewHealthService(&fakeRepo{healthErr: errors.New("dial tcp: refused")}, nopLogger()).Check(context.Background())
	assert.Equal(t, "degraded", down.Status)
	assert.Equal(t, "unhealthy", down.Components["database"].Status)
	assert.Equal(t, "dial tcp: refused", down.Components["database"].Message)
}
