package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbnb/src/core/domain"
)

func TestRegisterLogsWithRequestLogger(t *testing.T) {
	var reqBuf, fallbackBuf bytes.Buffer
	reqLog := zerolog.New(&reqBuf).With().Str("request_id", "req-9").Logger()
	fallback := zerolog.New(&fallbackBuf)

	svc := NewUserService(&fakeRepo{}, &fallback)

	ctx := reqLog.WithContext(context.Background())
	_, err := svc.Register(ctx, domain.NewUser{Name: "A", Email: "a@b.com"})
	require.NoError(t, err)
	assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
	assert.Empty(t, fallbackBuf.String())

	_, err = svc.Register(context.Background(), domain.NewUser{Name: "B", Email: "b@b.com"})
	require.NoError(t, err)
	assert.Contains(t, fallbackBuf.String(), "user registered")
}
