package usecase

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFor returns the request logger stored on ctx by the HTTP layer, so
// service events carry the request id. Outside a request it returns fallback.
func loggerFor(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
