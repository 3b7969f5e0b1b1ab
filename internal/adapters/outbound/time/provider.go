package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCClock reads the wall clock in UTC, so event timestamps compare across instances.
// UTC drops the monotonic reading, so durations are measured with time.Since instead.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the UTCClock as the domain.CurrentTimeProvider.
type InitCurrentTimeProvider struct{}

func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCClock{})
	return ctx, nil
}
