package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCClock_Now(t *testing.T) {
	before := time.Now()
	now := UTCClock{}.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.WithinDuration(t, before, now, time.Second)
}

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	_, err := InitCurrentTimeProvider{}.Initialize(context.Background())
	require.NoError(t, err)

	provider, err := depend.Resolve[domain.CurrentTimeProvider]()
	require.NoError(t, err)
	assert.IsType(t, UTCClock{}, provider)
}
