package log

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	out := &strings.Builder{}
	init := InitLogger{Prefix: "[gw] ", out: out}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	require.NoError(t, err)

	logger.Println("StreamServer: listening")
	assert.Contains(t, out.String(), "[gw] StreamServer: listening")
}
