package agents

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/common"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
agents:
  - name: weather
    description: Weather questions
    model: ai/gemma3
    temperature: 0.3
    routes: [will it rain tomorrow, is it sunny]
  - name: echo
    kind: echo
    description: Echo
  - name: travel
    kind: chat
    routes: [book a flight]
`

func TestParseConfig(t *testing.T) {
	tests := map[string]struct {
		input     string
		expected  Config
		expectErr bool
	}{
		"valid": {
			input: testConfig,
			expected: Config{Agents: []AgentDefinition{
				{Name: "weather", Description: "Weather questions", Model: "ai/gemma3", Temperature: common.Ptr(0.3),
					Routes: []string{"will it rain tomorrow", "is it sunny"}},
				{Name: "echo", Kind: AgentKind_Echo, Description: "Echo"},
				{Name: "travel", Kind: AgentKind_Chat, Routes: []string{"book a flight"}},
			}},
		},
		"empty": {
			input:    "",
			expected: Config{},
		},
		"missing-name": {
			input:     "agents:\n  - description: nameless\n",
			expectErr: true,
		},
		"duplicate-name": {
			input:     "agents:\n  - name: a\n  - name: a\n",
			expectErr: true,
		},
		"unknown-field": {
			input:     "agents:\n  - name: a\n    prompt: typo\n",
			expectErr: true,
		},
		"malformed": {
			input:     "agents: [",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig(strings.NewReader(tt.input))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestNewRegistry(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(testConfig))
	require.NoError(t, err)

	registry, err := NewRegistry(cfg, domain.NewMockLLMClient(t), "ai/default")
	require.NoError(t, err)

	names := []string{}
	for _, a := range registry.ListAgents() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"weather", "echo", "travel"}, names)

	travel, ok := registry.GetAgent("travel")
	require.True(t, ok)
	assert.Equal(t, "ai/default", travel.(ChatAgent).def.Model)

	echo, ok := registry.GetAgent("echo")
	require.True(t, ok)
	assert.IsType(t, EchoAgent{}, echo)

	_, ok = registry.GetAgent("unknown")
	assert.False(t, ok)

	assert.Equal(t, []domain.Route{
		domain.NewRawRoute("weather", "will it rain tomorrow", "is it sunny"),
		domain.NewRawRoute("travel", "book a flight"),
	}, registry.Routes())
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := map[string]struct {
		cfg          Config
		llm          domain.LLMClient
		defaultModel string
	}{
		"unknown-kind": {
			cfg: Config{Agents: []AgentDefinition{{Name: "a", Kind: "script"}}},
			llm: domain.NewMockLLMClient(t),
		},
		"chat-without-model": {
			cfg: Config{Agents: []AgentDefinition{{Name: "a"}}},
			llm: domain.NewMockLLMClient(t),
		},
		"chat-without-llm": {
			cfg:          Config{Agents: []AgentDefinition{{Name: "a"}}},
			defaultModel: "ai/gemma3",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistry(tt.cfg, tt.llm, tt.defaultModel)
			assert.Error(t, err)
		})
	}
}

func TestInitAgentRegistry_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	t.Run("from-file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.yml")
		require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

		i := InitAgentRegistry{Logger: logger, LLMClient: domain.NewMockLLMClient(t), ConfigPath: path, Model: "ai/gemma3"}
		_, err := i.Initialize(context.Background())
		require.NoError(t, err)

		provider, err := depend.Resolve[domain.AgentProvider]()
		require.NoError(t, err)
		assert.Len(t, provider.ListAgents(), 3)

		catalog, err := depend.Resolve[domain.RouteCatalog]()
		require.NoError(t, err)
		assert.Len(t, catalog.Routes(), 2)
	})

	t.Run("built-in-when-missing", func(t *testing.T) {
		i := InitAgentRegistry{
			Logger:     logger,
			LLMClient:  domain.NewMockLLMClient(t),
			ConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
			Model:      "ai/gemma3",
		}
		_, err := i.Initialize(context.Background())
		require.NoError(t, err)

		provider, err := depend.Resolve[domain.AgentProvider]()
		require.NoError(t, err)
		_, ok := provider.GetAgent("weather")
		assert.True(t, ok)
	})

	t.Run("invalid-file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.yml")
		require.NoError(t, os.WriteFile(path, []byte("agents:\n  - name: a\n    kind: script\n"), 0o600))

		i := InitAgentRegistry{Logger: logger, LLMClient: domain.NewMockLLMClient(t), ConfigPath: path}
		_, err := i.Initialize(context.Background())
		assert.Error(t, err)
	})
}
