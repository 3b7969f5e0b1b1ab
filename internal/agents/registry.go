package agents

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

// AgentKind selects the implementation behind a configured agent.
type AgentKind string

const (
	AgentKind_Chat AgentKind = "chat"
	AgentKind_Echo AgentKind = "echo"
)

// AgentDefinition is one agent entry of the agents file.
type AgentDefinition struct {
	Name         string    `yaml:"name"`
	Kind         AgentKind `yaml:"kind"`
	Description  string    `yaml:"description"`
	Model        string    `yaml:"model"`
	SystemPrompt string    `yaml:"systemPrompt"`
	Temperature  *float64  `yaml:"temperature"`
	// Acknowledgement is sent to the client as an intermediate message before the model is called.
	Acknowledgement string `yaml:"acknowledgement"`
	// Routes are the phrases the semantic router uses to pick this agent.
	Routes []string `yaml:"routes"`
}

// Config is the content of the agents file.
type Config struct {
	Agents []AgentDefinition `yaml:"agents"`
}

// ParseConfig decodes an agents file and checks that agent names are present and unique.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode agents config: %w", err)
	}

	seen := map[string]struct{}{}
	for i, def := range cfg.Agents {
		if def.Name == "" {
			return Config{}, domain.NewValidationErr(fmt.Sprintf("agent #%d has no name", i+1))
		}
		if _, dup := seen[def.Name]; dup {
			return Config{}, domain.NewValidationErr(fmt.Sprintf("agent %q is defined more than once", def.Name))
		}
		seen[def.Name] = struct{}{}
	}
	return cfg, nil
}

// Registry holds the configured agents. It serves as both the agent provider and
// the catalog of routing phrases declared for those agents.
type Registry struct {
	agents []domain.Agent
	byName map[string]domain.Agent
	routes []domain.Route
}

// NewRegistry builds the agents of the configuration. Chat agents use llm and fall back
// to defaultModel when they do not declare one.
func NewRegistry(cfg Config, llm domain.LLMClient, defaultModel string) (*Registry, error) {
	r := &Registry{byName: make(map[string]domain.Agent, len(cfg.Agents))}
	for _, def := range cfg.Agents {
		agent, err := newAgent(def, llm, defaultModel)
		if err != nil {
			return nil, err
		}
		r.agents = append(r.agents, agent)
		r.byName[def.Name] = agent
		if len(def.Routes) > 0 {
			r.routes = append(r.routes, domain.NewRawRoute(def.Name, def.Routes...))
		}
	}
	return r, nil
}

func newAgent(def AgentDefinition, llm domain.LLMClient, defaultModel string) (domain.Agent, error) {
	switch def.Kind {
	case AgentKind_Chat, "":
		if llm == nil {
			return nil, fmt.Errorf("chat agent %q requires an LLM client", def.Name)
		}
		if def.Model == "" {
			def.Model = defaultModel
		}
		if def.Model == "" {
			return nil, domain.NewValidationErr(fmt.Sprintf("chat agent %q has no model", def.Name))
		}
		return NewChatAgent(def, llm), nil
	case AgentKind_Echo:
		return NewEchoAgent(def.Name, def.Description), nil
	default:
		return nil, domain.NewValidationErr(fmt.Sprintf("agent %q has unknown kind %q", def.Name, def.Kind))
	}
}

// ListAgents returns all agents in configuration order.
func (r *Registry) ListAgents() []domain.Agent {
	return append([]domain.Agent(nil), r.agents...)
}

// GetAgent returns the agent with the given name.
func (r *Registry) GetAgent(name string) (domain.Agent, bool) {
	agent, ok := r.byName[name]
	return agent, ok
}

// Routes returns one raw route per agent that declares routing phrases.
func (r *Registry) Routes() []domain.Route {
	return append([]domain.Route(nil), r.routes...)
}

//go:embed agents.yml
var defaultConfig embed.FS

// InitAgentRegistry loads the agents file and registers the registry as the
// domain.AgentProvider and domain.RouteCatalog.
type InitAgentRegistry struct {
	Logger     *log.Logger      `resolve:""`
	LLMClient  domain.LLMClient `resolve:""`
	ConfigPath string           `config:"AGENTS_CONFIG_PATH" default:"agents.yml"`
	Model      string           `config:"LLM_MODEL" default:"ai/gemma3"`
}

// Initialize reads the configured agents file, or the embedded default when the file does not exist.
func (i InitAgentRegistry) Initialize(ctx context.Context) (context.Context, error) {
	file, err := i.open()
	if err != nil {
		return ctx, err
	}
	defer file.Close() //nolint:errcheck

	cfg, err := ParseConfig(file)
	if err != nil {
		return ctx, err
	}

	registry, err := NewRegistry(cfg, i.LLMClient, i.Model)
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.AgentProvider](registry)
	depend.Register[domain.RouteCatalog](registry)
	i.Logger.Printf("InitAgentRegistry: %d agents loaded, %d with routes", len(registry.agents), len(registry.routes))
	return ctx, nil
}

func (i InitAgentRegistry) open() (fs.File, error) {
	file, err := os.Open(i.ConfigPath)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open agents config: %w", err)
	}
	i.Logger.Printf("InitAgentRegistry: %s not found, using the built-in agents", i.ConfigPath)
	return defaultConfig.Open("agents.yml")
}
