package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/inbound/websocket"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/eventbus"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/agents"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
)

// NewAgentGatewayApp creates and returns a new instance of the agent gateway application.
func NewAgentGatewayApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitRouteRepository{},
			&time.InitCurrentTimeProvider{},
			&eventbus.InitEventBus{},
			&pubsub.InitClient{},
			&pubsub.InitEventForwarder{},
			&workers.InitEventLogger{},
			&modelrunner.InitLLMClient{},
			&modelrunner.InitTextEmbedder{},
			&agents.InitAgentRegistry{},

			&usecases.InitSemanticRouter{},
			&usecases.InitRegisterRoute{},
			&usecases.InitSemanticAgentResolver{},
			&usecases.InitCallAgent{},
			&usecases.InitStreamSession{},
		).
		Host(
			&eventbus.Dispatcher{},
			&workers.RouterWarmer{},
			&http.GatewayServer{},
			&websocket.StreamServer{},
			&mcp.RouterMCPServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
