package main

import "github.com/cleitonmarx/symbiont-agent-gateway/internal/app"

func main() {
	err := app.NewAgentGatewayApp().Run()
	if err != nil {
		panic(err)
	}
}
