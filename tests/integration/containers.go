package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const depsComposeFile = "../../docker-compose.deps.yml"

// dependencyWaits lists what each compose service must report before the gateway boots.
var dependencyWaits = map[string]wait.Strategy{
	// Postgres restarts once after running its init scripts.
	"postgres": wait.ForAll(
		wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		wait.ForListeningPort("5432/tcp"),
	),
	"vault":  wait.ForLog("Vault server started!"),
	"pubsub": wait.ForLog("Server started"),
}

// InitDockerCompose brings up Postgres, Vault and the Pub/Sub emulator and tears them
// down, volumes included, when the app closes.
type InitDockerCompose struct {
	stack *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	stack, err := compose.NewDockerCompose(depsComposeFile)
	if err != nil {
		return ctx, fmt.Errorf("failed to load %s: %w", depsComposeFile, err)
	}
	i.stack = stack

	for service, strategy := range dependencyWaits {
		stack.WaitForService(service, strategy)
	}
	if err := stack.Up(ctx, compose.Wait(true)); err != nil {
		return ctx, fmt.Errorf("failed to start gateway dependencies: %w", err)
	}
	return ctx, nil
}

func (i *InitDockerCompose) Close() {
	if i.stack == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := i.stack.Down(ctx, compose.RemoveOrphans(true), compose.RemoveVolumes(true)); err != nil {
		log.Printf("InitDockerCompose: failed to stop dependencies: %v", err)
	}
}
