package workers

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
)

// RouterWarmer is a runnable that loads the configured and stored routes into the
// semantic router when the application starts.
type RouterWarmer struct {
	Router              usecases.SemanticRouter `resolve:""`
	Catalog             domain.RouteCatalog     `resolve:""`
	Repository          domain.RouteRepository  `resolve:""`
	Logger              *log.Logger             `resolve:""`
	workerExecutionChan chan error
}

// Run starts the warm-up and keeps running until ctx is done. A warm-up still in
// progress at shutdown is cancelled.
func (rw RouterWarmer) Run(ctx context.Context) error {
	rw.Logger.Println("RouterWarmer: running...")

	routes := rw.Catalog.Routes()
	stored, err := rw.Repository.ListRoutes(ctx)
	if err != nil {
		rw.Logger.Printf("RouterWarmer: starting without stored routes: %v", err)
	}
	routes = append(routes, stored...)

	warmup := rw.Router.Start(ctx, routes)
	select {
	case <-warmup.Done():
		err := warmup.Wait()
		if err != nil {
			rw.Logger.Printf("RouterWarmer: warm-up failed: %v", err)
		} else {
			rw.Logger.Printf("RouterWarmer: warm-up finished with %d routes", len(routes))
		}
		if rw.workerExecutionChan != nil {
			rw.workerExecutionChan <- err
		}
	case <-ctx.Done():
		warmup.Cancel()
		_ = warmup.Wait()
		rw.Logger.Println("RouterWarmer: warm-up cancelled")
		return nil
	}

	<-ctx.Done()
	rw.Logger.Println("RouterWarmer: stopping...")
	return nil
}
