package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	routeEmbeddingFields = []string{
		"destination",
		"text",
		"embedding",
		"auxiliary_data",
	}
)

// RouteRepository implements the domain.RouteRepository interface using PostgreSQL with pgvector.
type RouteRepository struct {
	sb squirrel.StatementBuilderType
}

// NewRouteRepository creates a new instance of RouteRepository.
func NewRouteRepository(br squirrel.BaseRunner) RouteRepository {
	return RouteRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SaveRoute appends the embeddings of a route in a single statement.
func (rr RouteRepository) SaveRoute(ctx context.Context, destination string, embeddings []domain.Embedding) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("destination", destination),
		attribute.Int("embeddings", len(embeddings)),
	))
	defer span.End()

	if len(embeddings) == 0 {
		return nil
	}

	qry := rr.sb.
		Insert("route_embeddings").
		Columns(routeEmbeddingFields...)

	for _, e := range embeddings {
		qry = qry.Values(
			destination,
			e.Text,
			pgvector.NewVector(toFloat32(e.Vector)),
			e.AuxiliaryData,
		)
	}

	_, err := qry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListRoutes returns the stored routes grouped by destination, in first insertion order.
func (rr RouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := rr.sb.
		Select(routeEmbeddingFields...).
		From("route_embeddings").
		OrderBy("id ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var (
		routes []domain.Route
		index  = map[string]int{}
	)
	for rows.Next() {
		var (
			destination string
			e           domain.Embedding
			vector      pgvector.Vector
			aux         sql.NullString
		)
		err := rows.Scan(
			&destination,
			&e.Text,
			&vector,
			&aux,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		e.Vector = toFloat64(vector.Slice())
		if aux.Valid {
			e.AuxiliaryData = &aux.String
		}

		i, ok := index[destination]
		if !ok {
			i = len(routes)
			index[destination] = i
			routes = append(routes, domain.NewPrecomputedRoute(destination))
		}
		routes[i].Embeddings = append(routes[i].Embeddings, e)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("routes", len(routes)))
	return routes, nil
}

// InitRouteRepository is a Symbiont initializer for RouteRepository.
type InitRouteRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the RouteRepository in the dependency container.
func (ir InitRouteRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RouteRepository](NewRouteRepository(ir.DB))
	return ctx, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

func toFloat64(input []float32) []float64 {
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}
