package postgres

import (
	"context"
	"database/sql/driver"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// queryAttributes labels query and exec spans with the SQL commands and tables they touch.
func queryAttributes(logger *log.Logger) func(context.Context, otelsql.Method, string, []driver.NamedValue) []attribute.KeyValue {
	return func(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		commands, tables, err := summarizeQuery(query)
		if err != nil {
			logger.Printf("InitDB: cannot summarize query: %v", err)
			return nil
		}

		var attrs []attribute.KeyValue
		if len(commands) > 0 {
			summary := strings.Join(commands, ",")
			if len(tables) > 0 {
				summary += " " + strings.Join(tables, ",")
			}
			attrs = append(attrs, semconv.DBQuerySummary(summary))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

func summarizeQuery(query string) (commands, tables []string, err error) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)
	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		return nil, nil, err
	}
	return meta.Commands, meta.Tables, nil
}
