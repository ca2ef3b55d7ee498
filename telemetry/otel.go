package telemetry

import (
	"context"
	"net/http"

	"github.com/XSAM/otelsql"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/util/buildinfo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Init sets up the global tracer provider to export to the configured OTLP
// endpoint, the function returned flushes and shuts the exporter down
func Init(ctx context.Context, cfg config.Config, service string) (func(), error) {
	tp, err := InitTracer(ctx, cfg, service)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	closeFn := func() {
		tp.Shutdown(context.Background())
	}
	return closeFn, nil
}

func InitTracer(ctx context.Context, cfg config.Config, service string) (*trace.TracerProvider, error) {
	conf := cfg.Conf().Telemetry

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(conf.Endpoint),
		otlptracegrpc.WithHeaders(map[string]string{
			"Authorization": conf.Auth,
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.Environment())
	if err != nil {
		return nil, err
	}
	res, err = resource.Merge(res, resource.NewSchemaless(
		semconv.ServiceName("trackhaus:"+service),
		semconv.ServiceVersion(buildinfo.Version),
	))
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	return tp, nil
}

// DatabaseConnect opens a database with every query traced, it has the same
// signature as sqlx.ConnectContext
func DatabaseConnect(ctx context.Context, driverName string, dataSourceName string) (*sqlx.DB, error) {
	db, err := otelsql.Open(driverName, dataSourceName,
		otelsql.WithAttributes(semconv.DBSystemKey.String(driverName)),
		otelsql.WithSpanOptions(otelsql.SpanOptions{
			DisableErrSkip: true,
		}),
	)
	if err != nil {
		return nil, err
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return sqlx.NewDb(db, driverName), nil
}

// NewRouter returns a chi router that traces every request
func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(otelhttp.NewMiddleware("http_request", otelhttp.WithSpanNameFormatter(useMethodPath)))
	return r
}

func useMethodPath(operation string, r *http.Request) string {
	return r.Method + " " + r.URL.Path
}
