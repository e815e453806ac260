// Package telemetry exports tuskwalk's generation and session traces over OTLP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "tuskwalk"
	serviceVersion = "0.2.0"

	defaultDataset = "tuskwalk"
	honeycombURL   = "https://api.honeycomb.io"
)

// Environment variables read by HoneycombFromEnv.
const (
	EnvHoneycombKey     = "HONEYCOMB_TUSKWALK_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_TUSKWALK_DATASET"
)

// Options tunes trace export for one run.
type Options struct {
	// SampleRatio is the fraction of root spans kept. Values outside (0, 1) keep every span.
	SampleRatio float64

	// Attributes describe the run, e.g. the island seed and grid size.
	Attributes []attribute.KeyValue
}

// HoneycombFromEnv points the OTLP exporter at Honeycomb when an API key is set,
// filling OTEL_EXPORTER_OTLP_ENDPOINT and OTEL_EXPORTER_OTLP_HEADERS.
// It reports whether a key was found.
func HoneycombFromEnv() bool {
	apiKey := os.Getenv(EnvHoneycombKey)
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv(EnvHoneycombDataset)
	if dataset == "" {
		dataset = defaultDataset
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombURL)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// Setup installs a global tracer provider that batches spans to the OTLP HTTP
// endpoint named by the OTEL_* environment. The returned function flushes and
// stops the exporter.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, opts.Attributes)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(opts.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. resource.Default() is not merged in
// because its schema URL can conflict with ours.
func newResource(ctx context.Context, extra []attribute.KeyValue) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", getHostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	attrs = append(attrs, extra...)
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Tracer returns a tracer named after the component, e.g. "world" or "game".
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Disable installs a no-op tracer provider, used when no exporter is configured.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
