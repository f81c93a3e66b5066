/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package tracing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tdlaas/tdlaas-node/core"
	"go.opentelemetry.io/contrib/bridges/otellogrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const (
	moduleName         = "Tracing"
	defaultServiceName = "tdlaas-node"
)

var enabled atomic.Bool

var _ core.Injectable = (*Engine)(nil)
var _ core.Runnable = (*Engine)(nil)

// New creates a new tracing engine.
func New() *Engine {
	return &Engine{config: DefaultConfig()}
}

// Engine exports spans and logs to an OTLP collector.
// It must be the first registered engine, so outbound HTTP clients created by other engines are instrumented.
type Engine struct {
	config   Config
	shutdown func(context.Context) error
}

func (e *Engine) Name() string {
	return moduleName
}

func (e *Engine) Config() interface{} {
	return &e.config
}

func (e *Engine) Configure(_ core.ServerConfig) error {
	shutdown, err := setup(e.config)
	if err != nil {
		return fmt.Errorf("failed to setup tracing: %w", err)
	}
	e.shutdown = shutdown
	return nil
}

func (e *Engine) Start() error {
	return nil
}

// Shutdown flushes pending spans and logs. Outbound transports are no longer instrumented afterwards.
func (e *Engine) Shutdown() error {
	enabled.Store(false)
	core.TracingHTTPTransport = nil
	if e.shutdown != nil {
		return e.shutdown(context.Background())
	}
	return nil
}

// Enabled returns true if spans are exported.
func Enabled() bool {
	return enabled.Load()
}

// setup installs the OTLP exporters for spans and logs. Without endpoint, it installs nothing.
func setup(cfg Config) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		logrus.Info("Tracing disabled (no endpoint configured)")
		return func(context.Context) error { return nil }, nil
	}
	ctx := context.Background()
	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var result error
		for _, fn := range shutdownFuncs {
			result = errors.Join(result, fn(ctx))
		}
		return result
	}
	fail := func(err error) (func(context.Context) error, error) {
		_ = shutdown(ctx)
		return nil, err
	}

	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logrus.WithError(err).Error("OpenTelemetry SDK error")
	}))
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(core.Version()),
	))
	if err != nil {
		return fail(err)
	}

	traceOptions := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	logOptions := []otlploghttp.Option{otlploghttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		traceOptions = append(traceOptions, otlptracehttp.WithInsecure())
		logOptions = append(logOptions, otlploghttp.WithInsecure())
	}
	traceExporter, err := otlptracehttp.New(ctx, traceOptions...)
	if err != nil {
		return fail(err)
	}
	tracerProvider := trace.NewTracerProvider(trace.WithBatcher(traceExporter), trace.WithResource(res))
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	logExporter, err := otlploghttp.New(ctx, logOptions...)
	if err != nil {
		return fail(err)
	}
	loggerProvider := log.NewLoggerProvider(log.WithProcessor(log.NewBatchProcessor(logExporter)), log.WithResource(res))
	shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
	logrus.AddHook(&traceContextHook{})
	logrus.AddHook(otellogrus.NewHook(serviceName, otellogrus.WithLoggerProvider(loggerProvider)))

	// Instruments the faucet client and ledger RPC calls.
	core.TracingHTTPTransport = func(transport http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(transport,
			otelhttp.WithTracerProvider(tracerProvider),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "outbound: " + r.Method + " " + r.URL.Host
			}))
	}
	enabled.Store(true)

	logrus.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"service":  serviceName,
	}).Info("OpenTelemetry tracing initialized")
	return shutdown, nil
}

// traceContextHook adds the trace and span ID of the entry's context to log entries.
type traceContextHook struct{}

func (h *traceContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *traceContextHook) Fire(entry *logrus.Entry) error {
	if entry.Context == nil {
		return nil
	}
	spanContext := oteltrace.SpanContextFromContext(entry.Context)
	if !spanContext.IsValid() {
		return nil
	}
	entry.Data["trace_id"] = spanContext.TraceID().String()
	entry.Data["span_id"] = spanContext.SpanID().String()
	return nil
}
