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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/atomic"
)

func resetGlobalState() {
	enabled.Store(false)
	core.TracingHTTPTransport = nil
	otel.SetTracerProvider(noop.NewTracerProvider())
}

func TestEngine_Configure(t *testing.T) {
	t.Run("disabled without endpoint", func(t *testing.T) {
		resetGlobalState()
		t.Cleanup(resetGlobalState)
		engine := New()

		require.NoError(t, engine.Configure(core.ServerConfig{}))

		assert.False(t, Enabled())
		assert.Nil(t, core.TracingHTTPTransport)
		assert.NoError(t, engine.Shutdown())
	})
	t.Run("enabled", func(t *testing.T) {
		resetGlobalState()
		t.Cleanup(resetGlobalState)
		hooks := logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		t.Cleanup(func() {
			logrus.StandardLogger().ReplaceHooks(hooks)
		})
		exports := atomic.NewInt32(0)
		collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/traces" || r.URL.Path == "/v1/logs" {
				exports.Add(1)
			}
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(collector.Close)
		engine := New()
		engine.config = Config{Endpoint: strings.TrimPrefix(collector.URL, "http://"), Insecure: true}

		require.NoError(t, engine.Configure(core.ServerConfig{}))
		_, span := otel.Tracer("test").Start(context.Background(), "operation")
		span.End()

		assert.True(t, Enabled())
		require.NotNil(t, core.TracingHTTPTransport)
		assert.NotEqual(t, http.DefaultTransport, core.TracingHTTPTransport(http.DefaultTransport))
		t.Run("shutdown resets outbound instrumentation", func(t *testing.T) {
			require.NoError(t, engine.Shutdown())

			assert.False(t, Enabled())
			assert.Nil(t, core.TracingHTTPTransport)
			assert.Positive(t, exports.Load(), "pending spans are flushed to the collector")
		})
	})
}

func TestEngine(t *testing.T) {
	engine := New()

	assert.Equal(t, "Tracing", engine.Name())
	assert.Same(t, &engine.config, engine.Config())
	assert.NoError(t, engine.Start())
}

func TestTraceContextHook_Fire(t *testing.T) {
	hook := &traceContextHook{}

	t.Run("no context", func(t *testing.T) {
		entry := &logrus.Entry{Data: logrus.Fields{}}

		require.NoError(t, hook.Fire(entry))

		assert.NotContains(t, entry.Data, "trace_id")
	})
	t.Run("no span", func(t *testing.T) {
		entry := &logrus.Entry{Context: context.Background(), Data: logrus.Fields{}}

		require.NoError(t, hook.Fire(entry))

		assert.NotContains(t, entry.Data, "trace_id")
	})
	t.Run("span", func(t *testing.T) {
		traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
		spanID, _ := trace.SpanIDFromHex("0102030405060708")
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		}))
		entry := &logrus.Entry{Context: ctx, Data: logrus.Fields{}}

		require.NoError(t, hook.Fire(entry))

		assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", entry.Data["trace_id"])
		assert.Equal(t, "0102030405060708", entry.Data["span_id"])
	})
}
