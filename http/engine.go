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

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/http/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const moduleName = "HTTP"

const rateLimitBurst = 10

const shutdownTimeout = 10 * time.Second

// New returns a new HTTP engine. The callback is called when the HTTP server shuts down unexpectedly.
func New(serverShutdownCb func()) *Engine {
	return &Engine{
		serverShutdownCb: serverShutdownCb,
	}
}

// Engine is the HTTP engine.
type Engine struct {
	server           *echo.Echo
	address          string
	serverShutdownCb func()
}

// Name returns the name of the engine.
func (h *Engine) Name() string {
	return moduleName
}

// Router returns the router of the HTTP engine, which can be used by other engines to register HTTP handlers.
func (h *Engine) Router() core.EchoRouter {
	return h.server
}

// Configure creates the echo server and applies middleware according to the server configuration.
func (h *Engine) Configure(serverConfig core.ServerConfig) error {
	cfg := serverConfig.HTTP
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	// Reverse proxies must set the X-Forwarded-For header to the original client IP.
	echoServer.IPExtractor = echo.ExtractIPFromXFFHeader()

	if cfg.CORS.Enabled() {
		if serverConfig.Strictmode {
			for _, origin := range cfg.CORS.Origin {
				if strings.TrimSpace(origin) == "*" {
					return errors.New("wildcard CORS origin is not allowed in strict mode")
				}
			}
		}
		echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORS.Origin}))
	}
	echoServer.Use(requestLoggerMiddleware(skipMonitoringPaths, log.Logger()))
	if core.TracingHTTPTransport != nil {
		echoServer.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("tdlaas-node")))
	}
	echoServer.Use(core.DecodeURIPath)
	if cfg.RateLimit > 0 {
		echoServer.Use(newRateLimiter(rateLimitedPaths, rate.Limit(cfg.RateLimit), rateLimitBurst))
	} else if serverConfig.Strictmode {
		log.Logger().Warn("Rate limiting is disabled in strict mode")
	}

	h.server = echoServer
	h.address = cfg.Address
	return nil
}

// Start starts the HTTP server in the background.
func (h *Engine) Start() error {
	log.Logger().Infof("Starting HTTP server on %s", h.address)
	go func() {
		if err := h.server.Start(h.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger().
				WithError(err).
				Error("HTTP server stopped due to error")
		}
		if h.serverShutdownCb != nil {
			h.serverShutdownCb()
		}
	}()
	return nil
}

// Shutdown shuts down the HTTP server.
func (h *Engine) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.server.Shutdown(ctx)
}
