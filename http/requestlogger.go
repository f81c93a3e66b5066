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
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tdlaas/tdlaas-node/core"
)

// requestLoggerMiddleware logs one line per request: remote IP, method, URI, status and latency.
// It must be the outermost middleware, so the status written by the error handler is what's logged.
func requestLoggerMiddleware(skipper middleware.Skipper, logger *logrus.Entry) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:     skipper,
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip": values.RemoteIP,
				"method":    values.Method,
				"uri":       values.URI,
				"status":    responseStatus(c, values),
				"latency":   values.Latency.String(),
			}
			if operationID, ok := c.Get(core.OperationIDContextKey).(string); ok {
				fields["operation"] = operationID
			}
			logger.WithFields(fields).Info("HTTP request")
			return nil
		},
	})
}

// responseStatus returns the status the error handler derives for a failed request.
// The logger runs before the error handler, so values.Status still holds 200 in that case.
func responseStatus(c echo.Context, values middleware.RequestLoggerValues) int {
	if values.Error == nil {
		return values.Status
	}
	var httpError *echo.HTTPError
	if errors.As(values.Error, &httpError) {
		return httpError.Code
	}
	return core.GetHTTPStatusCode(values.Error, c)
}

func skipMonitoringPaths(c echo.Context) bool {
	switch c.Request().URL.Path {
	case "/status", "/metrics":
		return true
	}
	return false
}
