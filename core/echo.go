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

package core

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/tdlaas/tdlaas-node/audit"
)

// OperationMiddleware returns middleware that registers the module, operation and status code resolver on the echo context,
// so errors returned by the handler are logged and mapped to the right HTTP status code.
// It also adds audit information to the request context.
func OperationMiddleware(moduleName string, operationID string, resolver ErrorStatusCodeResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(ModuleNameContextKey, moduleName)
			ctx.Set(OperationIDContextKey, operationID)
			audit.Middleware(ctx, moduleName, operationID)
			if resolver != nil {
				ctx.Set(StatusCodeResolverContextKey, resolver)
			}
			return next(ctx)
		}
	}
}

// DecodeURIPath is echo middleware that decodes path parameters, e.g. did%3Aexample%3A123 -> did:example:123
func DecodeURIPath(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// FIXME: This is a hack because of https://github.com/labstack/echo/issues/1258
		newValues := make([]string, len(c.ParamValues()))
		for i, value := range c.ParamValues() {
			path, err := url.PathUnescape(value)
			if err != nil {
				path = value
			}
			newValues[i] = path
		}
		c.SetParamNames(c.ParamNames()...)
		c.SetParamValues(newValues...)
		return next(c)
	}
}
