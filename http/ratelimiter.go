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
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimitedPaths lists the routes that publish to the ledger or sign with node keys.
var rateLimitedPaths = map[string][]string{
	"POST": {
		"/identity/did/create",
		"/identity/vc/create",
		"/data/store",
	},
}

// tokenBucketStore uses a single token bucket for all callers of the protected paths.
type tokenBucketStore struct {
	limiter *rate.Limiter
}

// Allow checks if the amount of calls has not exceeded the limited amount. It ignores the callers' identifier.
func (s *tokenBucketStore) Allow(_ string) (bool, error) {
	return s.limiter.Allow(), nil
}

// newRateLimiter creates a rate limiter based on the echo middleware RateLimiter.
// Paths are matched against the exact router path, so paths that contain a variable can be used.
func newRateLimiter(protectedPaths map[string][]string, limit rate.Limit, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		// Returning true means skipping the middleware
		Skipper: func(c echo.Context) bool {
			for _, path := range protectedPaths[c.Request().Method] {
				if c.Path() == path {
					return false
				}
			}
			return true
		},
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return "", nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return &echo.HTTPError{
				Code:     middleware.ErrExtractorError.Code,
				Message:  middleware.ErrExtractorError.Message,
				Internal: err,
			}
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return &echo.HTTPError{
				Code:     middleware.ErrRateLimitExceeded.Code,
				Message:  middleware.ErrRateLimitExceeded.Message,
				Internal: err,
			}
		},
		Store: &tokenBucketStore{limiter: rate.NewLimiter(limit, burst)},
	})
}
