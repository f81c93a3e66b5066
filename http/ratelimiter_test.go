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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func Test_newRateLimiter(t *testing.T) {
	e := echo.New()
	rlMiddleware := newRateLimiter(map[string][]string{
		http.MethodPost: {"/identity/did/create"},
	}, rate.Every(time.Hour), 2)
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	}

	testcases := []struct {
		method         string
		expectedStatus int
		path           string
	}{
		{http.MethodPost, http.StatusOK, "/identity/did/create"},              // first request in burst
		{http.MethodPost, http.StatusOK, "/identity/did/create"},              // second request in burst
		{http.MethodPost, http.StatusTooManyRequests, "/identity/did/create"}, // bucket empty
		{http.MethodPost, http.StatusOK, "/identity/vp/verify"},               // unprotected path should still work
		{http.MethodGet, http.StatusOK, "/identity/did/create"},               // other method same path should still work
	}

	for _, testcase := range testcases {
		req := httptest.NewRequest(testcase.method, testcase.path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath(testcase.path)
		err := rlMiddleware(handler)(c)
		if err != nil {
			e.HTTPErrorHandler(err, c)
		}
		assert.Equalf(t, testcase.expectedStatus, rec.Code, "unexpected HTTP response for %s on %s", testcase.method, testcase.path)
	}
}
