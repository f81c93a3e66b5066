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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	t.Run("strict mode refuses plain HTTP", func(t *testing.T) {
		client := NewStrictHTTPClient(true, time.Second, nil)
		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

		_, err := client.Do(req)

		assert.EqualError(t, err, "strictmode is enabled, but request is not over HTTPS")
	})
	t.Run("non-strict mode allows plain HTTP", func(t *testing.T) {
		client := NewStrictHTTPClient(false, time.Second, nil)
		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

		resp, err := client.Do(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})
	t.Run("tracing transport is applied", func(t *testing.T) {
		var called bool
		TracingHTTPTransport = func(transport http.RoundTripper) http.RoundTripper {
			called = true
			return transport
		}
		t.Cleanup(func() { TracingHTTPTransport = nil })

		_ = NewStrictHTTPClient(false, time.Second, nil)

		assert.True(t, called)
	})
}

func TestTestResponseCode(t *testing.T) {
	newResponse := func(status int) *http.Response {
		req, _ := http.NewRequest(http.MethodPost, "http://localhost/faucet", nil)
		return &http.Response{StatusCode: status, Body: http.NoBody, Request: req}
	}
	t.Run("match", func(t *testing.T) {
		assert.NoError(t, TestResponseCode(http.StatusOK, newResponse(http.StatusOK), nil))
	})
	t.Run("mismatch", func(t *testing.T) {
		err := TestResponseCode(http.StatusAccepted, newResponse(http.StatusTooManyRequests), logrus.NewEntry(logrus.StandardLogger()))

		var httpErr HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
		assert.True(t, strings.HasPrefix(err.Error(), "server returned HTTP 429"))
	})
}
