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

package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/anchor"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding"
	"go.uber.org/mock/gomock"
)

func newTestServer(instance anchor.Anchorer) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = core.CreateHTTPErrorHandler()
	(&Wrapper{Anchor: instance}).Routes(e)
	return e
}

func do(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)
	return recorder
}

func TestWrapper_StoreAndQuery(t *testing.T) {
	instance, testContext := anchor.NewTestModule(t)
	e := newTestServer(instance)
	body, _ := json.Marshal(anchor.TestTransaction())

	response := do(e, http.MethodPost, "/data/store", string(body))

	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	var stored StoreResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &stored))
	assert.NotEmpty(t, stored.AnchorRef)
	assert.NotEmpty(t, stored.CredentialJWT)
	assert.Equal(t, testContext.Issuer.DID().String(), stored.Record.IssuerDID)

	t.Run("query matches", func(t *testing.T) {
		response := do(e, http.MethodGet, "/data/query?anchorRef="+stored.AnchorRef, "")

		require.Equal(t, http.StatusOK, response.Code)
		var result QueryResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.True(t, result.Matched)
		assert.Equal(t, "BRI", result.Record.FromBank)
	})
	t.Run("tampered record doesn't match", func(t *testing.T) {
		db := testContext.Storage.GetSQLDatabase()
		require.NoError(t, db.Model(&anchor.Record{}).Where("anchor_ref = ?", stored.AnchorRef).Update("amount_paid", "1").Error)

		response := do(e, http.MethodGet, "/data/query?anchorRef="+stored.AnchorRef, "")

		require.Equal(t, http.StatusOK, response.Code)
		var result QueryResponse
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.False(t, result.Matched)
		assert.Equal(t, "1", result.Record.AmountPaid)
	})
	t.Run("list", func(t *testing.T) {
		response := do(e, http.MethodGet, "/data/records?issuer="+testContext.Issuer.DID().String(), "")

		require.Equal(t, http.StatusOK, response.Code)
		var records []anchor.Record
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, stored.AnchorRef, records[0].AnchorRef)
	})
	t.Run("list of unknown issuer", func(t *testing.T) {
		response := do(e, http.MethodGet, "/data/records?issuer=did:tdlaas:tst:0x00", "")

		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, "[]", response.Body.String())
	})
}

func TestWrapper_StoreTransaction(t *testing.T) {
	t.Run("invalid transaction", func(t *testing.T) {
		instance, _ := anchor.NewTestModule(t)

		response := do(newTestServer(instance), http.MethodPost, "/data/store", `{"fromBank":"BRI"}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "timestamp is required")
	})
	t.Run("invalid body", func(t *testing.T) {
		response := do(newTestServer(anchor.NewMockAnchorer(gomock.NewController(t))), http.MethodPost, "/data/store", `{"amountPaid":true}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
	t.Run("ledger publish failed", func(t *testing.T) {
		instance := anchor.NewMockAnchorer(gomock.NewController(t))
		instance.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).Return(nil, core.WrapError(anchor.ErrLedgerPublishFailed, errors.New("insufficient funds")))

		response := do(newTestServer(instance), http.MethodPost, "/data/store", `{}`)

		assert.Equal(t, http.StatusBadGateway, response.Code)
	})
}

func TestWrapper_QueryTransaction(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", anchor.ErrRecordNotFound, http.StatusNotFound},
		{"ledger unavailable", core.WrapError(anchor.ErrLedgerUnavailable, errors.New("connection refused")), http.StatusServiceUnavailable},
		{"other", errors.New("b00m"), http.StatusInternalServerError},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			instance := anchor.NewMockAnchorer(gomock.NewController(t))
			instance.EXPECT().Verify(gomock.Any(), "0x01").Return(nil, testCase.err)

			response := do(newTestServer(instance), http.MethodGet, "/data/query?anchorRef=0x01", "")

			assert.Equal(t, testCase.status, response.Code)
		})
	}
	t.Run("no anchor reference", func(t *testing.T) {
		response := do(newTestServer(anchor.NewMockAnchorer(gomock.NewController(t))), http.MethodGet, "/data/query", "")

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestWrapper_ListRecords(t *testing.T) {
	t.Run("invalid issuer", func(t *testing.T) {
		response := do(newTestServer(anchor.NewMockAnchorer(gomock.NewController(t))), http.MethodGet, "/data/records?issuer=bank", "")

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestWrapper_ResolveStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, (&Wrapper{}).ResolveStatusCode(funding.ErrFaucetRateLimited))
	assert.Equal(t, http.StatusServiceUnavailable, (&Wrapper{}).ResolveStatusCode(funding.ErrFundingTimeout))
}
