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
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/anchor"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/vdr"
)

const moduleName = "Anchor"

var _ core.Routable = (*Wrapper)(nil)
var _ core.ErrorStatusCodeResolver = (*Wrapper)(nil)

// Wrapper exposes anchoring and integrity checks of transaction records over HTTP.
type Wrapper struct {
	Anchor anchor.Anchorer
}

// StoreResponse is the response of POST /data/store.
type StoreResponse struct {
	AnchorRef     string        `json:"anchorRef"`
	CredentialJWT string        `json:"credentialJwt"`
	Record        anchor.Record `json:"record"`
}

// QueryResponse is the response of GET /data/query.
type QueryResponse struct {
	Record  anchor.Record `json:"record"`
	Matched bool          `json:"matched"`
}

func (w *Wrapper) Routes(router core.EchoRouter) {
	router.POST("/data/store", w.StoreTransaction, core.OperationMiddleware(moduleName, "StoreTransaction", w))
	router.GET("/data/query", w.QueryTransaction, core.OperationMiddleware(moduleName, "QueryTransaction", w))
	router.GET("/data/records", w.ListRecords, core.OperationMiddleware(moduleName, "ListRecords", w))
}

// ResolveStatusCode maps errors returned by this API to specific HTTP status codes.
func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		anchor.ErrRecordNotFound:      http.StatusNotFound,
		anchor.ErrLedgerUnavailable:   http.StatusServiceUnavailable,
		anchor.ErrLedgerPublishFailed: http.StatusBadGateway,
		funding.ErrFaucetRateLimited:  http.StatusTooManyRequests,
		funding.ErrFaucetUnavailable:  http.StatusBadGateway,
		funding.ErrFundingTimeout:     http.StatusServiceUnavailable,
		vdr.ErrDIDPublishFailed:       http.StatusBadGateway,
		vdr.ErrKeyGenFailed:           http.StatusInternalServerError,
		vdr.ErrUnknownActor:           http.StatusInternalServerError,
	})
}

// StoreTransaction anchors a transaction record from the issuer identity.
func (w *Wrapper) StoreTransaction(ctx echo.Context) error {
	var transaction anchor.Transaction
	if err := ctx.Bind(&transaction); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	receipt, err := w.Anchor.StoreTransaction(ctx.Request().Context(), transaction)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, StoreResponse{
		AnchorRef:     receipt.Record.AnchorRef,
		CredentialJWT: receipt.CredentialJWT,
		Record:        receipt.Record,
	})
}

// QueryTransaction returns the record of an anchor reference and whether it still matches its anchor.
// A mismatch is an integrity verdict, not a failure of the request.
func (w *Wrapper) QueryTransaction(ctx echo.Context) error {
	anchorRef := ctx.QueryParam("anchorRef")
	if len(anchorRef) == 0 {
		return core.InvalidInputError("anchorRef is required")
	}
	result, err := w.Anchor.Verify(ctx.Request().Context(), anchorRef)
	if err != nil && (result == nil || !errors.Is(err, anchor.ErrDigestMismatch)) {
		return err
	}
	return ctx.JSON(http.StatusOK, QueryResponse{
		Record:  result.Record,
		Matched: result.Matched,
	})
}

// ListRecords lists the anchored records of an issuer, without checking them against their anchors.
func (w *Wrapper) ListRecords(ctx echo.Context) error {
	issuer, err := did.ParseDID(ctx.QueryParam("issuer"))
	if err != nil {
		return core.InvalidInputError("invalid issuer: %w", err)
	}
	records, err := w.Anchor.List(ctx.Request().Context(), *issuer)
	if err != nil {
		return err
	}
	if records == nil {
		records = []anchor.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}
