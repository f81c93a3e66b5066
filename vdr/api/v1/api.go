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
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/vdr"
)

const moduleName = "VDR"

var _ core.Routable = (*Wrapper)(nil)
var _ core.ErrorStatusCodeResolver = (*Wrapper)(nil)

// Wrapper exposes the identity operations of the VDR over HTTP.
type Wrapper struct {
	VDR vdr.VDR
}

// CreateDIDRequest is the body of POST /identity/did/create.
type CreateDIDRequest struct {
	// Actor selects the secret that pays for publication. Defaults to the issuer.
	Actor string `json:"actor,omitempty"`
}

// DIDResponse holds a DID and its document.
type DIDResponse struct {
	DID      string       `json:"did"`
	Document did.Document `json:"document"`
}

func (w *Wrapper) Routes(router core.EchoRouter) {
	router.POST("/identity/did/create", w.CreateDID, core.OperationMiddleware(moduleName, "CreateDID", w))
	router.GET("/identity/did/resolve/:did", w.ResolveDID, core.OperationMiddleware(moduleName, "ResolveDID", w))
	router.GET("/identity/did/:actor", w.GetIdentity, core.OperationMiddleware(moduleName, "GetIdentity", w))
}

// ResolveStatusCode maps errors returned by this API to specific HTTP status codes.
func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		funding.ErrFaucetRateLimited: http.StatusTooManyRequests,
		funding.ErrFaucetUnavailable: http.StatusBadGateway,
		funding.ErrFundingTimeout:    http.StatusServiceUnavailable,
		vdr.ErrDIDPublishFailed:      http.StatusBadGateway,
		vdr.ErrKeyGenFailed:          http.StatusInternalServerError,
		vdr.ErrUnknownActor:          http.StatusNotFound,
		vdr.ErrDIDResolutionFailed:   http.StatusBadRequest,
	})
}

// CreateDID publishes a new DID document paid by the given actor. Every call publishes a new DID.
func (w *Wrapper) CreateDID(ctx echo.Context) error {
	var request CreateDIDRequest
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if len(request.Actor) == 0 {
		request.Actor = vdr.IssuerActor
	}
	secret, err := w.VDR.Secret(request.Actor)
	if err != nil {
		return err
	}
	identity, err := w.VDR.Create(ctx.Request().Context(), secret)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DIDResponse{DID: identity.DID().String(), Document: identity.Document})
}

// GetIdentity returns the identity of an actor, creating it on first use.
func (w *Wrapper) GetIdentity(ctx echo.Context) error {
	identity, err := w.VDR.Identities().Get(ctx.Request().Context(), ctx.Param("actor"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DIDResponse{DID: identity.DID().String(), Document: identity.Document})
}

// ResolveDID returns the DID document of a DID from the ledger.
func (w *Wrapper) ResolveDID(ctx echo.Context) error {
	id, err := did.ParseDID(ctx.Param("did"))
	if err != nil {
		return core.InvalidInputError("invalid DID: %w", err)
	}
	document, err := w.VDR.Resolve(ctx.Request().Context(), *id)
	if errors.Is(err, chain.ErrNotFound) {
		return core.NotFoundError("DID document not found: %s", id)
	}
	if errors.Is(err, chain.ErrUnavailable) {
		return core.Error(http.StatusServiceUnavailable, "ledger unavailable: %w", err)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DIDResponse{DID: document.ID.String(), Document: *document})
}
