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
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/tdlaas/tdlaas-node/challenge"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/vcr"
	"github.com/tdlaas/tdlaas-node/vdr"
)

const moduleName = "VCR"

var _ core.Routable = (*Wrapper)(nil)
var _ core.ErrorStatusCodeResolver = (*Wrapper)(nil)

// Wrapper exposes the challenge-response handshake, issuance and verification over HTTP.
type Wrapper struct {
	VCR vcr.VCR
	VDR vdr.VDR
}

// ChallengeResponse is returned when a challenge is issued or inspected.
type ChallengeResponse struct {
	SessionID string    `json:"sessionId"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateCredentialResponse is the response of POST /identity/vc/create.
type CreateCredentialResponse struct {
	CredentialJWT string                  `json:"credentialJwt"`
	CredentialID  string                  `json:"credentialId"`
	Credential    vc.VerifiableCredential `json:"credential"`
}

// CreatePresentationRequest is the body of POST /identity/vp/create.
type CreatePresentationRequest struct {
	SessionID string `json:"sessionId"`
	// UniqueID is accepted as alias of SessionID.
	UniqueID       string   `json:"uniqueId"`
	CredentialJWT  string   `json:"credentialJwt"`
	CredentialJWTs []string `json:"credentialJwts"`
}

// CreatePresentationResponse is the response of POST /identity/vp/create.
type CreatePresentationResponse struct {
	PresentationJWT string                    `json:"presentationJwt"`
	Nonce           string                    `json:"nonce"`
	Presentation    vc.VerifiablePresentation `json:"presentation"`
}

// VerifyPresentationRequest is the body of POST /identity/vp/verify.
type VerifyPresentationRequest struct {
	PresentationJWT string `json:"presentationJwt"`
	SessionID       string `json:"sessionId"`
}

// VerifyPresentationResponse is the response of POST /identity/vp/verify.
type VerifyPresentationResponse struct {
	IsValid      bool                       `json:"isValid"`
	Reason       string                     `json:"reason,omitempty"`
	Holder       string                     `json:"holder,omitempty"`
	Presentation *vc.VerifiablePresentation `json:"presentation,omitempty"`
	Credentials  []vc.VerifiableCredential  `json:"credentials,omitempty"`
}

// VerifyCredentialRequest is the body of POST /data/verify.
type VerifyCredentialRequest struct {
	CredentialJWT string `json:"credentialJwt"`
}

// VerifyCredentialResponse is the response of POST /data/verify.
type VerifyCredentialResponse struct {
	IsValid    bool                     `json:"isValid"`
	Reason     string                   `json:"reason,omitempty"`
	Credential *vc.VerifiableCredential `json:"credential,omitempty"`
}

func (w *Wrapper) Routes(router core.EchoRouter) {
	router.POST("/identity/init", w.InitSession, core.OperationMiddleware(moduleName, "InitSession", w))
	router.POST("/identity/init/:sessionId", w.InitSession, core.OperationMiddleware(moduleName, "InitSession", w))
	router.GET("/identity/init/:sessionId", w.GetChallenge, core.OperationMiddleware(moduleName, "GetChallenge", w))
	router.POST("/identity/vc/create", w.CreateCredential, core.OperationMiddleware(moduleName, "CreateCredential", w))
	router.POST("/identity/vp/create", w.CreatePresentation, core.OperationMiddleware(moduleName, "CreatePresentation", w))
	router.POST("/identity/vp/verify", w.VerifyPresentation, core.OperationMiddleware(moduleName, "VerifyPresentation", w))
	router.POST("/data/verify", w.VerifyCredential, core.OperationMiddleware(moduleName, "VerifyCredential", w))
}

// ResolveStatusCode maps errors returned by this API to specific HTTP status codes.
func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		challenge.ErrNotFound:        http.StatusNotFound,
		vcr.ErrInvalidOrExpiredNonce: http.StatusBadRequest,
		vcr.ErrSigningFailed:         http.StatusInternalServerError,
		funding.ErrFaucetRateLimited: http.StatusTooManyRequests,
		funding.ErrFaucetUnavailable: http.StatusBadGateway,
		funding.ErrFundingTimeout:    http.StatusServiceUnavailable,
		vdr.ErrDIDPublishFailed:      http.StatusBadGateway,
		vdr.ErrKeyGenFailed:          http.StatusInternalServerError,
	})
}

// InitSession issues a challenge. Without session ID in the path, a new session ID is generated.
func (w *Wrapper) InitSession(ctx echo.Context) error {
	sessionID := ctx.Param("sessionId")
	if len(sessionID) == 0 {
		sessionID = uuid.NewString()
	}
	issued, err := w.VCR.Challenges().Issue(sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ChallengeResponse(*issued))
}

// GetChallenge returns the live challenge of a session.
func (w *Wrapper) GetChallenge(ctx echo.Context) error {
	current, err := w.VCR.Challenges().Get(ctx.Param("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ChallengeResponse(*current))
}

// CreateCredential issues a credential from the issuer identity. All fields of the body are claims about the subject.
// The subject is identified by holderDid, or the holder identity if absent.
func (w *Wrapper) CreateCredential(ctx echo.Context) error {
	var claims map[string]interface{}
	if err := ctx.Bind(&claims); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	subject := make(map[string]interface{}, len(claims))
	for name, value := range claims {
		if name != "holderDid" {
			subject[name] = value
		}
	}
	if holderDID, ok := claims["holderDid"].(string); ok && len(holderDID) > 0 {
		subject["id"] = holderDID
	} else {
		holder, err := w.VDR.Identities().Get(ctx.Request().Context(), vdr.HolderActor)
		if err != nil {
			return err
		}
		subject["id"] = holder.DID().String()
	}
	issuer, err := w.VDR.Identities().Get(ctx.Request().Context(), vdr.IssuerActor)
	if err != nil {
		return err
	}
	issued, err := w.VCR.Issue(ctx.Request().Context(), *issuer, vcr.CredentialTemplate{Subject: subject})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CreateCredentialResponse{
		CredentialJWT: issued.JWT,
		CredentialID:  issued.UniqueID,
		Credential:    issued.Credential,
	})
}

// CreatePresentation presents credentials from the holder identity, bound to the challenge of the session.
func (w *Wrapper) CreatePresentation(ctx echo.Context) error {
	var request CreatePresentationRequest
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	sessionID := request.SessionID
	if len(sessionID) == 0 {
		sessionID = request.UniqueID
	}
	if len(sessionID) == 0 {
		return core.InvalidInputError("sessionId is required")
	}
	credentials := request.CredentialJWTs
	if len(request.CredentialJWT) > 0 {
		credentials = append([]string{request.CredentialJWT}, credentials...)
	}
	current, err := w.VCR.Challenges().Get(sessionID)
	if errors.Is(err, challenge.ErrNotFound) {
		return vcr.ErrInvalidOrExpiredNonce
	} else if err != nil {
		return err
	}
	holder, err := w.VDR.Identities().Get(ctx.Request().Context(), vdr.HolderActor)
	if err != nil {
		return err
	}
	presentation, err := w.VCR.CreatePresentation(ctx.Request().Context(), *holder, credentials, vcr.PresentationOptions{Nonce: current.Nonce})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CreatePresentationResponse{
		PresentationJWT: presentation.Raw(),
		Nonce:           current.Nonce,
		Presentation:    vcr.DecodedPresentation(*presentation),
	})
}

// VerifyPresentation verifies a presentation against the challenge of the session.
// Verification failures are reported as isValid=false with the name of the failed check.
func (w *Wrapper) VerifyPresentation(ctx echo.Context) error {
	var request VerifyPresentationRequest
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if len(request.PresentationJWT) == 0 || len(request.SessionID) == 0 {
		return core.InvalidInputError("presentationJwt and sessionId are required")
	}
	result, err := w.VCR.VerifyPresentation(ctx.Request().Context(), request.SessionID, request.PresentationJWT)
	if err != nil {
		if reason := vcr.Reason(err); len(reason) > 0 {
			return ctx.JSON(http.StatusBadRequest, VerifyPresentationResponse{Reason: reason})
		}
		return err
	}
	presentation := vcr.DecodedPresentation(result.Presentation)
	credentials := make([]vc.VerifiableCredential, 0, len(result.Credentials))
	for _, credential := range result.Credentials {
		credentials = append(credentials, vcr.DecodedCredential(credential))
	}
	return ctx.JSON(http.StatusOK, VerifyPresentationResponse{
		IsValid:      true,
		Holder:       result.Holder.String(),
		Presentation: &presentation,
		Credentials:  credentials,
	})
}

// VerifyCredential verifies a single JWT credential against the DID document of its issuer.
func (w *Wrapper) VerifyCredential(ctx echo.Context) error {
	var request VerifyCredentialRequest
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid request body: %w", err)
	}
	if len(request.CredentialJWT) == 0 {
		return core.InvalidInputError("credentialJwt is required")
	}
	credential, err := w.VCR.VerifyCredential(ctx.Request().Context(), request.CredentialJWT)
	if err != nil {
		if reason := vcr.Reason(err); len(reason) > 0 {
			return ctx.JSON(http.StatusBadRequest, VerifyCredentialResponse{Reason: reason})
		}
		return err
	}
	decoded := vcr.DecodedCredential(*credential)
	return ctx.JSON(http.StatusOK, VerifyCredentialResponse{IsValid: true, Credential: &decoded})
}
