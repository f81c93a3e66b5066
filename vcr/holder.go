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

package vcr

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	ssi "github.com/nuts-foundation/go-did"
	"github.com/nuts-foundation/go-did/did"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/vdr"
)

var _ Holder = (*holder)(nil)

type holder struct {
	signer   crypto.JWTSigner
	validity time.Duration
	clock    func() time.Time
}

// NewHolder creates a Holder. Presentations without explicit expiration expire after validity.
func NewHolder(signer crypto.JWTSigner, validity time.Duration) Holder {
	return &holder{
		signer:   signer,
		validity: validity,
		clock:    time.Now,
	}
}

// CreatePresentation builds a JWT presentation according to https://www.w3.org/TR/vc-data-model/#json-web-token
func (h holder) CreatePresentation(ctx context.Context, identity vdr.Identity, credentials []string, options PresentationOptions) (*vc.VerifiablePresentation, error) {
	if len(credentials) == 0 {
		return nil, core.InvalidInputError("at least one credential is required")
	}
	if len(options.Nonce) == 0 {
		return nil, core.InvalidInputError("nonce is required")
	}
	parsed := make([]vc.VerifiableCredential, 0, len(credentials))
	for _, raw := range credentials {
		credential, err := vc.ParseVerifiableCredential(raw)
		if err != nil {
			return nil, core.InvalidInputError("invalid credential: %w", err)
		}
		parsed = append(parsed, *credential)
	}
	now := h.clock()
	expires := options.Expires
	if expires.IsZero() {
		expires = now.Add(h.validity)
	}

	holderURI := identity.DID().URI()
	id := did.DIDURL{DID: identity.DID(), Fragment: strings.ToLower(uuid.NewString())}
	claims := map[string]interface{}{
		jwt.IssuerKey:     identity.DID().String(),
		jwt.SubjectKey:    identity.DID().String(),
		jwt.JwtIDKey:      id.String(),
		jwt.NotBeforeKey:  now.Unix(),
		jwt.ExpirationKey: expires.Unix(),
		"nonce":           options.Nonce,
		"vp": vc.VerifiablePresentation{
			Context:              []ssi.URI{vc.VCContextV1URI()},
			Type:                 []ssi.URI{VerifiablePresentationType},
			Holder:               &holderURI,
			VerifiableCredential: parsed,
		},
	}
	headers := map[string]interface{}{
		jws.TypeKey:  "JWT",
		jws.KeyIDKey: identity.KeyID().String(),
	}
	token, err := h.signer.SignJWT(ctx, claims, headers, identity.KeyReference)
	if err != nil {
		return nil, core.WrapError(ErrSigningFailed, err)
	}
	return vc.ParseVerifiablePresentation(token)
}
