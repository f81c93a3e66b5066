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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	ssi "github.com/nuts-foundation/go-did"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/vcr/log"
	"github.com/tdlaas/tdlaas-node/vdr"
)

var _ Issuer = (*issuer)(nil)

type issuer struct {
	signer      crypto.JWTSigner
	baseURL     string
	defaultType string
	validity    time.Duration
	clock       func() time.Time
}

// NewIssuer creates an Issuer. Generated credential IDs are of the form <baseURL>/vc/<uuid>.
// Credentials expire after validity, or never if it is zero.
func NewIssuer(signer crypto.JWTSigner, baseURL string, defaultType string, validity time.Duration) Issuer {
	return &issuer{
		signer:      signer,
		baseURL:     baseURL,
		defaultType: defaultType,
		validity:    validity,
		clock:       time.Now,
	}
}

func (i issuer) Issue(ctx context.Context, identity vdr.Identity, template CredentialTemplate) (*IssuedCredential, error) {
	if len(template.Subject) == 0 {
		return nil, core.InvalidInputError("credential subject is required")
	}
	uniqueID := uuid.NewString()
	id := template.ID
	if len(id) == 0 {
		id = fmt.Sprintf("%s/vc/%s", i.baseURL, uniqueID)
	}
	credentialID, err := ssi.ParseURI(id)
	if err != nil {
		return nil, core.InvalidInputError("invalid credential ID: %w", err)
	}
	credentialType := template.Type
	if len(credentialType) == 0 {
		credentialType = i.defaultType
	}
	domainType, err := ssi.ParseURI(credentialType)
	if err != nil {
		return nil, core.InvalidInputError("invalid credential type: %w", err)
	}

	issuanceDate := i.clock().UTC().Truncate(time.Second)
	unsigned := vc.VerifiableCredential{
		Context:           []ssi.URI{vc.VCContextV1URI()},
		ID:                credentialID,
		Type:              []ssi.URI{VerifiableCredentialType, *domainType},
		Issuer:            identity.DID().URI(),
		IssuanceDate:      issuanceDate,
		CredentialSubject: []map[string]any{template.Subject},
	}
	claims := map[string]interface{}{
		jwt.IssuerKey:    identity.DID().String(),
		jwt.JwtIDKey:     id,
		jwt.NotBeforeKey: issuanceDate.Unix(),
	}
	if i.validity > 0 {
		expirationDate := issuanceDate.Add(i.validity)
		unsigned.ExpirationDate = &expirationDate
		claims[jwt.ExpirationKey] = expirationDate.Unix()
	}
	if subjectID, ok := template.Subject["id"].(string); ok && len(subjectID) > 0 {
		claims[jwt.SubjectKey] = subjectID
	}
	claims["vc"] = unsigned
	headers := map[string]interface{}{
		jws.TypeKey:  "JWT",
		jws.KeyIDKey: identity.KeyID().String(),
	}

	token, err := i.signer.SignJWT(ctx, claims, headers, identity.KeyReference)
	if err != nil {
		return nil, core.WrapError(ErrSigningFailed, err)
	}
	// A credential that doesn't verify against the issuer's own document must never leave the issuer.
	if _, err = verifyJWT(token, identity.Document, jwt.WithClock(jwt.ClockFunc(i.clock))); err != nil {
		return nil, core.WrapError(ErrSigningFailed, fmt.Errorf("issued credential failed validation: %w", err))
	}
	issuedCredentials.Inc()
	audit.Log(ctx, log.Logger(), audit.CredentialIssuedEvent).
		WithField(core.LogFieldCredentialID, id).
		WithField(core.LogFieldCredentialType, credentialType).
		WithField(core.LogFieldCredentialIssuer, identity.DID().String()).
		Info("Issued credential")
	return &IssuedCredential{
		JWT:        token,
		Credential: unsigned,
		UniqueID:   uniqueID,
	}, nil
}
