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
	"errors"
	"time"

	ssi "github.com/nuts-foundation/go-did"
	"github.com/nuts-foundation/go-did/did"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/tdlaas/tdlaas-node/challenge"
	"github.com/tdlaas/tdlaas-node/vdr"
)

// ErrSigningFailed is returned when a credential or presentation can't be signed, or the signed credential fails self-validation.
var ErrSigningFailed = errors.New("signing failed")

// ErrInvalidOrExpiredNonce is returned when no live challenge exists for the verification session,
// or it was consumed by another verification.
var ErrInvalidOrExpiredNonce = errors.New("invalid or expired nonce")

// ErrPresentationValidationFailed is returned when the presentation signature, nonce or expiration is invalid.
var ErrPresentationValidationFailed = errors.New("presentation validation failed")

// ErrUnsupportedCredentialFormat is returned when a presentation contains a credential that isn't a JWT.
var ErrUnsupportedCredentialFormat = errors.New("unsupported credential format")

// ErrSubjectHolderMismatch is returned when a presented credential is not about the holder of the presentation.
var ErrSubjectHolderMismatch = errors.New("credential subject is not the presentation holder")

// ErrCredentialValidationFailed is returned when the signature or validity period of a credential is invalid.
var ErrCredentialValidationFailed = errors.New("credential validation failed")

// ErrDIDResolutionFailed is returned when the DID document of a holder or issuer can't be resolved.
var ErrDIDResolutionFailed = vdr.ErrDIDResolutionFailed

// VerifiableCredentialType is the type every credential has.
var VerifiableCredentialType = vc.VerifiableCredentialTypeV1URI()

// VerifiablePresentationType is the type every presentation has.
var VerifiablePresentationType = ssi.MustParseURI("VerifiablePresentation")

// CredentialTemplate holds the contents of a credential to be issued.
type CredentialTemplate struct {
	// ID of the credential. If empty, an ID is generated.
	ID string
	// Type is the domain type of the credential. If empty, the configured credential type is used.
	Type string
	// Subject holds the claims about the subject. The "id" claim identifies the subject.
	Subject map[string]interface{}
}

// IssuedCredential is the result of issuing a credential.
type IssuedCredential struct {
	// JWT is the signed credential.
	JWT string
	// Credential is the credential as signed into the JWT, without proof.
	Credential vc.VerifiableCredential
	// UniqueID identifies the issuance. It correlates the JWT to the request.
	UniqueID string
}

// Issuer issues JWT credentials.
type Issuer interface {
	// Issue builds a credential from the template, signs it with the assertion key of the issuer identity
	// and validates the result against the issuer's own DID document.
	// It fails with ErrSigningFailed.
	Issue(ctx context.Context, issuer vdr.Identity, template CredentialTemplate) (*IssuedCredential, error)
}

// PresentationOptions holds the binding of a presentation to a verification session.
type PresentationOptions struct {
	Nonce   string
	Expires time.Time
}

// Holder creates presentations of credentials.
type Holder interface {
	// CreatePresentation wraps the credential JWTs in a presentation signed by the holder identity,
	// bound to the given nonce and expiration.
	CreatePresentation(ctx context.Context, holder vdr.Identity, credentials []string, options PresentationOptions) (*vc.VerifiablePresentation, error)
}

// VerificationResult is the outcome of a successful presentation verification.
type VerificationResult struct {
	Holder       did.DID
	Presentation vc.VerifiablePresentation
	Credentials  []vc.VerifiableCredential
}

// Verifier verifies presentations and credentials.
type Verifier interface {
	// VerifyPresentation verifies the presentation against the challenge of the session.
	// The first failing check aborts verification; the returned error is a VerificationError value.
	VerifyPresentation(ctx context.Context, sessionID string, presentationJWT string) (*VerificationResult, error)
	// VerifyCredential verifies a single JWT credential against the DID document of its issuer.
	VerifyCredential(ctx context.Context, credentialJWT string) (*vc.VerifiableCredential, error)
}

// VCR combines issuing, presenting and verifying.
type VCR interface {
	Issuer
	Holder
	Verifier
	// Challenges returns the store of verification challenges.
	Challenges() challenge.Store
}

// DecodedCredential returns the credential without its JWT encoding, so it marshals to its JSON claims.
func DecodedCredential(credential vc.VerifiableCredential) vc.VerifiableCredential {
	return vc.VerifiableCredential{
		Context:           credential.Context,
		ID:                credential.ID,
		Type:              credential.Type,
		Issuer:            credential.Issuer,
		IssuanceDate:      credential.IssuanceDate,
		ExpirationDate:    credential.ExpirationDate,
		CredentialSubject: credential.CredentialSubject,
	}
}

// DecodedPresentation returns the presentation without its JWT encoding, with decoded credentials.
func DecodedPresentation(presentation vc.VerifiablePresentation) vc.VerifiablePresentation {
	credentials := make([]vc.VerifiableCredential, 0, len(presentation.VerifiableCredential))
	for _, credential := range presentation.VerifiableCredential {
		credentials = append(credentials, DecodedCredential(credential))
	}
	return vc.VerifiablePresentation{
		Context:              presentation.Context,
		ID:                   presentation.ID,
		Type:                 presentation.Type,
		Holder:               presentation.Holder,
		VerifiableCredential: credentials,
	}
}
