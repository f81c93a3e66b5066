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
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/nuts-foundation/go-did/did"
	"github.com/nuts-foundation/go-did/vc"
	"github.com/sirupsen/logrus"
	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/challenge"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/vcr/log"
	"github.com/tdlaas/tdlaas-node/vdr"
)

// State is a state of the presentation verification.
type State string

const (
	StateInit                       State = "Init"
	StateNonceIssued                State = "NonceIssued"
	StatePresentationReceived       State = "PresentationReceived"
	StateHolderResolved             State = "HolderResolved"
	StatePresentationSignatureValid State = "PresentationSignatureValid"
	StateCredentialsExtracted       State = "CredentialsExtracted"
	StateIssuersResolved            State = "IssuersResolved"
	StateAllCredentialsValid        State = "AllCredentialsValid"
	StateInvalid                    State = "Invalid"
)

// VerificationError is returned when presentation verification fails.
type VerificationError struct {
	// State is the last state verification reached before the failing check.
	State State
	err   error
}

func (e VerificationError) Error() string {
	return e.err.Error()
}

func (e VerificationError) Unwrap() error {
	return e.err
}

// Reason returns the name of the failed check, see Reason.
func (e VerificationError) Reason() string {
	return Reason(e.err)
}

var reasons = []struct {
	err    error
	reason string
}{
	{ErrInvalidOrExpiredNonce, "InvalidOrExpiredNonce"},
	{ErrPresentationValidationFailed, "PresentationValidationFailed"},
	{ErrUnsupportedCredentialFormat, "UnsupportedCredentialFormat"},
	{ErrSubjectHolderMismatch, "SubjectHolderMismatch"},
	{ErrDIDResolutionFailed, "DidResolutionFailed"},
	{ErrCredentialValidationFailed, "CredentialValidationFailed"},
	{ErrSigningFailed, "SigningFailed"},
}

// Reason returns the name of the check that failed with err, which is safe to return to callers,
// or an empty string if err isn't a verification failure.
func Reason(err error) string {
	for _, candidate := range reasons {
		if errors.Is(err, candidate.err) {
			return candidate.reason
		}
	}
	return ""
}

// ConsumePolicy determines when the challenge of a session is consumed by a verification.
type ConsumePolicy struct {
	// OnSuccess consumes the challenge when verification succeeds, so the presentation can't be replayed.
	OnSuccess bool
	// OnFailure consumes the challenge when verification fails after the challenge was found.
	OnFailure bool
}

var _ Verifier = (*verifier)(nil)

type verifier struct {
	resolver   vdr.Resolver
	challenges challenge.Store
	policy     ConsumePolicy
	clockSkew  time.Duration
	clock      func() time.Time
}

// NewVerifier creates a Verifier that checks presentations against the challenges in the store.
func NewVerifier(resolver vdr.Resolver, challenges challenge.Store, policy ConsumePolicy, clockSkew time.Duration) Verifier {
	return &verifier{
		resolver:   resolver,
		challenges: challenges,
		policy:     policy,
		clockSkew:  clockSkew,
		clock:      time.Now,
	}
}

// verification holds the state of a single presentation verification.
type verification struct {
	*verifier
	sessionID string
	raw       string
	state     State

	challenge      *challenge.Challenge
	presentation   *vc.VerifiablePresentation
	holder         did.DID
	holderDocument *did.Document
	credentials    []vc.VerifiableCredential
	issuers        map[string]*did.Document
}

// transition is a check that moves verification to the next state when it passes.
type transition struct {
	to    State
	check func(ctx context.Context) error
}

func (v *verifier) VerifyPresentation(ctx context.Context, sessionID string, presentationJWT string) (*VerificationResult, error) {
	run := &verification{
		verifier:  v,
		sessionID: sessionID,
		raw:       presentationJWT,
		state:     StatePresentationReceived,
	}
	transitions := []transition{
		{StateHolderResolved, run.resolveHolder},
		{StatePresentationSignatureValid, run.verifyPresentation},
		{StateCredentialsExtracted, run.extractCredentials},
		{StateIssuersResolved, run.resolveIssuers},
		{StateAllCredentialsValid, run.verifyCredentials},
	}
	logger := log.Logger().WithField(core.LogFieldSessionID, sessionID)
	for _, next := range transitions {
		if err := next.check(ctx); err != nil {
			return nil, run.fail(ctx, logger, err)
		}
		run.state = next.to
	}
	if v.policy.OnSuccess {
		if err := run.consume(); err != nil {
			return nil, run.fail(ctx, logger, err)
		}
	}
	presentationVerifications.WithLabelValues("valid").Inc()
	audit.Log(ctx, logger, audit.PresentationVerifiedEvent).
		WithField(core.LogFieldDID, run.holder.String()).
		WithField(core.LogFieldVerificationState, run.state).
		Info("Presentation verified")
	return &VerificationResult{
		Holder:       run.holder,
		Presentation: *run.presentation,
		Credentials:  run.credentials,
	}, nil
}

// fail moves the verification to the Invalid state, applying the consume policy.
func (v *verification) fail(ctx context.Context, logger *logrus.Entry, err error) error {
	result := VerificationError{State: v.state, err: err}
	if v.policy.OnFailure && v.challenge != nil {
		if _, consumeErr := v.challenges.Consume(v.sessionID); consumeErr != nil && !errors.Is(consumeErr, challenge.ErrNotFound) {
			logger.WithError(consumeErr).Warn("Failed to consume challenge of failed verification")
		}
	}
	v.state = StateInvalid
	presentationVerifications.WithLabelValues(result.Reason()).Inc()
	logger.
		WithError(err).
		WithField(core.LogFieldVerificationState, result.State).
		Warn("Presentation verification failed")
	audit.Log(ctx, logger, audit.PresentationVerifiedEvent).
		WithField(core.LogFieldVerificationState, result.State).
		Infof("Presentation rejected: %s", result.Reason())
	return result
}

// resolveHolder looks up the challenge of the session and resolves the DID document of the holder the presentation claims.
func (v *verification) resolveHolder(ctx context.Context) error {
	var err error
	v.challenge, err = v.challenges.Get(v.sessionID)
	if errors.Is(err, challenge.ErrNotFound) {
		return ErrInvalidOrExpiredNonce
	} else if err != nil {
		return err
	}
	v.presentation, err = vc.ParseVerifiablePresentation(v.raw)
	if err != nil {
		return core.WrapError(ErrPresentationValidationFailed, err)
	}
	if v.presentation.Format() != vc.JWTPresentationProofFormat {
		return core.WrapError(ErrPresentationValidationFailed, errors.New("presentation is not a JWT"))
	}
	holder, err := did.ParseDID(v.presentation.JWT().Issuer())
	if err != nil {
		return core.WrapError(ErrPresentationValidationFailed, fmt.Errorf("invalid holder: %w", err))
	}
	v.holder = *holder
	v.holderDocument, err = v.resolver.Resolve(ctx, v.holder)
	return err
}

// verifyPresentation checks the signature of the presentation and its binding to the challenge.
func (v *verification) verifyPresentation(_ context.Context) error {
	token, err := verifyJWT(v.raw, *v.holderDocument,
		jwt.WithClock(jwt.ClockFunc(v.clock)),
		jwt.WithAcceptableSkew(v.clockSkew),
		jwt.WithRequiredClaim(jwt.ExpirationKey),
	)
	if err != nil {
		return core.WrapError(ErrPresentationValidationFailed, err)
	}
	nonce, _ := token.Get("nonce")
	if nonce != v.challenge.Nonce {
		return core.WrapError(ErrPresentationValidationFailed, errors.New("presentation nonce does not match challenge"))
	}
	return nil
}

// extractCredentials accepts JWT credentials only.
func (v *verification) extractCredentials(_ context.Context) error {
	if len(v.presentation.VerifiableCredential) == 0 {
		return core.WrapError(ErrPresentationValidationFailed, errors.New("presentation contains no credentials"))
	}
	for _, credential := range v.presentation.VerifiableCredential {
		switch credential.Format() {
		case vc.JWTCredentialProofFormat:
			v.credentials = append(v.credentials, credential)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedCredentialFormat, credential.Format())
		}
	}
	return nil
}

func (v *verification) resolveIssuers(ctx context.Context) error {
	issuers := make([]did.DID, 0, len(v.credentials))
	for _, credential := range v.credentials {
		issuer, err := did.ParseDID(credential.Issuer.String())
		if err != nil {
			return core.WrapError(ErrCredentialValidationFailed, fmt.Errorf("invalid issuer: %w", err))
		}
		issuers = append(issuers, *issuer)
	}
	var err error
	v.issuers, err = v.resolver.ResolveMultiple(ctx, issuers)
	return err
}

// verifyCredentials verifies every credential against its issuer and requires the holder to be its subject.
func (v *verification) verifyCredentials(_ context.Context) error {
	for _, credential := range v.credentials {
		issuerDocument, ok := v.issuers[credential.Issuer.String()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrDIDResolutionFailed, credential.Issuer.String())
		}
		if _, err := verifyJWT(credential.Raw(), *issuerDocument,
			jwt.WithClock(jwt.ClockFunc(v.clock)),
			jwt.WithAcceptableSkew(v.clockSkew),
		); err != nil {
			return core.WrapError(ErrCredentialValidationFailed, fmt.Errorf("credential %s: %w", credentialID(credential), err))
		}
		if err := requireSubject(credential, v.holder); err != nil {
			return err
		}
	}
	return nil
}

// consume removes the challenge. The challenge must still be the one the presentation was verified against.
func (v *verification) consume() error {
	consumed, err := v.challenges.Consume(v.sessionID)
	if errors.Is(err, challenge.ErrNotFound) {
		return ErrInvalidOrExpiredNonce
	} else if err != nil {
		return err
	}
	if consumed.Nonce != v.challenge.Nonce {
		return fmt.Errorf("%w: challenge was reissued during verification", ErrInvalidOrExpiredNonce)
	}
	return nil
}

// requireSubject checks that every subject of the credential is the holder.
func requireSubject(credential vc.VerifiableCredential, holder did.DID) error {
	if len(credential.CredentialSubject) == 0 {
		return fmt.Errorf("%w: credential %s has no subject", ErrSubjectHolderMismatch, credentialID(credential))
	}
	for _, subject := range credential.CredentialSubject {
		subjectID, _ := subject["id"].(string)
		if subjectID != holder.String() {
			return fmt.Errorf("%w: subject %q of credential %s", ErrSubjectHolderMismatch, subjectID, credentialID(credential))
		}
	}
	return nil
}

func (v *verifier) VerifyCredential(ctx context.Context, credentialJWT string) (*vc.VerifiableCredential, error) {
	credential, err := vc.ParseVerifiableCredential(credentialJWT)
	if err != nil {
		return nil, core.WrapError(ErrCredentialValidationFailed, err)
	}
	if credential.Format() != vc.JWTCredentialProofFormat {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCredentialFormat, credential.Format())
	}
	issuer, err := did.ParseDID(credential.Issuer.String())
	if err != nil {
		return nil, core.WrapError(ErrCredentialValidationFailed, fmt.Errorf("invalid issuer: %w", err))
	}
	issuerDocument, err := v.resolver.Resolve(ctx, *issuer)
	if err != nil {
		return nil, err
	}
	if _, err = verifyJWT(credentialJWT, *issuerDocument,
		jwt.WithClock(jwt.ClockFunc(v.clock)),
		jwt.WithAcceptableSkew(v.clockSkew),
	); err != nil {
		return nil, core.WrapError(ErrCredentialValidationFailed, err)
	}
	log.Logger().
		WithField(core.LogFieldCredentialID, credentialID(*credential)).
		WithField(core.LogFieldCredentialIssuer, issuer.String()).
		Debug("Credential verified")
	return credential, nil
}

func credentialID(credential vc.VerifiableCredential) string {
	if credential.ID == nil {
		return ""
	}
	return credential.ID.String()
}
