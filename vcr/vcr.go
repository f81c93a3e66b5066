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
	"net/url"
	"strings"

	"github.com/nuts-foundation/go-did/vc"
	"github.com/tdlaas/tdlaas-node/challenge"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/storage"
	"github.com/tdlaas/tdlaas-node/vcr/log"
	"github.com/tdlaas/tdlaas-node/vdr"
)

const moduleName = "VCR"

var _ VCR = (*Module)(nil)
var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)

// Module is the Verifiable Credential Registry engine: it issues credentials, creates presentations
// and verifies them against challenges kept in the session database.
type Module struct {
	config     Config
	storage    storage.Engine
	resolver   vdr.Resolver
	signer     crypto.JWTSigner
	challenges challenge.Store
	issuer     Issuer
	holder     Holder
	verifier   Verifier
}

// New creates a new VCR engine. The storage engine must be configured before this engine.
func New(storageEngine storage.Engine, resolver vdr.Resolver, signer crypto.JWTSigner) *Module {
	return &Module{
		config:   DefaultConfig(),
		storage:  storageEngine,
		resolver: resolver,
		signer:   signer,
	}
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

func (m *Module) Configure(config core.ServerConfig) error {
	baseURL, err := url.Parse(m.config.BaseURL)
	if err != nil || len(baseURL.Host) == 0 {
		return fmt.Errorf("invalid vcr.baseurl: %s", m.config.BaseURL)
	}
	if config.Strictmode && baseURL.Scheme != "https" {
		return errors.New("vcr.baseurl must be an HTTPS URL in strict mode")
	}
	if m.config.Challenge.TTL <= 0 {
		return errors.New("vcr.challenge.ttl must be positive")
	}
	if m.config.PresentationValidity <= 0 {
		return errors.New("vcr.presentationvalidity must be positive")
	}
	if !m.config.Challenge.ConsumeOnSuccess {
		log.Logger().Warn("Challenges are not consumed on successful verification, presentations can be replayed until their challenge expires")
	}
	if err = registerMetrics(); err != nil {
		return err
	}

	m.challenges = challenge.NewStore(m.storage.GetSessionDatabase(), m.config.Challenge.TTL)
	m.issuer = NewIssuer(m.signer, strings.TrimSuffix(m.config.BaseURL, "/"), m.config.CredentialType, m.config.CredentialValidity)
	m.holder = NewHolder(m.signer, m.config.PresentationValidity)
	m.verifier = NewVerifier(m.resolver, m.challenges, ConsumePolicy{
		OnSuccess: m.config.Challenge.ConsumeOnSuccess,
		OnFailure: m.config.Challenge.ConsumeOnFailure,
	}, m.config.ClockSkew)
	return nil
}

// Challenges returns the store of verification challenges.
func (m *Module) Challenges() challenge.Store {
	return m.challenges
}

func (m *Module) Issue(ctx context.Context, issuer vdr.Identity, template CredentialTemplate) (*IssuedCredential, error) {
	return m.issuer.Issue(ctx, issuer, template)
}

func (m *Module) CreatePresentation(ctx context.Context, holder vdr.Identity, credentials []string, options PresentationOptions) (*vc.VerifiablePresentation, error) {
	return m.holder.CreatePresentation(ctx, holder, credentials, options)
}

func (m *Module) VerifyPresentation(ctx context.Context, sessionID string, presentationJWT string) (*VerificationResult, error) {
	return m.verifier.VerifyPresentation(ctx, sessionID, presentationJWT)
}

func (m *Module) VerifyCredential(ctx context.Context, credentialJWT string) (*vc.VerifiableCredential, error) {
	return m.verifier.VerifyCredential(ctx, credentialJWT)
}
