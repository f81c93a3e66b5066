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

package vdr

import (
	"context"
	"crypto"
	"fmt"

	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/core"
	nodeCrypto "github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/vdr/log"
)

const moduleName = "VDR"

var _ VDR = (*Module)(nil)
var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)

// LedgerProvider gives access to the configured ledger. It is satisfied by the ledger engine.
type LedgerProvider interface {
	Client() chain.Client
	Faucet() chain.Faucet
}

// Module implements VDR. It wires the creator, identity registry and resolver on top of the ledger.
type Module struct {
	config     Config
	ledger     LedgerProvider
	keyStore   nodeCrypto.KeyStore
	funder     funding.Funder
	creator    Creator
	resolver   Resolver
	identities IdentityRegistry
	secrets    map[string][]byte
}

// New creates a new VDR engine. The ledger is read on Configure, so it must be configured first.
func New(ledger LedgerProvider, keyStore nodeCrypto.KeyStore) *Module {
	return &Module{
		config:   DefaultConfig(),
		ledger:   ledger,
		keyStore: keyStore,
	}
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

func (m *Module) Configure(config core.ServerConfig) error {
	client := m.ledger.Client()
	if client == nil {
		return fmt.Errorf("ledger is not configured")
	}
	var err error
	var faucet chain.Faucet
	if len(m.config.Funding.Faucet) > 0 {
		faucet = funding.NewHTTPFaucet(m.config.Funding.Faucet, config.Strictmode, m.config.Funding.Timeout)
	} else if faucet = m.ledger.Faucet(); faucet == nil {
		log.Logger().Warn("No faucet configured and the ledger can't fund addresses, unfunded identities can't be created")
	}
	m.funder, err = funding.NewLoop(client, faucet, m.config.Funding.Interval, m.config.Funding.Attempts)
	if err != nil {
		return fmt.Errorf("invalid funding configuration: %w", err)
	}

	m.secrets = make(map[string][]byte, len(m.config.Identities))
	for actor, identity := range m.config.Identities {
		if len(identity.Secret) == 0 {
			return fmt.Errorf("vdr.identities.%s.secret must be set", actor)
		}
		m.secrets[actor] = []byte(identity.Secret)
	}
	for _, actor := range []string{IssuerActor, HolderActor} {
		if _, ok := m.secrets[actor]; !ok {
			log.Logger().WithField(core.LogFieldActor, actor).Warn("No secret configured for actor, its API operations will fail")
		}
	}

	m.creator = NewCreator(client, m.funder, m.keyStore)
	m.resolver = NewResolver(client)
	m.identities = NewIdentityRegistry(m.creator, m.secrets)
	return nil
}

func (m *Module) Create(ctx context.Context, secret []byte) (*Identity, error) {
	return m.creator.Create(ctx, secret)
}

func (m *Module) Resolve(ctx context.Context, id did.DID) (*did.Document, error) {
	return m.resolver.Resolve(ctx, id)
}

func (m *Module) ResolveMultiple(ctx context.Context, ids []did.DID) (map[string]*did.Document, error) {
	return m.resolver.ResolveMultiple(ctx, ids)
}

func (m *Module) ResolveAssertionKey(ctx context.Context, keyID did.DIDURL) (crypto.PublicKey, error) {
	return m.resolver.ResolveAssertionKey(ctx, keyID)
}

func (m *Module) Identities() IdentityRegistry {
	return m.identities
}

func (m *Module) Secret(actor string) ([]byte, error) {
	secret, ok := m.secrets[actor]
	if !ok {
		return nil, ErrUnknownActor
	}
	return secret, nil
}

// Funder returns the funding loop that keeps identity accounts able to pay for ledger outputs.
func (m *Module) Funder() funding.Funder {
	return m.funder
}
