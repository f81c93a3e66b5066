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

package anchor

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/anchor/log"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto/hash"
	"github.com/tdlaas/tdlaas-node/events"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/storage"
	"github.com/tdlaas/tdlaas-node/vcr"
	"github.com/tdlaas/tdlaas-node/vdr"
)

const moduleName = "Anchor"

var _ Anchorer = (*Module)(nil)
var _ core.Injectable = (*Module)(nil)
var _ core.Configurable = (*Module)(nil)

// IdentityProvider gives access to the issuer identity and the account that pays for anchors.
// It is satisfied by the VDR engine.
type IdentityProvider interface {
	Identities() vdr.IdentityRegistry
	Secret(actor string) ([]byte, error)
	Funder() funding.Funder
}

// Module anchors transactions of the issuer identity and verifies persisted records against their anchors.
type Module struct {
	config     Config
	storage    storage.Engine
	ledger     vdr.LedgerProvider
	identities IdentityProvider
	issuer     vcr.Issuer
	publisher  events.Publisher
	store      Store
}

// New creates a new anchor engine. Storage, ledger and VDR must be configured before this engine.
func New(storageEngine storage.Engine, ledger vdr.LedgerProvider, identities IdentityProvider, issuer vcr.Issuer, publisher events.Publisher) *Module {
	return &Module{
		config:     DefaultConfig(),
		storage:    storageEngine,
		ledger:     ledger,
		identities: identities,
		issuer:     issuer,
		publisher:  publisher,
	}
}

func (m *Module) Name() string {
	return moduleName
}

func (m *Module) Config() interface{} {
	return &m.config
}

func (m *Module) Configure(_ core.ServerConfig) error {
	if len(m.config.Tag) == 0 {
		return errors.New("anchor.tag must be set")
	}
	client := m.ledger.Client()
	if client == nil {
		return errors.New("ledger is not configured")
	}
	if err := registerMetrics(); err != nil {
		return err
	}
	m.store = NewStore(m.storage.GetSQLDatabase(), client, m.config.Tag)
	return nil
}

func (m *Module) StoreTransaction(ctx context.Context, transaction Transaction) (*Receipt, error) {
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	issuer, err := m.identities.Identities().Get(ctx, vdr.IssuerActor)
	if err != nil {
		return nil, err
	}
	secret, err := m.identities.Secret(vdr.IssuerActor)
	if err != nil {
		return nil, err
	}
	address, err := m.ledger.Client().DeriveAddress(ctx, secret)
	if err != nil {
		return nil, core.WrapError(ErrLedgerPublishFailed, err)
	}
	if err = m.identities.Funder().EnsureFunds(ctx, address); err != nil {
		return nil, err
	}
	record, err := m.store.Anchor(ctx, secret, issuer.DID(), transaction)
	if err != nil {
		return nil, err
	}
	issued, err := m.issuer.Issue(ctx, *issuer, vcr.CredentialTemplate{
		Type: VerifiableDataType,
		Subject: map[string]interface{}{
			"id":        issuer.DID().String(),
			"anchorRef": record.AnchorRef,
			"digest":    record.Digest,
			"alg":       hash.Algorithm,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("record %s is anchored, but issuing its credential failed: %w", record.AnchorRef, err)
	}
	event := AnchoredEvent{
		AnchorRef:    record.AnchorRef,
		IssuerDID:    record.IssuerDID,
		Digest:       record.Digest,
		CredentialID: issued.Credential.ID.String(),
	}
	// The record is anchored either way; subscribers can catch up through List.
	if err = m.publisher.Publish(ctx, events.RecordAnchoredSubject, event); err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldAnchorRef, record.AnchorRef).
			Warn("Failed to publish anchored event")
	}
	return &Receipt{Record: *record, CredentialJWT: issued.JWT}, nil
}

func (m *Module) Verify(ctx context.Context, anchorRef string) (*Verification, error) {
	return m.store.Verify(ctx, anchorRef)
}

func (m *Module) List(ctx context.Context, issuer did.DID) ([]Record, error) {
	return m.store.List(ctx, issuer)
}
