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

	ssi "github.com/nuts-foundation/go-did"
	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/vdr/log"
)

var _ Creator = (*creator)(nil)

// creator publishes DID documents with a single Ed25519 assertion method.
type creator struct {
	ledger   chain.Client
	funder   funding.Funder
	keyStore crypto.KeyCreator
}

// NewCreator returns a Creator that publishes DID documents on the given ledger.
func NewCreator(ledger chain.Client, funder funding.Funder, keyStore crypto.KeyCreator) Creator {
	return &creator{ledger: ledger, funder: funder, keyStore: keyStore}
}

func (c creator) Create(ctx context.Context, secret []byte) (*Identity, error) {
	hrp, err := c.ledger.NetworkHRP(ctx)
	if err != nil {
		return nil, core.WrapError(ErrDIDPublishFailed, err)
	}
	address, err := c.ledger.DeriveAddress(ctx, secret)
	if err != nil {
		return nil, err
	}
	if err = c.funder.EnsureFunds(ctx, address); err != nil {
		return nil, err
	}

	key, err := c.keyStore.New(ctx, crypto.Thumbprint)
	if err != nil {
		return nil, core.WrapError(ErrKeyGenFailed, err)
	}
	document, err := newDocument(chain.PlaceholderDID(hrp), key.Public())
	if err != nil {
		return nil, core.WrapError(ErrKeyGenFailed, err)
	}

	published, err := c.ledger.PublishDIDDocument(ctx, secret, *document)
	if err != nil {
		return nil, core.WrapError(ErrDIDPublishFailed, err)
	}
	audit.Log(ctx, log.Logger(), audit.DIDCreatedEvent).
		WithField(core.LogFieldDID, published.ID.String()).
		WithField(core.LogFieldAddress, address).
		Info("Published new DID document")
	return &Identity{
		Address:      address,
		Document:     *published,
		KeyFragment:  KeyFragment,
		KeyReference: key.KID(),
	}, nil
}

// newDocument creates an unpublished DID document with the public key as assertion method.
func newDocument(id did.DID, publicKey interface{}) (*did.Document, error) {
	keyID := did.DIDURL{DID: id, Fragment: KeyFragment}
	verificationMethod, err := did.NewVerificationMethod(keyID, ssi.JsonWebKey2020, id, publicKey)
	if err != nil {
		return nil, err
	}
	document := did.Document{
		Context: []interface{}{did.DIDContextV1URI()},
		ID:      id,
	}
	document.AddAssertionMethod(verificationMethod)
	return &document, nil
}
