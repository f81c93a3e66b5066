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
	"errors"

	"github.com/nuts-foundation/go-did/did"
)

// ErrDIDPublishFailed is returned when the ledger rejects the output holding a new DID document.
var ErrDIDPublishFailed = errors.New("DID publish failed")

// ErrKeyGenFailed is returned when the key or verification method of a new DID document can't be generated.
var ErrKeyGenFailed = errors.New("key generation failed")

// ErrDIDResolutionFailed is returned when a DID document can't be resolved from the ledger.
var ErrDIDResolutionFailed = errors.New("DID resolution failed")

// ErrKeyNotFound is returned when a DID document has no assertion method with the requested ID.
var ErrKeyNotFound = errors.New("key not found in DID document")

// ErrUnknownActor is returned when an identity is requested for an actor without a configured secret.
var ErrUnknownActor = errors.New("unknown actor")

// KeyFragment is the fragment of the verification method created for every DID document.
const KeyFragment = "jwk"

// Identity is a published DID document together with the handle of its signing key.
type Identity struct {
	// Address is the ledger address that paid for publication.
	Address string
	// Document is the DID document as confirmed by the ledger.
	Document did.Document
	// KeyFragment is the fragment of the assertion method in Document.
	KeyFragment string
	// KeyReference is the kid of the private key in the key store.
	KeyReference string
}

// DID returns the DID of the identity.
func (i Identity) DID() did.DID {
	return i.Document.ID
}

// KeyID returns the ID of the identity's assertion method, which is used as kid in JWTs it signs.
func (i Identity) KeyID() did.DIDURL {
	return did.DIDURL{DID: i.Document.ID, Fragment: i.KeyFragment}
}

// Creator creates and publishes new DID documents.
type Creator interface {
	// Create derives the ledger address of the secret, makes sure it is funded, generates an assertion key
	// and publishes a new DID document paid by that address.
	// It fails with ErrKeyGenFailed or ErrDIDPublishFailed, or an error of the funding loop.
	Create(ctx context.Context, secret []byte) (*Identity, error)
}

// IdentityRegistry holds at most one identity per logical actor (e.g. issuer, holder) for the lifetime of the process.
type IdentityRegistry interface {
	// Get returns the identity of the actor, creating and publishing it on first use.
	// Concurrent calls for the same actor publish at most one DID document.
	Get(ctx context.Context, actor string) (*Identity, error)
	// Actors returns the names of the actors that have a configured secret.
	Actors() []string
}

// Resolver resolves DID documents and their keys from the ledger.
type Resolver interface {
	// Resolve returns the DID document for the given DID. It fails with ErrDIDResolutionFailed.
	Resolve(ctx context.Context, id did.DID) (*did.Document, error)
	// ResolveMultiple resolves the distinct DIDs in parallel. The result is keyed by DID string.
	// The first failing resolution aborts the others.
	ResolveMultiple(ctx context.Context, ids []did.DID) (map[string]*did.Document, error)
	// ResolveAssertionKey returns the public key of the assertion method with the given ID.
	// It fails with ErrDIDResolutionFailed or ErrKeyNotFound.
	ResolveAssertionKey(ctx context.Context, keyID did.DIDURL) (crypto.PublicKey, error)
}

// VDR is the Verifiable Data Registry: it creates, holds and resolves the node's DIDs.
type VDR interface {
	Creator
	Resolver
	// Identities returns the identity registry.
	Identities() IdentityRegistry
	// Secret returns the configured secret of the actor, or ErrUnknownActor.
	Secret(actor string) ([]byte, error)
}
