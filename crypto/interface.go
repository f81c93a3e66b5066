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

package crypto

import (
	"context"
	"crypto"
	"errors"
)

// ErrPrivateKeyNotFound is returned when the private key doesn't exist
var ErrPrivateKeyNotFound = errors.New("private key not found")

// ErrKeyAlreadyExists is returned when a key with the same KID is already present in the store
var ErrKeyAlreadyExists = errors.New("key already exists")

// KIDNamingFunc is a function passed to New() which generates the kid for the pub/priv key
type KIDNamingFunc func(key crypto.PublicKey) (string, error)

// KeyCreator is the interface for creating key pairs.
type KeyCreator interface {
	// New generates an Ed25519 keypair and returns a Key. The KIDNamingFunc provides the kid.
	New(ctx context.Context, namingFunc KIDNamingFunc) (Key, error)
}

// KeyStore defines the functions for working with private keys.
// Private key material never leaves the store; keys are addressed by their kid.
type KeyStore interface {
	// Exists returns if the specified private key exists.
	Exists(ctx context.Context, kid string) bool
	// Resolve returns the Key for the given KID. ErrPrivateKeyNotFound is returned for an unknown KID.
	Resolve(ctx context.Context, kid string) (Key, error)

	KeyCreator
	JWTSigner
}

// JWTSigner is the interface used to sign JWTs.
type JWTSigner interface {
	// SignJWT creates a signed JWT using the private key with the given kid and the given claims.
	// The headers are added to the protected header; it typically carries the kid as the verifier knows it (a DID URL).
	// Returns ErrPrivateKeyNotFound when the indicated private key is not present.
	SignJWT(ctx context.Context, claims map[string]interface{}, headers map[string]interface{}, kid string) (string, error)
}

// Key is a handle to a private key in the KeyStore.
type Key interface {
	// KID returns the unique ID for this key.
	KID() string
	// Public returns the public key.
	Public() crypto.PublicKey
}
