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
	"crypto/ed25519"
	"crypto/rand"
	"sync"

	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/crypto/log"
)

var _ KeyStore = (*MemoryKeyStore)(nil)

// MemoryKeyStore is a KeyStore that holds Ed25519 keys in memory, for the lifetime of the process.
type MemoryKeyStore struct {
	mux  sync.RWMutex
	keys map[string]ed25519.PrivateKey
}

// NewMemoryKeyStore creates an empty MemoryKeyStore.
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{keys: map[string]ed25519.PrivateKey{}}
}

type basicKey struct {
	kid       string
	publicKey crypto.PublicKey
}

func (b basicKey) KID() string {
	return b.kid
}

func (b basicKey) Public() crypto.PublicKey {
	return b.publicKey
}

func (m *MemoryKeyStore) New(ctx context.Context, namingFunc KIDNamingFunc) (Key, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	kid, err := namingFunc(publicKey)
	if err != nil {
		return nil, err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, exists := m.keys[kid]; exists {
		return nil, ErrKeyAlreadyExists
	}
	audit.Log(ctx, log.Logger(), audit.CryptoNewKeyEvent).Infof("Generating new key pair: %s", kid)
	m.keys[kid] = privateKey
	return basicKey{kid: kid, publicKey: publicKey}, nil
}

func (m *MemoryKeyStore) Exists(_ context.Context, kid string) bool {
	m.mux.RLock()
	defer m.mux.RUnlock()
	_, ok := m.keys[kid]
	return ok
}

func (m *MemoryKeyStore) Resolve(_ context.Context, kid string) (Key, error) {
	privateKey, err := m.privateKey(kid)
	if err != nil {
		return nil, err
	}
	return basicKey{kid: kid, publicKey: privateKey.Public()}, nil
}

func (m *MemoryKeyStore) SignJWT(ctx context.Context, claims map[string]interface{}, headers map[string]interface{}, kid string) (string, error) {
	privateKey, err := m.privateKey(kid)
	if err != nil {
		return "", err
	}
	audit.Log(ctx, log.Logger(), audit.CryptoSignJWTEvent).Infof("Signing a JWT with key: %s", kid)
	return SignJWT(privateKey, claims, headers)
}

func (m *MemoryKeyStore) privateKey(kid string) (ed25519.PrivateKey, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	privateKey, ok := m.keys[kid]
	if !ok {
		return nil, ErrPrivateKeyNotFound
	}
	return privateKey, nil
}
