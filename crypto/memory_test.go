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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/audit"
)

func TestMemoryKeyStore_New(t *testing.T) {
	ctx := context.Background()
	t.Run("ok", func(t *testing.T) {
		auditLogs := audit.CaptureLogs(t)
		store := NewMemoryKeyStore()

		key, err := store.New(audit.TestContext(), Thumbprint)

		require.NoError(t, err)
		auditLogs.AssertContains(t, "Crypto", audit.CryptoNewKeyEvent, audit.TestActor, "Generating new key pair: "+key.KID())
		assert.IsType(t, ed25519.PublicKey{}, key.Public())
		assert.True(t, store.Exists(ctx, key.KID()))
		resolved, err := store.Resolve(ctx, key.KID())
		require.NoError(t, err)
		assert.Equal(t, key.Public(), resolved.Public())
	})
	t.Run("kid already exists", func(t *testing.T) {
		store := NewMemoryKeyStore()
		fixedName := func(_ crypto.PublicKey) (string, error) { return "key-1", nil }
		_, err := store.New(ctx, fixedName)
		require.NoError(t, err)

		_, err = store.New(ctx, fixedName)

		assert.ErrorIs(t, err, ErrKeyAlreadyExists)
	})
	t.Run("naming func fails", func(t *testing.T) {
		store := NewMemoryKeyStore()

		_, err := store.New(ctx, func(_ crypto.PublicKey) (string, error) { return "", errors.New("b00m") })

		assert.EqualError(t, err, "b00m")
	})
	t.Run("concurrent", func(t *testing.T) {
		store := NewMemoryKeyStore()
		wg := sync.WaitGroup{}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = store.New(ctx, Thumbprint)
			}()
		}
		wg.Wait()

		assert.Len(t, store.keys, 10)
	})
}

func TestMemoryKeyStore_Resolve(t *testing.T) {
	_, err := NewMemoryKeyStore().Resolve(context.Background(), "unknown")

	assert.ErrorIs(t, err, ErrPrivateKeyNotFound)
}

func TestMemoryKeyStore_SignJWT(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKeyStore()
	key, err := store.New(ctx, Thumbprint)
	require.NoError(t, err)
	const kid = "did:tdlaas:tdl:0x01#jwk"

	t.Run("ok", func(t *testing.T) {
		auditLogs := audit.CaptureLogs(t)

		token, err := store.SignJWT(ctx, map[string]interface{}{"iss": "did:tdlaas:tdl:0x01", "exp": time.Now().Add(time.Minute)}, map[string]interface{}{"kid": kid}, key.KID())
		require.NoError(t, err)

		parsed, err := ParseJWT(token, func(actual string) (crypto.PublicKey, error) {
			assert.Equal(t, kid, actual)
			return key.Public(), nil
		})

		require.NoError(t, err)
		assert.Equal(t, "did:tdlaas:tdl:0x01", parsed.Issuer())
		auditLogs.AssertContains(t, "Crypto", audit.CryptoSignJWTEvent, audit.SystemActor, "Signing a JWT with key: "+key.KID())
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := store.SignJWT(ctx, nil, nil, "unknown")

		assert.ErrorIs(t, err, ErrPrivateKeyNotFound)
	})
}
