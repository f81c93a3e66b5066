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
	"crypto/ed25519"
	"testing"

	"github.com/nuts-foundation/go-did/did"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
	"go.uber.org/mock/gomock"
)

func TestResolver(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New("tst")
	funder, err := funding.NewLoop(ledger, ledger, 0, 1)
	require.NoError(t, err)
	creator := NewCreator(ledger, funder, crypto.NewMemoryKeyStore())
	alice, err := creator.Create(ctx, []byte("alice"))
	require.NoError(t, err)
	bob, err := creator.Create(ctx, []byte("bob"))
	require.NoError(t, err)
	unknown := chain.NewDID("tst", "0x0123")
	resolver := NewResolver(ledger)

	t.Run("Resolve", func(t *testing.T) {
		t.Run("ok", func(t *testing.T) {
			document, err := resolver.Resolve(ctx, alice.DID())

			require.NoError(t, err)
			assert.Equal(t, alice.DID().String(), document.ID.String())
		})
		t.Run("not found", func(t *testing.T) {
			_, err := resolver.Resolve(ctx, unknown)

			assert.ErrorIs(t, err, ErrDIDResolutionFailed)
			assert.ErrorIs(t, err, chain.ErrNotFound)
		})
		t.Run("other DID method", func(t *testing.T) {
			_, err := resolver.Resolve(ctx, did.MustParseDID("did:web:example.com"))

			assert.ErrorIs(t, err, ErrDIDResolutionFailed)
		})
	})
	t.Run("ResolveMultiple", func(t *testing.T) {
		t.Run("duplicates are resolved once", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := chain.NewMockClient(ctrl)
			client.EXPECT().ResolveDID(gomock.Any(), alice.DID()).Return(&alice.Document, nil).Times(1)
			client.EXPECT().ResolveDID(gomock.Any(), bob.DID()).Return(&bob.Document, nil).Times(1)

			documents, err := NewResolver(client).ResolveMultiple(ctx, []did.DID{alice.DID(), bob.DID(), alice.DID()})

			require.NoError(t, err)
			assert.Len(t, documents, 2)
			assert.Equal(t, bob.DID().String(), documents[bob.DID().String()].ID.String())
		})
		t.Run("one fails", func(t *testing.T) {
			documents, err := resolver.ResolveMultiple(ctx, []did.DID{alice.DID(), unknown})

			assert.ErrorIs(t, err, ErrDIDResolutionFailed)
			assert.Nil(t, documents)
		})
		t.Run("empty", func(t *testing.T) {
			documents, err := resolver.ResolveMultiple(ctx, nil)

			require.NoError(t, err)
			assert.Empty(t, documents)
		})
	})
	t.Run("ResolveAssertionKey", func(t *testing.T) {
		t.Run("ok", func(t *testing.T) {
			publicKey, err := resolver.ResolveAssertionKey(ctx, alice.KeyID())

			require.NoError(t, err)
			assert.IsType(t, ed25519.PublicKey{}, publicKey)
		})
		t.Run("unknown fragment", func(t *testing.T) {
			_, err := resolver.ResolveAssertionKey(ctx, did.DIDURL{DID: alice.DID(), Fragment: "other"})

			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
		t.Run("key of other DID", func(t *testing.T) {
			_, err := resolver.ResolveAssertionKey(ctx, did.DIDURL{DID: unknown, Fragment: KeyFragment})

			assert.ErrorIs(t, err, ErrDIDResolutionFailed)
		})
	})
}
