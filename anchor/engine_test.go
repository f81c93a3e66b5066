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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/events"
	"github.com/tdlaas/tdlaas-node/funding"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
	"github.com/tdlaas/tdlaas-node/storage"
	"github.com/tdlaas/tdlaas-node/vcr"
	"github.com/tdlaas/tdlaas-node/vdr"
	"go.uber.org/mock/gomock"
)

// identities overrides the funder of an identity provider.
type identities struct {
	IdentityProvider
	funder funding.Funder
}

func (i identities) Funder() funding.Funder {
	return i.funder
}

func TestModule_StoreTransaction(t *testing.T) {
	ctx := context.Background()
	instance, testContext := NewTestModule(t)

	t.Run("ok", func(t *testing.T) {
		receipt, err := instance.StoreTransaction(ctx, TestTransaction())

		require.NoError(t, err)
		assert.Equal(t, testContext.Issuer.DID().String(), receipt.Record.IssuerDID)
		t.Run("credential covers the anchored digest", func(t *testing.T) {
			credential, err := testContext.VCR.VerifyCredential(ctx, receipt.CredentialJWT)

			require.NoError(t, err)
			assert.True(t, credential.IsType(vcr.VerifiableCredentialType))
			assert.Equal(t, testContext.Issuer.DID().String(), credential.Issuer.String())
			subject := credential.CredentialSubject[0]
			assert.Equal(t, receipt.Record.AnchorRef, subject["anchorRef"])
			assert.Equal(t, receipt.Record.Digest, subject["digest"])
		})
		t.Run("record matches its anchor", func(t *testing.T) {
			result, err := instance.Verify(ctx, receipt.Record.AnchorRef)

			require.NoError(t, err)
			assert.True(t, result.Matched)
		})
		t.Run("record is listed for the issuer", func(t *testing.T) {
			records, err := instance.List(ctx, testContext.Issuer.DID())

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, receipt.Record.AnchorRef, records[0].AnchorRef)
		})
	})
	t.Run("anchored event is published", func(t *testing.T) {
		publisher := events.NewMockPublisher(gomock.NewController(t))
		var published AnchoredEvent
		publisher.EXPECT().Publish(ctx, events.RecordAnchoredSubject, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload interface{}) error {
			published = payload.(AnchoredEvent)
			return nil
		})
		publishing := New(testContext.Storage, vdr.TestLedger{Ledger: testContext.Ledger}, testContext.VDR, testContext.VCR, publisher)
		require.NoError(t, publishing.Configure(core.TestServerConfig(core.ServerConfig{})))

		receipt, err := publishing.StoreTransaction(ctx, TestTransaction())

		require.NoError(t, err)
		assert.Equal(t, receipt.Record.AnchorRef, published.AnchorRef)
		assert.Equal(t, receipt.Record.IssuerDID, published.IssuerDID)
		assert.Equal(t, receipt.Record.Digest, published.Digest)
		assert.NotEmpty(t, published.CredentialID)
	})
	t.Run("publishing event fails", func(t *testing.T) {
		publisher := events.NewMockPublisher(gomock.NewController(t))
		publisher.EXPECT().Publish(ctx, events.RecordAnchoredSubject, gomock.Any()).Return(events.ErrNotStarted)
		publishing := New(testContext.Storage, vdr.TestLedger{Ledger: testContext.Ledger}, testContext.VDR, testContext.VCR, publisher)
		require.NoError(t, publishing.Configure(core.TestServerConfig(core.ServerConfig{})))

		receipt, err := publishing.StoreTransaction(ctx, TestTransaction())

		require.NoError(t, err)
		assert.NotEmpty(t, receipt.CredentialJWT)
	})
	t.Run("invalid transaction", func(t *testing.T) {
		transaction := TestTransaction()
		transaction.Timestamp = ""

		_, err := instance.StoreTransaction(ctx, transaction)

		assert.EqualError(t, err, "timestamp is required")
	})
	t.Run("funding fails", func(t *testing.T) {
		funder := funding.NewMockFunder(gomock.NewController(t))
		funder.EXPECT().EnsureFunds(ctx, gomock.Any()).Return(funding.ErrFaucetRateLimited)
		failing := New(testContext.Storage, vdr.TestLedger{Ledger: testContext.Ledger}, identities{IdentityProvider: testContext.VDR, funder: funder}, testContext.VCR, nil)
		require.NoError(t, failing.Configure(core.TestServerConfig(core.ServerConfig{})))

		_, err := failing.StoreTransaction(ctx, TestTransaction())

		assert.ErrorIs(t, err, funding.ErrFaucetRateLimited)
	})
	t.Run("issuing credential fails", func(t *testing.T) {
		issuer := vcr.NewMockIssuer(gomock.NewController(t))
		issuer.EXPECT().Issue(ctx, gomock.Any(), gomock.Any()).Return(nil, vcr.ErrSigningFailed)
		failing := New(testContext.Storage, vdr.TestLedger{Ledger: testContext.Ledger}, testContext.VDR, issuer, nil)
		require.NoError(t, failing.Configure(core.TestServerConfig(core.ServerConfig{})))

		_, err := failing.StoreTransaction(ctx, TestTransaction())

		assert.ErrorIs(t, err, vcr.ErrSigningFailed)
		assert.ErrorContains(t, err, "is anchored")
	})
}

func TestModule_Configure(t *testing.T) {
	newInstance := func(t *testing.T, ledger *memory.Ledger) *Module {
		vdrInstance, _, _ := vdr.NewTestVDR(t)
		return New(storage.NewTestStorageEngine(t), vdr.TestLedger{Ledger: ledger}, vdrInstance, vcr.NewMockIssuer(gomock.NewController(t)), nil)
	}

	t.Run("ok", func(t *testing.T) {
		instance := newInstance(t, memory.New("tst"))

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.NoError(t, err)
		assert.Equal(t, "Anchor", instance.Name())
		assert.Equal(t, "tdlaas", instance.Config().(*Config).Tag)
	})
	t.Run("no tag", func(t *testing.T) {
		instance := newInstance(t, memory.New("tst"))
		instance.config.Tag = ""

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "anchor.tag must be set")
	})
	t.Run("ledger not configured", func(t *testing.T) {
		instance := newInstance(t, nil)

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "ledger is not configured")
	})
}

func TestModule_Verify_Errors(t *testing.T) {
	store := NewMockStore(gomock.NewController(t))
	store.EXPECT().Verify(gomock.Any(), "0x01").Return(nil, errors.New("b00m"))
	instance := &Module{store: store}

	_, err := instance.Verify(context.Background(), "0x01")

	assert.EqualError(t, err, "b00m")
}
