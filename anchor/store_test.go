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
	"testing"

	"github.com/nuts-foundation/go-did/did"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
	"github.com/tdlaas/tdlaas-node/storage"
	"go.uber.org/mock/gomock"
)

var testIssuer = did.MustParseDID("did:tdlaas:tst:0x01")

func anchorCount(result string) float64 {
	metric := &io_prometheus_client.Metric{}
	_ = anchors.WithLabelValues(result).Write(metric)
	return *metric.Counter.Value
}

// newTestStore creates a store on a SQLite database and an in-memory ledger, with a funded account for the returned secret.
func newTestStore(t *testing.T) (*sqlStore, *memory.Ledger, []byte) {
	ctx := context.Background()
	ledger := memory.New("tst")
	secret := []byte("anchor-secret")
	address, err := ledger.DeriveAddress(ctx, secret)
	require.NoError(t, err)
	require.NoError(t, ledger.RequestFunds(ctx, address))
	require.NoError(t, registerMetrics())
	db := storage.NewTestStorageEngine(t).GetSQLDatabase()
	return NewStore(db, ledger, "tdlaas").(*sqlStore), ledger, secret
}

func TestSQLStore_Anchor(t *testing.T) {
	ctx := context.Background()
	store, ledger, secret := newTestStore(t)

	t.Run("ok", func(t *testing.T) {
		auditLogs := audit.CaptureLogs(t)

		record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())

		require.NoError(t, err)
		assert.True(t, auditLogs.Contains(t, audit.RecordAnchoredEvent))
		assert.NotEmpty(t, record.AnchorRef)
		assert.Equal(t, testIssuer.String(), record.IssuerDID)
		assert.Equal(t, Digest(*record).String(), record.Digest)
		t.Run("digest is published with tag", func(t *testing.T) {
			tag, data, err := ledger.GetData(ctx, record.AnchorRef)

			require.NoError(t, err)
			assert.Equal(t, "tdlaas", tag)
			assert.JSONEq(t, `{"digest":"`+record.Digest+`","alg":"sha-256"}`, string(data))
		})
		t.Run("record is persisted", func(t *testing.T) {
			var persisted Record
			require.NoError(t, store.db.Where("anchor_ref = ?", record.AnchorRef).First(&persisted).Error)

			assert.Equal(t, "BRI", persisted.FromBank)
			assert.Equal(t, "100.5", persisted.AmountPaid)
			assert.NotZero(t, persisted.CreatedAt)
		})
	})
	t.Run("same transaction twice gets distinct anchors", func(t *testing.T) {
		first, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)
		second, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)

		assert.NotEqual(t, first.AnchorRef, second.AnchorRef)
		assert.Equal(t, first.Digest, second.Digest)
	})
	t.Run("invalid transaction", func(t *testing.T) {
		transaction := TestTransaction()
		transaction.FromBank = ""

		_, err := store.Anchor(ctx, secret, testIssuer, transaction)

		assert.EqualError(t, err, "fromBank is required")
	})
	t.Run("unfunded account", func(t *testing.T) {
		_, err := store.Anchor(ctx, []byte("unfunded"), testIssuer, TestTransaction())

		assert.ErrorIs(t, err, ErrLedgerPublishFailed)
		assert.ErrorIs(t, err, chain.ErrInsufficientFunds)
	})
}

func TestSQLStore_Verify(t *testing.T) {
	ctx := context.Background()
	store, ledger, secret := newTestStore(t)

	t.Run("matched", func(t *testing.T) {
		record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)
		matchedBefore := anchorCount("matched")

		result, err := store.Verify(ctx, record.AnchorRef)

		require.NoError(t, err)
		assert.True(t, result.Matched)
		assert.Equal(t, matchedBefore+1, anchorCount("matched"))
		assert.Equal(t, record.AnchorRef, result.Record.AnchorRef)
		assert.Equal(t, "BCA", result.Record.ToBank)
	})
	t.Run("tampered record", func(t *testing.T) {
		columns := map[string]string{
			"issuer_did":         "did:tdlaas:tst:0x09",
			"occurred_at":        "2024-05-01T10:15:01Z",
			"from_bank":          "BNI",
			"from_account":       "0012-3457",
			"to_bank":            "BNI",
			"to_account":         "9876-5433",
			"amount_received":    "1500001",
			"receiving_currency": "EUR",
			"amount_paid":        "100.51",
			"payment_currency":   "EUR",
			"payment_format":     "ACH",
		}
		for column, value := range columns {
			t.Run(column, func(t *testing.T) {
				record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
				require.NoError(t, err)
				require.NoError(t, store.db.Model(&Record{}).Where("anchor_ref = ?", record.AnchorRef).Update(column, value).Error)

				result, err := store.Verify(ctx, record.AnchorRef)

				assert.ErrorIs(t, err, ErrDigestMismatch)
				require.NotNil(t, result)
				assert.False(t, result.Matched)
				assert.Equal(t, record.AnchorRef, result.Record.AnchorRef)
			})
		}
	})
	t.Run("tampered digest column doesn't matter", func(t *testing.T) {
		record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)
		require.NoError(t, store.db.Model(&Record{}).Where("anchor_ref = ?", record.AnchorRef).Update("digest", "00").Error)

		result, err := store.Verify(ctx, record.AnchorRef)

		require.NoError(t, err)
		assert.True(t, result.Matched)
	})
	t.Run("anchor of another application", func(t *testing.T) {
		record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)
		otherRef, err := ledger.PublishData(ctx, secret, "other", []byte(`{"digest":"`+record.Digest+`","alg":"sha-256"}`))
		require.NoError(t, err)
		require.NoError(t, store.db.Model(&Record{}).Where("anchor_ref = ?", record.AnchorRef).Update("anchor_ref", otherRef).Error)

		result, err := store.Verify(ctx, otherRef)

		assert.ErrorIs(t, err, ErrDigestMismatch)
		assert.ErrorContains(t, err, `anchor is tagged "other"`)
		assert.False(t, result.Matched)
	})
	t.Run("anchor isn't a digest", func(t *testing.T) {
		record, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
		require.NoError(t, err)
		otherRef, err := ledger.PublishData(ctx, secret, "tdlaas", []byte(`{"digest":"zz","alg":"sha-256"}`))
		require.NoError(t, err)
		require.NoError(t, store.db.Model(&Record{}).Where("anchor_ref = ?", record.AnchorRef).Update("anchor_ref", otherRef).Error)

		_, err = store.Verify(ctx, otherRef)

		assert.ErrorIs(t, err, ErrDigestMismatch)
	})
	t.Run("unknown anchor", func(t *testing.T) {
		_, err := store.Verify(ctx, "0x00")

		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.NotErrorIs(t, err, ErrDigestMismatch)
	})
	t.Run("anchor without record", func(t *testing.T) {
		ref, err := ledger.PublishData(ctx, secret, "tdlaas", []byte(`{}`))
		require.NoError(t, err)

		_, err = store.Verify(ctx, ref)

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
	t.Run("ledger unavailable", func(t *testing.T) {
		client := chain.NewMockClient(gomock.NewController(t))
		client.EXPECT().GetData(ctx, "0x01").Return("", nil, chain.ErrUnavailable)
		unavailable := NewStore(store.db, client, "tdlaas")

		_, err := unavailable.Verify(ctx, "0x01")

		assert.ErrorIs(t, err, ErrLedgerUnavailable)
		assert.NotErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestSQLStore_List(t *testing.T) {
	ctx := context.Background()
	store, _, secret := newTestStore(t)
	otherIssuer := did.MustParseDID("did:tdlaas:tst:0x02")
	first, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
	require.NoError(t, err)
	second, err := store.Anchor(ctx, secret, testIssuer, TestTransaction())
	require.NoError(t, err)
	_, err = store.Anchor(ctx, secret, otherIssuer, TestTransaction())
	require.NoError(t, err)

	t.Run("by issuer", func(t *testing.T) {
		records, err := store.List(ctx, testIssuer)

		require.NoError(t, err)
		require.Len(t, records, 2)
		refs := []string{records[0].AnchorRef, records[1].AnchorRef}
		assert.ElementsMatch(t, []string{first.AnchorRef, second.AnchorRef}, refs)
	})
	t.Run("unknown issuer", func(t *testing.T) {
		records, err := store.List(ctx, did.MustParseDID("did:tdlaas:tst:0x03"))

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
