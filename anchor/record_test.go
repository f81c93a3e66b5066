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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/crypto/hash"
)

func TestCanonicalize(t *testing.T) {
	record, err := TestTransaction().toRecord("did:tdlaas:tst:0x01")
	require.NoError(t, err)
	record.AnchorRef = "0x02"
	record.Digest = "ignored"
	record.CreatedAt = 1700000000

	expected := `{"issuerDid":"did:tdlaas:tst:0x01","timestamp":"2024-05-01T10:15:00Z","fromBank":"BRI","fromAccount":"0012-3456",` +
		`"toBank":"BCA","toAccount":"9876-5432","amountReceived":"1500000","receivingCurrency":"IDR","amountPaid":"100.5",` +
		`"paymentCurrency":"USD","paymentFormat":"Wire"}`
	assert.Equal(t, expected, string(Canonicalize(record)))
	assert.Equal(t, hash.SHA256Sum([]byte(expected)), Digest(record))
	t.Run("anchor metadata is not digested", func(t *testing.T) {
		other := record
		other.AnchorRef = "0x03"
		other.Digest = ""
		other.CreatedAt = 0

		assert.Equal(t, Digest(record), Digest(other))
	})
	t.Run("every field is digested", func(t *testing.T) {
		mutations := map[string]func(r *Record){
			"issuerDid":         func(r *Record) { r.IssuerDID = "did:tdlaas:tst:0x09" },
			"timestamp":         func(r *Record) { r.OccurredAt = "2024-05-01T10:15:01Z" },
			"fromBank":          func(r *Record) { r.FromBank = "BNI" },
			"fromAccount":       func(r *Record) { r.FromAccount = "0012-3457" },
			"toBank":            func(r *Record) { r.ToBank = "BNI" },
			"toAccount":         func(r *Record) { r.ToAccount = "9876-5433" },
			"amountReceived":    func(r *Record) { r.AmountReceived = "1500001" },
			"receivingCurrency": func(r *Record) { r.ReceivingCurrency = "EUR" },
			"amountPaid":        func(r *Record) { r.AmountPaid = "100.51" },
			"paymentCurrency":   func(r *Record) { r.PaymentCurrency = "EUR" },
			"paymentFormat":     func(r *Record) { r.PaymentFormat = "ACH" },
		}
		for field, mutate := range mutations {
			mutated := record
			mutate(&mutated)
			assert.False(t, Digest(record).Equals(Digest(mutated)), field)
		}
	})
}

func TestTransaction_Validate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, TestTransaction().Validate())
	})
	t.Run("amounts are normalized", func(t *testing.T) {
		transaction := TestTransaction()
		transaction.AmountReceived = "1e3"
		transaction.AmountPaid = "0100.500"

		record, err := transaction.toRecord("did:tdlaas:tst:0x01")

		require.NoError(t, err)
		assert.Equal(t, "1000", record.AmountReceived)
		assert.Equal(t, "100.5", record.AmountPaid)
	})
	t.Run("amounts as JSON numbers", func(t *testing.T) {
		var transaction Transaction
		require.NoError(t, json.Unmarshal([]byte(`{"amountReceived":1500000,"amountPaid":100.50}`), &transaction))

		assert.Equal(t, json.Number("1500000"), transaction.AmountReceived)
		assert.Equal(t, json.Number("100.50"), transaction.AmountPaid)
	})
	testCases := []struct {
		name     string
		mutate   func(transaction *Transaction)
		expected string
	}{
		{"missing field", func(tx *Transaction) { tx.ToBank = "" }, "toBank is required"},
		{"missing amount", func(tx *Transaction) { tx.AmountPaid = "" }, "amountPaid is required"},
		{"invalid timestamp", func(tx *Transaction) { tx.Timestamp = "yesterday" }, "timestamp must be an RFC3339 time"},
		{"invalid amount", func(tx *Transaction) { tx.AmountReceived = "lots" }, "amountReceived is not a decimal"},
		{"negative amount", func(tx *Transaction) { tx.AmountPaid = "-1" }, "amountPaid must not be negative"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			transaction := TestTransaction()
			testCase.mutate(&transaction)

			err := transaction.Validate()

			assert.ErrorContains(t, err, testCase.expected)
		})
	}
}
