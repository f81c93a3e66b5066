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
	"time"

	"github.com/shopspring/decimal"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto/hash"
)

// Transaction holds the business fields of a payment between two bank accounts.
type Transaction struct {
	// Timestamp is the RFC3339 time of the transaction. It is kept as given.
	Timestamp         string      `json:"timestamp"`
	FromBank          string      `json:"fromBank"`
	FromAccount       string      `json:"fromAccount"`
	ToBank            string      `json:"toBank"`
	ToAccount         string      `json:"toAccount"`
	AmountReceived    json.Number `json:"amountReceived"`
	ReceivingCurrency string      `json:"receivingCurrency"`
	AmountPaid        json.Number `json:"amountPaid"`
	PaymentCurrency   string      `json:"paymentCurrency"`
	PaymentFormat     string      `json:"paymentFormat"`
}

// Record is a transaction as persisted, together with its issuer and ledger anchor.
type Record struct {
	AnchorRef         string `gorm:"column:anchor_ref;primaryKey" json:"anchorRef"`
	IssuerDID         string `gorm:"column:issuer_did" json:"issuerDid"`
	OccurredAt        string `gorm:"column:occurred_at" json:"timestamp"`
	FromBank          string `gorm:"column:from_bank" json:"fromBank"`
	FromAccount       string `gorm:"column:from_account" json:"fromAccount"`
	ToBank            string `gorm:"column:to_bank" json:"toBank"`
	ToAccount         string `gorm:"column:to_account" json:"toAccount"`
	AmountReceived    string `gorm:"column:amount_received" json:"amountReceived"`
	ReceivingCurrency string `gorm:"column:receiving_currency" json:"receivingCurrency"`
	AmountPaid        string `gorm:"column:amount_paid" json:"amountPaid"`
	PaymentCurrency   string `gorm:"column:payment_currency" json:"paymentCurrency"`
	PaymentFormat     string `gorm:"column:payment_format" json:"paymentFormat"`
	// Digest is informational: verification always recomputes it.
	Digest    string `gorm:"column:digest" json:"digest"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for this DTO.
func (Record) TableName() string {
	return "transaction_record"
}

// canonicalRecord fixes the order of the digested fields.
type canonicalRecord struct {
	IssuerDID         string `json:"issuerDid"`
	Timestamp         string `json:"timestamp"`
	FromBank          string `json:"fromBank"`
	FromAccount       string `json:"fromAccount"`
	ToBank            string `json:"toBank"`
	ToAccount         string `json:"toAccount"`
	AmountReceived    string `json:"amountReceived"`
	ReceivingCurrency string `json:"receivingCurrency"`
	AmountPaid        string `json:"amountPaid"`
	PaymentCurrency   string `json:"paymentCurrency"`
	PaymentFormat     string `json:"paymentFormat"`
}

// Canonicalize returns the deterministic encoding of the digested fields of the record.
// The anchor reference, digest and creation time are not part of it.
func Canonicalize(record Record) []byte {
	data, _ := json.Marshal(canonicalRecord{
		IssuerDID:         record.IssuerDID,
		Timestamp:         record.OccurredAt,
		FromBank:          record.FromBank,
		FromAccount:       record.FromAccount,
		ToBank:            record.ToBank,
		ToAccount:         record.ToAccount,
		AmountReceived:    record.AmountReceived,
		ReceivingCurrency: record.ReceivingCurrency,
		AmountPaid:        record.AmountPaid,
		PaymentCurrency:   record.PaymentCurrency,
		PaymentFormat:     record.PaymentFormat,
	})
	return data
}

// Digest returns the SHA-256 digest of the canonical encoding of the record.
func Digest(record Record) hash.SHA256Hash {
	return hash.SHA256Sum(Canonicalize(record))
}

// Validate checks that all fields are present, the timestamp is an RFC3339 time and amounts are non-negative decimals.
func (t Transaction) Validate() error {
	_, err := t.toRecord("")
	return err
}

// toRecord validates the transaction and converts it to an unanchored record of the issuer.
// Amounts are normalized, so equal amounts always yield the same digest.
func (t Transaction) toRecord(issuer string) (Record, error) {
	required := []struct{ name, value string }{
		{"timestamp", t.Timestamp},
		{"fromBank", t.FromBank},
		{"fromAccount", t.FromAccount},
		{"toBank", t.ToBank},
		{"toAccount", t.ToAccount},
		{"receivingCurrency", t.ReceivingCurrency},
		{"paymentCurrency", t.PaymentCurrency},
		{"paymentFormat", t.PaymentFormat},
	}
	for _, field := range required {
		if len(field.value) == 0 {
			return Record{}, core.InvalidInputError("%s is required", field.name)
		}
	}
	if _, err := time.Parse(time.RFC3339, t.Timestamp); err != nil {
		return Record{}, core.InvalidInputError("timestamp must be an RFC3339 time: %w", err)
	}
	amountReceived, err := parseAmount("amountReceived", t.AmountReceived)
	if err != nil {
		return Record{}, err
	}
	amountPaid, err := parseAmount("amountPaid", t.AmountPaid)
	if err != nil {
		return Record{}, err
	}
	return Record{
		IssuerDID:         issuer,
		OccurredAt:        t.Timestamp,
		FromBank:          t.FromBank,
		FromAccount:       t.FromAccount,
		ToBank:            t.ToBank,
		ToAccount:         t.ToAccount,
		AmountReceived:    amountReceived,
		ReceivingCurrency: t.ReceivingCurrency,
		AmountPaid:        amountPaid,
		PaymentCurrency:   t.PaymentCurrency,
		PaymentFormat:     t.PaymentFormat,
	}, nil
}

func parseAmount(name string, amount json.Number) (string, error) {
	if len(amount) == 0 {
		return "", core.InvalidInputError("%s is required", name)
	}
	value, err := decimal.NewFromString(amount.String())
	if err != nil {
		return "", core.InvalidInputError("%s is not a decimal: %w", name, err)
	}
	if value.IsNegative() {
		return "", core.InvalidInputError("%s must not be negative", name)
	}
	return value.String(), nil
}
