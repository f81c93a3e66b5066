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

	"github.com/nuts-foundation/go-did/did"
)

// ErrLedgerPublishFailed is returned when the digest of a record can't be published on the ledger.
var ErrLedgerPublishFailed = errors.New("ledger publish failed")

// ErrLedgerUnavailable is returned when the anchored digest can't be fetched from the ledger.
var ErrLedgerUnavailable = errors.New("ledger unavailable")

// ErrRecordNotFound is returned when no record or no ledger anchor exists for an anchor reference.
var ErrRecordNotFound = errors.New("record not found")

// ErrDigestMismatch is returned when the digest of a persisted record differs from the digest anchored on the ledger.
// Either the record or the anchor has been tampered with.
var ErrDigestMismatch = errors.New("digest mismatch")

// VerifiableDataType is the type of the credential issued over an anchored record.
const VerifiableDataType = "VerifiableData"

// Verification is the outcome of checking a persisted record against its ledger anchor.
type Verification struct {
	Record  Record
	Matched bool
}

// Store anchors records on the ledger and persists them, keyed by the ledger reference.
type Store interface {
	// Anchor publishes the digest of the transaction, paid by the account of the secret, and persists the record.
	// It fails with ErrLedgerPublishFailed if the digest can't be published.
	Anchor(ctx context.Context, secret []byte, issuer did.DID, transaction Transaction) (*Record, error)
	// Verify recomputes the digest of the persisted record and compares it to the anchored digest.
	// On mismatch, it returns the verification (with Matched false) together with ErrDigestMismatch.
	// It fails with ErrRecordNotFound or ErrLedgerUnavailable otherwise.
	Verify(ctx context.Context, anchorRef string) (*Verification, error)
	// List returns the records of the issuer, oldest first. Records are not verified.
	List(ctx context.Context, issuer did.DID) ([]Record, error)
}

// Receipt is returned when a transaction has been anchored.
type Receipt struct {
	Record Record
	// CredentialJWT is the VerifiableData credential the issuer issued over the anchored digest.
	CredentialJWT string
}

// Anchorer anchors transactions on behalf of the issuer identity.
type Anchorer interface {
	// StoreTransaction anchors the transaction from the issuer identity and issues a VerifiableData credential over it.
	StoreTransaction(ctx context.Context, transaction Transaction) (*Receipt, error)
	// Verify is Store.Verify.
	Verify(ctx context.Context, anchorRef string) (*Verification, error)
	// List is Store.List.
	List(ctx context.Context, issuer did.DID) ([]Record, error)
}

// AnchoredEvent is published when a record is anchored.
type AnchoredEvent struct {
	AnchorRef    string `json:"anchorRef"`
	IssuerDID    string `json:"issuerDid"`
	Digest       string `json:"digest"`
	CredentialID string `json:"credentialId"`
}
