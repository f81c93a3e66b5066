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

package chain

import (
	"context"
	"errors"
	"math/big"

	"github.com/nuts-foundation/go-did/did"
)

// ErrNotFound is returned when a ledger output (DID document or data block) does not exist.
var ErrNotFound = errors.New("ledger output not found")

// ErrInsufficientFunds is returned when the publishing address can't pay for an output.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnavailable is returned when the ledger can't be reached.
var ErrUnavailable = errors.New("ledger unavailable")

// Client is the capability to read from and publish to the distributed ledger.
// Secrets identify the account that pays for publication; they never leave the client.
// Implementations are safe for concurrent use.
type Client interface {
	// NetworkHRP returns the human-readable part identifying the network, used in addresses and DIDs.
	NetworkHRP(ctx context.Context) (string, error)
	// DeriveAddress deterministically derives the account address for the given secret.
	DeriveAddress(ctx context.Context, secret []byte) (string, error)
	// Balance returns the spendable balance of the address.
	Balance(ctx context.Context, address string) (*big.Int, error)
	// PublishDIDDocument publishes an unpublished DID document (identified by PlaceholderDID) as a ledger output,
	// paid by the account of the secret. It returns the document as confirmed by the network, carrying its final DID.
	PublishDIDDocument(ctx context.Context, secret []byte, document did.Document) (*did.Document, error)
	// ResolveDID returns the DID document published under the given DID.
	// It returns ErrNotFound if the DID is unknown to the ledger.
	ResolveDID(ctx context.Context, id did.DID) (*did.Document, error)
	// PublishData attaches tagged data to the ledger, paid by the account of the secret. It returns the reference of the block holding it.
	PublishData(ctx context.Context, secret []byte, tag string, data []byte) (string, error)
	// GetData returns the tag and data of the block with the given reference.
	// It returns ErrNotFound if the reference is unknown to the ledger.
	GetData(ctx context.Context, ref string) (string, []byte, error)
}

// Faucet is implemented by ledgers that can fund addresses themselves (development and test networks).
type Faucet interface {
	RequestFunds(ctx context.Context, address string) error
}
