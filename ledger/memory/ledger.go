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

// Package memory provides an in-process ledger for development and tests.
// Outputs live as long as the process; every publication costs a fixed fee, so addresses must be funded first.
package memory

import (
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/log"
	"golang.org/x/crypto/blake2b"
)

var _ chain.Client = (*Ledger)(nil)
var _ chain.Faucet = (*Ledger)(nil)

// OutputFee is the amount deducted from the paying address for every published output.
var OutputFee = big.NewInt(1_000_000)

// FaucetAmount is the amount credited by RequestFunds.
var FaucetAmount = big.NewInt(1_000_000_000)

const addressSeparator = "1"

// Ledger is an in-memory ledger.
type Ledger struct {
	hrp      string
	mux      sync.RWMutex
	balances map[string]*big.Int
	outputs  map[string]chain.Output
	sequence uint64
}

// New creates an empty in-memory ledger for the network with the given HRP.
func New(hrp string) *Ledger {
	return &Ledger{
		hrp:      hrp,
		balances: map[string]*big.Int{},
		outputs:  map[string]chain.Output{},
	}
}

func (l *Ledger) NetworkHRP(_ context.Context) (string, error) {
	return l.hrp, nil
}

// DeriveAddress derives an Ed25519 key pair from the secret and encodes the BLAKE2b-256 hash of its public key as address.
func (l *Ledger) DeriveAddress(_ context.Context, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("can't derive address: %w", core.InvalidInputError("empty secret"))
	}
	seed := blake2b.Sum256(secret)
	publicKey := ed25519.NewKeyFromSeed(seed[:]).Public().(ed25519.PublicKey)
	hash := blake2b.Sum256(publicKey)
	return l.hrp + addressSeparator + base58.Encode(hash[:]), nil
}

func (l *Ledger) Balance(_ context.Context, address string) (*big.Int, error) {
	if err := l.validateAddress(address); err != nil {
		return nil, err
	}
	l.mux.RLock()
	defer l.mux.RUnlock()
	if balance, ok := l.balances[address]; ok {
		return new(big.Int).Set(balance), nil
	}
	return big.NewInt(0), nil
}

// RequestFunds credits FaucetAmount to the address.
func (l *Ledger) RequestFunds(_ context.Context, address string) error {
	if err := l.validateAddress(address); err != nil {
		return err
	}
	l.mux.Lock()
	defer l.mux.Unlock()
	balance, ok := l.balances[address]
	if !ok {
		balance = big.NewInt(0)
		l.balances[address] = balance
	}
	balance.Add(balance, FaucetAmount)
	log.Logger().WithField(core.LogFieldAddress, address).Debug("Funded address")
	return nil
}

func (l *Ledger) PublishDIDDocument(ctx context.Context, secret []byte, document did.Document) (*did.Document, error) {
	if !document.ID.Equals(chain.PlaceholderDID(l.hrp)) {
		return nil, fmt.Errorf("document must be identified by the placeholder DID, got %s", document.ID)
	}
	output, err := chain.DIDDocumentOutput(document)
	if err != nil {
		return nil, err
	}
	tag, err := l.publish(ctx, secret, output)
	if err != nil {
		return nil, err
	}
	return chain.AssignDID(document, chain.NewDID(l.hrp, tag))
}

func (l *Ledger) ResolveDID(_ context.Context, id did.DID) (*did.Document, error) {
	hrp, tag, err := chain.ParseDID(id)
	if err != nil {
		return nil, err
	}
	if hrp != l.hrp {
		return nil, fmt.Errorf("DID of network %s can't be resolved on network %s: %w", hrp, l.hrp, chain.ErrNotFound)
	}
	l.mux.RLock()
	output, ok := l.outputs[tag]
	l.mux.RUnlock()
	if !ok {
		return nil, chain.ErrNotFound
	}
	return chain.DocumentFromOutput(&output, id)
}

func (l *Ledger) PublishData(ctx context.Context, secret []byte, tag string, data []byte) (string, error) {
	return l.publish(ctx, secret, chain.Output{Kind: chain.DataOutput, Tag: tag, Data: data})
}

func (l *Ledger) GetData(_ context.Context, ref string) (string, []byte, error) {
	l.mux.RLock()
	defer l.mux.RUnlock()
	output, ok := l.outputs[ref]
	if !ok || output.Kind != chain.DataOutput {
		return "", nil, chain.ErrNotFound
	}
	return output.Tag, append([]byte(nil), output.Data...), nil
}

// publish stores the output after charging the fee to the address of the secret, returning the output ID.
func (l *Ledger) publish(ctx context.Context, secret []byte, output chain.Output) (string, error) {
	address, err := l.DeriveAddress(ctx, secret)
	if err != nil {
		return "", err
	}
	l.mux.Lock()
	defer l.mux.Unlock()
	balance, ok := l.balances[address]
	if !ok || balance.Cmp(OutputFee) < 0 {
		return "", fmt.Errorf("can't publish output from %s: %w", address, chain.ErrInsufficientFunds)
	}
	balance.Sub(balance, OutputFee)

	l.sequence++
	hash, _ := blake2b.New256(nil)
	_ = binary.Write(hash, binary.BigEndian, l.sequence)
	hash.Write(output.Bytes())
	id := "0x" + hex.EncodeToString(hash.Sum(nil))
	l.outputs[id] = output
	log.Logger().
		WithField(core.LogFieldAddress, address).
		Debugf("Published %s output %s", output.Kind, id)
	return id, nil
}

func (l *Ledger) validateAddress(address string) error {
	prefix := l.hrp + addressSeparator
	if !strings.HasPrefix(address, prefix) {
		return core.InvalidInputError("address %s does not belong to network %s", address, l.hrp)
	}
	if _, err := base58.Decode(strings.TrimPrefix(address, prefix)); err != nil {
		return core.InvalidInputError("invalid address %s: %s", address, err)
	}
	return nil
}
