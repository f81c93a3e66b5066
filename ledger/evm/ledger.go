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

// Package evm provides a ledger on EVM-compatible chains.
// Outputs are written as calldata of a zero-value transaction from the paying account to itself;
// the transaction hash is the output reference.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/log"
)

var _ chain.Client = (*Ledger)(nil)

// ErrTransactionFailed is returned when a published transaction is mined but reverted.
var ErrTransactionFailed = errors.New("transaction failed")

// Config holds the configuration of the EVM ledger.
type Config struct {
	// RPC is the JSON-RPC endpoint of the node.
	RPC string `koanf:"rpc"`
	// ReceiptTimeout is the maximum time to wait for a published transaction to be mined.
	ReceiptTimeout time.Duration `koanf:"receipttimeout"`
	// PollInterval is the interval at which the receipt of a published transaction is requested.
	PollInterval time.Duration `koanf:"pollinterval"`
}

// DefaultConfig returns the default EVM ledger configuration.
func DefaultConfig() Config {
	return Config{
		ReceiptTimeout: 2 * time.Minute,
		PollInterval:   2 * time.Second,
	}
}

// RPC is the part of the Ethereum JSON-RPC API the ledger uses. It is implemented by ethclient.Client.
type RPC interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	Close()
}

// Ledger is a chain.Client on an EVM chain.
type Ledger struct {
	rpc    RPC
	config Config
	// publishMux serializes publications, so pending nonces don't collide
	publishMux sync.Mutex
	chainMux   sync.Mutex
	chainID    *big.Int
}

// Dial connects to the JSON-RPC endpoint in the configuration.
func Dial(ctx context.Context, config Config) (*Ledger, error) {
	client, err := ethclient.DialContext(ctx, config.RPC)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to EVM node: %w", err)
	}
	return New(client, config), nil
}

// New creates a Ledger using the given RPC client.
func New(rpc RPC, config Config) *Ledger {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultConfig().PollInterval
	}
	return &Ledger{rpc: rpc, config: config}
}

// Close closes the RPC connection.
func (l *Ledger) Close() {
	l.rpc.Close()
}

// NetworkHRP returns "evm" followed by the chain ID.
func (l *Ledger) NetworkHRP(ctx context.Context) (string, error) {
	chainID, err := l.getChainID(ctx)
	if err != nil {
		return "", err
	}
	return "evm" + chainID.String(), nil
}

// DeriveAddress uses the Keccak-256 hash of the secret as secp256k1 private key and returns its account address.
func (l *Ledger) DeriveAddress(_ context.Context, secret []byte) (string, error) {
	key, err := privateKey(secret)
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

func (l *Ledger) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, core.InvalidInputError("invalid EVM address: %s", address)
	}
	balance, err := l.rpc.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, errors.Join(chain.ErrUnavailable, err)
	}
	return balance, nil
}

func (l *Ledger) PublishDIDDocument(ctx context.Context, secret []byte, document did.Document) (*did.Document, error) {
	hrp, err := l.NetworkHRP(ctx)
	if err != nil {
		return nil, err
	}
	if !document.ID.Equals(chain.PlaceholderDID(hrp)) {
		return nil, fmt.Errorf("document must be identified by the placeholder DID, got %s", document.ID)
	}
	output, err := chain.DIDDocumentOutput(document)
	if err != nil {
		return nil, err
	}
	ref, err := l.publish(ctx, secret, output)
	if err != nil {
		return nil, err
	}
	return chain.AssignDID(document, chain.NewDID(hrp, ref))
}

func (l *Ledger) ResolveDID(ctx context.Context, id did.DID) (*did.Document, error) {
	hrp, ref, err := chain.ParseDID(id)
	if err != nil {
		return nil, err
	}
	ownHRP, err := l.NetworkHRP(ctx)
	if err != nil {
		return nil, err
	}
	if hrp != ownHRP {
		return nil, fmt.Errorf("DID of network %s can't be resolved on network %s: %w", hrp, ownHRP, chain.ErrNotFound)
	}
	output, err := l.getOutput(ctx, ref)
	if err != nil {
		return nil, err
	}
	return chain.DocumentFromOutput(output, id)
}

func (l *Ledger) PublishData(ctx context.Context, secret []byte, tag string, data []byte) (string, error) {
	return l.publish(ctx, secret, chain.Output{Kind: chain.DataOutput, Tag: tag, Data: data})
}

func (l *Ledger) GetData(ctx context.Context, ref string) (string, []byte, error) {
	output, err := l.getOutput(ctx, ref)
	if err != nil {
		return "", nil, err
	}
	if output.Kind != chain.DataOutput {
		return "", nil, chain.ErrNotFound
	}
	return output.Tag, output.Data, nil
}

func (l *Ledger) getOutput(ctx context.Context, ref string) (*chain.Output, error) {
	hash, err := hexutil.Decode(ref)
	if err != nil || len(hash) != common.HashLength {
		return nil, chain.ErrNotFound
	}
	tx, pending, err := l.rpc.TransactionByHash(ctx, common.BytesToHash(hash))
	if errors.Is(err, ethereum.NotFound) || (err == nil && pending) {
		return nil, chain.ErrNotFound
	} else if err != nil {
		return nil, errors.Join(chain.ErrUnavailable, err)
	}
	return chain.ParseOutput(tx.Data())
}

// publish sends the output as transaction and waits until it is mined.
func (l *Ledger) publish(ctx context.Context, secret []byte, output chain.Output) (string, error) {
	key, err := privateKey(secret)
	if err != nil {
		return "", err
	}
	chainID, err := l.getChainID(ctx)
	if err != nil {
		return "", err
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	data := output.Bytes()

	l.publishMux.Lock()
	defer l.publishMux.Unlock()
	nonce, err := l.rpc.PendingNonceAt(ctx, from)
	if err != nil {
		return "", errors.Join(chain.ErrUnavailable, err)
	}
	gasPrice, err := l.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return "", errors.Join(chain.ErrUnavailable, err)
	}
	gas, err := l.rpc.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &from, GasPrice: gasPrice, Data: data})
	if err != nil {
		return "", sendError(err)
	}
	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &from,
		Value:    big.NewInt(0),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	}), types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return "", fmt.Errorf("unable to sign transaction: %w", err)
	}
	if err = l.rpc.SendTransaction(ctx, tx); err != nil {
		return "", sendError(err)
	}
	log.Logger().
		WithField(core.LogFieldAddress, from.Hex()).
		Debugf("Sent %s output transaction %s, waiting for receipt", output.Kind, tx.Hash().Hex())
	if err = l.waitForReceipt(ctx, tx.Hash()); err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

func (l *Ledger) waitForReceipt(ctx context.Context, hash common.Hash) error {
	attempts := uint(l.config.ReceiptTimeout/l.config.PollInterval) + 1
	receipt, err := retry.DoWithData(func() (*types.Receipt, error) {
		return l.rpc.TransactionReceipt(ctx, hash)
	},
		retry.Attempts(attempts),
		retry.Delay(l.config.PollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ethereum.NotFound)
		}),
	)
	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("transaction %s not mined within %s: %w", hash.Hex(), l.config.ReceiptTimeout, chain.ErrUnavailable)
	} else if err != nil {
		return errors.Join(chain.ErrUnavailable, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s", ErrTransactionFailed, hash.Hex())
	}
	return nil
}

func (l *Ledger) getChainID(ctx context.Context) (*big.Int, error) {
	l.chainMux.Lock()
	defer l.chainMux.Unlock()
	if l.chainID != nil {
		return l.chainID, nil
	}
	chainID, err := l.rpc.ChainID(ctx)
	if err != nil {
		return nil, errors.Join(chain.ErrUnavailable, err)
	}
	l.chainID = chainID
	return chainID, nil
}

func privateKey(secret []byte) (*ecdsa.PrivateKey, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("can't derive key: %w", core.InvalidInputError("empty secret"))
	}
	return crypto.ToECDSA(crypto.Keccak256(secret))
}

// sendError maps node errors on transaction submission.
func sendError(err error) error {
	if strings.Contains(err.Error(), "insufficient funds") {
		return errors.Join(chain.ErrInsufficientFunds, err)
	}
	return errors.Join(chain.ErrUnavailable, err)
}
