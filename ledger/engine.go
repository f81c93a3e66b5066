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

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/evm"
	"github.com/tdlaas/tdlaas-node/ledger/log"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
)

const moduleName = "Ledger"

const dialTimeout = 10 * time.Second

var _ core.Injectable = (*Engine)(nil)
var _ core.Configurable = (*Engine)(nil)
var _ core.Runnable = (*Engine)(nil)

// Engine selects and holds the ledger backend.
type Engine struct {
	config Config
	client chain.Client
}

// New creates a new ledger engine.
func New() *Engine {
	return &Engine{config: DefaultConfig()}
}

func (e *Engine) Name() string {
	return moduleName
}

func (e *Engine) Config() interface{} {
	return &e.config
}

// Client returns the configured ledger client. It is available after Configure.
func (e *Engine) Client() chain.Client {
	return e.client
}

// Faucet returns the ledger's own faucet, or nil if the ledger can't fund addresses itself.
func (e *Engine) Faucet() chain.Faucet {
	if faucet, ok := e.client.(chain.Faucet); ok {
		return faucet
	}
	return nil
}

func (e *Engine) Configure(config core.ServerConfig) error {
	switch e.config.Type {
	case MemoryType:
		if config.Strictmode {
			return errors.New("in-memory ledger is not allowed in strict mode")
		}
		if len(e.config.HRP) == 0 {
			return errors.New("ledger.hrp must be set for the in-memory ledger")
		}
		log.Logger().Warnf("Using in-memory ledger (network: %s), published DIDs and data are lost on shutdown", e.config.HRP)
		e.client = memory.New(e.config.HRP)
	case EVMType:
		if len(e.config.EVM.RPC) == 0 {
			return errors.New("ledger.evm.rpc must be set for the evm ledger")
		}
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		client, err := evm.Dial(ctx, e.config.EVM)
		if err != nil {
			return err
		}
		e.client = client
	default:
		return fmt.Errorf("unsupported ledger type: %s", e.config.Type)
	}
	return nil
}

func (e *Engine) Start() error {
	hrp, err := e.client.NetworkHRP(context.Background())
	if err != nil {
		return fmt.Errorf("unable to query ledger network: %w", err)
	}
	log.Logger().Infof("Connected to ledger network %s", hrp)
	return nil
}

func (e *Engine) Shutdown() error {
	if closer, ok := e.client.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
