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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
)

// TestLedger provides an in-memory ledger to the VDR in tests.
type TestLedger struct {
	*memory.Ledger
}

func (t TestLedger) Client() chain.Client {
	if t.Ledger == nil {
		return nil
	}
	return t.Ledger
}

func (t TestLedger) Faucet() chain.Faucet {
	return t.Ledger
}

// NewTestVDR returns a configured VDR on an in-memory ledger, with an issuer and holder identity.
func NewTestVDR(t testing.TB) (*Module, *memory.Ledger, crypto.KeyStore) {
	ledger := memory.New("tst")
	keyStore := crypto.NewMemoryKeyStore()
	instance := New(TestLedger{Ledger: ledger}, keyStore)
	instance.config.Funding.Interval = time.Millisecond
	instance.config.Funding.Attempts = 1
	instance.config.Identities = map[string]IdentityConfig{
		IssuerActor: {Secret: "issuer-secret"},
		HolderActor: {Secret: "holder-secret"},
	}
	require.NoError(t, instance.Configure(core.TestServerConfig(core.ServerConfig{})))
	return instance, ledger, keyStore
}
