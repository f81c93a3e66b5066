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

package vcr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
	"github.com/tdlaas/tdlaas-node/storage"
	"github.com/tdlaas/tdlaas-node/vdr"
)

// TestContext holds a configured VCR with published issuer and holder identities.
type TestContext struct {
	VCR      *Module
	VDR      *vdr.Module
	Ledger   *memory.Ledger
	KeyStore crypto.KeyStore
	Storage  storage.Engine
	Issuer   vdr.Identity
	Holder   vdr.Identity
}

// NewTestContext creates a VCR on an in-memory ledger and session database.
func NewTestContext(t testing.TB) TestContext {
	vdrInstance, ledger, keyStore := vdr.NewTestVDR(t)
	storageEngine := storage.NewTestStorageEngine(t)
	instance := New(storageEngine, vdrInstance, keyStore)
	require.NoError(t, instance.Configure(core.TestServerConfig(core.ServerConfig{})))
	issuer, err := vdrInstance.Identities().Get(context.Background(), vdr.IssuerActor)
	require.NoError(t, err)
	holder, err := vdrInstance.Identities().Get(context.Background(), vdr.HolderActor)
	require.NoError(t, err)
	return TestContext{
		VCR:      instance,
		VDR:      vdrInstance,
		Ledger:   ledger,
		KeyStore: keyStore,
		Storage:  storageEngine,
		Issuer:   *issuer,
		Holder:   *holder,
	}
}
