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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/ledger/memory"
)

func TestEngine_Configure(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		engine := New()

		err := engine.Configure(core.TestServerConfig(core.ServerConfig{}))

		require.NoError(t, err)
		assert.IsType(t, &memory.Ledger{}, engine.Client())
		assert.NotNil(t, engine.Faucet())
		hrp, _ := engine.Client().NetworkHRP(context.Background())
		assert.Equal(t, "tdl", hrp)
	})
	t.Run("memory in strict mode", func(t *testing.T) {
		engine := New()

		err := engine.Configure(core.ServerConfig{Strictmode: true})

		assert.EqualError(t, err, "in-memory ledger is not allowed in strict mode")
	})
	t.Run("memory without HRP", func(t *testing.T) {
		engine := New()
		engine.config.HRP = ""

		err := engine.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "ledger.hrp must be set for the in-memory ledger")
	})
	t.Run("evm without RPC", func(t *testing.T) {
		engine := New()
		engine.config.Type = EVMType

		err := engine.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "ledger.evm.rpc must be set for the evm ledger")
	})
	t.Run("unsupported type", func(t *testing.T) {
		engine := New()
		engine.config.Type = "iota"

		err := engine.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "unsupported ledger type: iota")
	})
}

func TestEngine_Lifecycle(t *testing.T) {
	engine := New()
	require.NoError(t, engine.Configure(core.TestServerConfig(core.ServerConfig{})))

	assert.NoError(t, engine.Start())
	assert.NoError(t, engine.Shutdown())
}

func TestEngine_Name(t *testing.T) {
	assert.Equal(t, "Ledger", New().Name())
}
