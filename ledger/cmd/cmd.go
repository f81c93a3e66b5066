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

package cmd

import (
	"github.com/spf13/pflag"
	"github.com/tdlaas/tdlaas-node/ledger"
)

// FlagSet contains flags relevant for the ledger engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	defs := ledger.DefaultConfig()
	flagSet.String("ledger.type", defs.Type, "Ledger backend DIDs and anchored data are published on: 'memory' (in-process, for development) or 'evm'. The in-memory ledger can't be used in strict mode.")
	flagSet.String("ledger.hrp", defs.HRP, "Network prefix of addresses and DIDs on the in-memory ledger.")
	flagSet.String("ledger.evm.rpc", defs.EVM.RPC, "JSON-RPC endpoint of the EVM node, e.g. 'https://rpc.example.com'.")
	flagSet.Duration("ledger.evm.receipttimeout", defs.EVM.ReceiptTimeout, "Maximum time to wait for a published transaction to be mined.")
	flagSet.Duration("ledger.evm.pollinterval", defs.EVM.PollInterval, "Interval at which the node is polled for the receipt of a published transaction.")
	return flagSet
}
