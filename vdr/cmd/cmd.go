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
	"github.com/tdlaas/tdlaas-node/vdr"
)

// FlagSet contains flags relevant for the VDR engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("vdr", pflag.ContinueOnError)
	defs := vdr.DefaultConfig()
	flagSet.String("vdr.funding.faucet", defs.Funding.Faucet, "URL of the faucet that funds new ledger addresses. "+
		"If not set, the ledger's own faucet is used (only available on the in-memory ledger).")
	flagSet.Duration("vdr.funding.interval", defs.Funding.Interval, "Interval between balance checks after funds were requested.")
	flagSet.Uint("vdr.funding.attempts", defs.Funding.Attempts, "Number of balance checks after funds were requested, before giving up.")
	flagSet.Duration("vdr.funding.timeout", defs.Funding.Timeout, "Timeout of requests to the faucet.")
	return flagSet
}
