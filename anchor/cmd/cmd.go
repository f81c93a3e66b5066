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
	"github.com/tdlaas/tdlaas-node/anchor"
)

// FlagSet contains flags relevant for the anchor engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("anchor", pflag.ContinueOnError)
	defs := anchor.DefaultConfig()
	flagSet.String("anchor.tag", defs.Tag, "Tag attached to anchored digests on the ledger. Anchors with another tag never match.")
	return flagSet
}
