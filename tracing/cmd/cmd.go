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
	"github.com/tdlaas/tdlaas-node/tracing"
)

// FlagSet contains flags relevant for the tracing engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("tracing", pflag.ContinueOnError)
	defs := tracing.DefaultConfig()
	flagSet.String("tracing.endpoint", defs.Endpoint, "OTLP HTTP collector (host:port) spans and logs are exported to. Empty disables tracing.")
	flagSet.Bool("tracing.insecure", defs.Insecure, "Connect to the collector without TLS.")
	flagSet.String("tracing.servicename", defs.ServiceName, "Service name reported to the collector. Defaults to tdlaas-node.")
	return flagSet
}
