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

package main

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/tdlaas/tdlaas-node/cmd"
	"github.com/tdlaas/tdlaas-node/core"
)

const (
	serverOptionsFile = "docs/server_options.md"
	cliCommandsFile   = "docs/cli.md"
)

func generateDocs() {
	system := cmd.CreateSystem(func() {})
	writeFile(serverOptionsFile, func(file *os.File) error {
		generateServerOptions(system, file)
		return nil
	})
	writeFile(cliCommandsFile, func(file *os.File) error {
		_, _ = file.WriteString("# tdlaas CLI command reference\n")
		return GenerateCommandDocs(cmd.CreateCommand(system), file)
	})
}

func writeFile(fileName string, generator func(file *os.File) error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	if err = generator(file); err != nil {
		panic(err)
	}
	if err = file.Sync(); err != nil {
		panic(err)
	}
}

// generateServerOptions writes a table of all server options, grouped per engine.
func generateServerOptions(system *core.System, writer stringWriter) {
	serverCommand, _, err := cmd.CreateCommand(system).Find([]string{"server"})
	if err != nil {
		panic(err)
	}
	globalFlags := serverCommand.Flags()
	flags := map[string]*pflag.FlagSet{}
	system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.Injectable); ok {
			flagsForEngine := extractFlagsForEngine(strings.ToLower(m.Name()), globalFlags)
			if flagsForEngine.HasAvailableFlags() {
				flags[m.Name()] = flagsForEngine
			}
		}
	})
	// what's left are the server flags
	flags[""] = globalFlags

	sortedKeys := make([]string, 0, len(flags))
	for key := range flags {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	rows := make([]tableRow, 0)
	for _, key := range sortedKeys {
		if key != "" {
			rows = append(rows, tableRow{bold(key), "", ""})
		}
		rows = append(rows, flagsToSortedRows(flags[key])...)
	}
	printMarkdownTable(tableRow{"Key", "Default", "Description"}, rows, writer)
}

// extractFlagsForEngine moves the flags that start with the engine's config key to a new flag set.
// They're hidden in the input flag set.
func extractFlagsForEngine(configKey string, flagSet *pflag.FlagSet) *pflag.FlagSet {
	result := pflag.FlagSet{}
	flagSet.VisitAll(func(current *pflag.Flag) {
		if strings.HasPrefix(current.Name, configKey+".") {
			flagCopy := *current
			current.Hidden = true
			result.AddFlag(&flagCopy)
		}
	})
	return &result
}

func flagsToSortedRows(flags *pflag.FlagSet) []tableRow {
	rows := make([]tableRow, 0)
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		rows = append(rows, tableRow{f.Name, f.DefValue, f.Usage})
	})
	// Global properties (the ones without dots) go on top
	sort.Slice(rows, func(i, j int) bool {
		iNested := strings.Contains(rows[i][0], ".")
		jNested := strings.Contains(rows[j][0], ".")
		if iNested != jNested {
			return jNested
		}
		return rows[i][0] < rows[j][0]
	})
	return rows
}
