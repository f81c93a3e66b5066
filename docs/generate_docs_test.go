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
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/tdlaas/tdlaas-node/cmd"
)

func Test_generateServerOptions(t *testing.T) {
	buf := new(strings.Builder)

	generateServerOptions(cmd.CreateSystem(func() {}), buf)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "| Key | Default | Description |", lines[0])
	assert.Equal(t, "| --- | --- | --- |", lines[1])
	// server options come first
	assert.True(t, strings.HasPrefix(lines[2], "| configfile | tdlaas.yaml |"), lines[2])
	assert.Contains(t, buf.String(), "| **Anchor** |  |  |")
	assert.Contains(t, buf.String(), "| anchor.tag | tdlaas |")
	assert.Contains(t, buf.String(), "| **VCR** |  |  |")
	assert.Contains(t, buf.String(), "| vcr.challenge.ttl | 5m0s |")
}

func Test_extractFlagsForEngine(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("vdr.funding.faucet", "", "faucet")
	flagSet.String("vcr.baseurl", "", "base URL")
	flagSet.String("verbosity", "info", "level")

	result := extractFlagsForEngine("vdr", flagSet)

	assert.NotNil(t, result.Lookup("vdr.funding.faucet"))
	assert.Nil(t, result.Lookup("vcr.baseurl"))
	assert.True(t, flagSet.Lookup("vdr.funding.faucet").Hidden)
	assert.False(t, flagSet.Lookup("verbosity").Hidden)
}

func Test_flagsToSortedRows(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("http.address", ":1323", "address")
	flagSet.String("verbosity", "info", "level")
	flagSet.String("datadir", "./data", "dir")

	rows := flagsToSortedRows(flagSet)

	assert.Equal(t, []tableRow{
		{"datadir", "./data", "dir"},
		{"verbosity", "info", "level"},
		{"http.address", ":1323", "address"},
	}, rows)
}

func Test_printMarkdownTable(t *testing.T) {
	buf := new(strings.Builder)

	printMarkdownTable(tableRow{"Key", "Default", "Description"}, []tableRow{{"a|b", "", "multi\nline"}}, buf)

	assert.Equal(t, "| Key | Default | Description |\n| --- | --- | --- |\n| a\\|b |  | multi line |\n", buf.String())
}

func TestGenerateCommandDocs(t *testing.T) {
	buf := new(strings.Builder)

	err := GenerateCommandDocs(cmd.CreateCommand(cmd.CreateSystem(func() {})), buf)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "## tdlaas server")
	assert.Contains(t, buf.String(), "## tdlaas config")
	assert.Contains(t, buf.String(), "--vcr.baseurl")
}

func Test_fixCopyrightNotice(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		fixed, changed := fixCopyrightNotice("package main\n")

		assert.True(t, changed)
		assert.True(t, strings.HasPrefix(fixed, "/*\n * "+yearRegexReplacement))
		assert.True(t, strings.HasSuffix(fixed, "package main\n"))
	})
	t.Run("outdated year", func(t *testing.T) {
		fixed, changed := fixCopyrightNotice("/*\n * Copyright (C) 2021. Nuts community\n */\npackage main\n")

		assert.True(t, changed)
		assert.Contains(t, fixed, yearRegexReplacement)
	})
	t.Run("up-to-date", func(t *testing.T) {
		_, changed := fixCopyrightNotice(copyrightText + "package main\n")

		assert.False(t, changed)
	})
	t.Run("generated code", func(t *testing.T) {
		_, changed := fixCopyrightNotice("// Code generated by MockGen. DO NOT EDIT.\npackage main\n")

		assert.False(t, changed)
	})
}
