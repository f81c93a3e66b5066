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
	"io"

	"github.com/spf13/cobra"
)

// GenerateCommandDocs writes a Markdown section with usage and flags for the command and each of its subcommands.
func GenerateCommandDocs(cmd *cobra.Command, writer io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	if cmd.Runnable() {
		_, _ = io.WriteString(writer, "\n## "+cmd.CommandPath()+"\n\n")
		if len(cmd.Long) > 0 {
			_, _ = io.WriteString(writer, cmd.Long)
		} else {
			_, _ = io.WriteString(writer, cmd.Short)
		}
		_, _ = io.WriteString(writer, "\n\n```\n"+cmd.UseLine()+"\n\n")
		flags := cmd.NonInheritedFlags()
		if flags.HasAvailableFlags() {
			_, _ = io.WriteString(writer, flags.FlagUsages())
		}
		parentFlags := cmd.InheritedFlags()
		if parentFlags.HasAvailableFlags() {
			_, _ = io.WriteString(writer, parentFlags.FlagUsages())
		}
		_, _ = io.WriteString(writer, "```\n")
	}

	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := GenerateCommandDocs(c, writer); err != nil {
			return err
		}
	}
	return nil
}
