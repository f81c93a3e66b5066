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
	"strings"
)

type stringWriter = io.StringWriter

// tableRow holds the key, default and description columns.
type tableRow [3]string

func bold(value string) string {
	return "**" + value + "**"
}

func printMarkdownTable(header tableRow, rows []tableRow, writer stringWriter) {
	printRow(header, writer)
	printRow(tableRow{"---", "---", "---"}, writer)
	for _, row := range rows {
		printRow(row, writer)
	}
}

func printRow(row tableRow, writer stringWriter) {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = escapeCell(cell)
	}
	_, _ = writer.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func escapeCell(value string) string {
	return strings.NewReplacer("|", "\\|", "\n", " ").Replace(value)
}
