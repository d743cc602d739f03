/*
       Copyright (c) Microsoft Corporation.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package output renders adapter records as tables, YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Table is the column view of a record list.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Printer writes records to Out in one format.
type Printer struct {
	Out       io.Writer
	Format    Format
	NoHeaders bool
}

func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatTable, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: table, yaml, json)", format)
	}
}

func NewPrinter(out io.Writer, format string, noHeaders bool) (*Printer, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	return &Printer{Out: out, Format: Format(format), NoHeaders: noHeaders}, nil
}

// Print writes v. Structured formats go through the records' own JSON encoding so that SDK
// models keep their wire field names; the table format uses t instead.
func (p *Printer) Print(v any, t Table) error {
	switch p.Format {
	case FormatJSON:
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(raw))
		return err
	case FormatYAML:
		raw, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = p.Out.Write(raw)
		return err
	default:
		return p.printTable(t)
	}
}

func (p *Printer) printTable(t Table) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(p.Out, "No resources found")
		return err
	}

	w := table.NewWriter()
	w.SetOutputMirror(p.Out)
	w.SetStyle(plainStyle())
	if !p.NoHeaders {
		w.AppendHeader(toRow(t.Headers))
	}
	w.AppendRows(lo.Map(t.Rows, func(row []string, _ int) table.Row { return toRow(row) }))
	w.Render()
	return nil
}

// plainStyle renders columns without borders or separator lines, like kubectl.
func plainStyle() table.Style {
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "   "
	return style
}

func toRow(cells []string) table.Row {
	return lo.Map(cells, func(c string, _ int) any { return c })
}

func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to convert to YAML: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	return out, nil
}

// Cell renders an optional value, "-" when it is empty.
func Cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
