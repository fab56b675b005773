package models

import (
	"fmt"
	"strings"
)

// ColumnType is the semantic type of a dataset column.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
	ColumnTemporal    ColumnType = "temporal"
	ColumnOther       ColumnType = "other"
)

// Column describes one dataset column.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Dataset is the in-memory descriptor of the tabular data bound to a
// session: schema plus free-text context used to prime agents. Immutable
// per session update — replacing the dataset builds a new value.
type Dataset struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Columns     []Column `json:"columns"`

	// SampleRows holds a few formatted example rows for prompting.
	SampleRows []map[string]string `json:"sample_rows,omitempty"`
}

// Describe renders the descriptor text handed to agents: name, context,
// column schema, and sample rows when present.
func (d *Dataset) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(&b, "Context: %s\n", d.Description)
	}
	b.WriteString("Columns:\n")
	for _, col := range d.Columns {
		fmt.Fprintf(&b, "  - %s (%s)\n", col.Name, col.Type)
	}
	if len(d.SampleRows) > 0 {
		b.WriteString("Sample rows:\n")
		for _, row := range d.SampleRows {
			parts := make([]string, 0, len(d.Columns))
			for _, col := range d.Columns {
				parts = append(parts, fmt.Sprintf("%s=%s", col.Name, row[col.Name]))
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(parts, ", "))
		}
	}
	return b.String()
}
