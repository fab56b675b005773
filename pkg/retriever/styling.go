package retriever

import (
	"context"

	"github.com/philippgille/chromem-go"
)

// DefaultStylingInstructions are the built-in hints served by the styling
// index to visualization agents. Each entry covers one chart family so a
// vector lookup can pick the relevant one.
var DefaultStylingInstructions = []string{
	`Line charts: use plotly_white template, show axis lines with tick labels,
display units on the y-axis, format values above 1000 with K/M suffixes,
annotate notable trends or changes in percentages, bold the title with <b>
tags, and label both axes.`,

	`Bar charts: use plotly_white template, annotate each bar with its value
(K/M suffixes above 1000), show axis lines and units, add percentage
annotations where relevant, bold the title with <b> tags.`,

	`Histograms: use plotly_white template, avoid overlapping bins, label the
measured variable and the count axis, display units, bold the title with
<b> tags, and annotate the mean and median.`,

	`Pie charts: show percentage shares in labels, pull out the largest slice
slightly, use a white background, bold the title with <b> tags, and keep
the legend outside the plot area.`,

	`Heat maps: use a perceptually uniform color scale, show the color bar
with units, label both axes, bold the title with <b> tags, and annotate
cells when the matrix is small.`,

	`Scatter plots: use plotly_white template, size markers reasonably, add a
trend line when a relationship is analyzed, display units on both axes,
bold the title with <b> tags, and annotate outliers.`,
}

// NewSessionSet builds the default retriever set for a dataset: a static
// dataset-descriptor index and a static styling index. Callers with an
// embedding function can swap Style for a Vector index.
func NewSessionSet(description string) *Set {
	return &Set{
		Dataset: NewStatic(description),
		Style:   NewStatic(DefaultStylingInstructions...),
	}
}

// NewVectorSessionSet builds a retriever set whose styling index is
// vector-backed so visualization agents get the hint matching their
// chart type.
func NewVectorSessionSet(ctx context.Context, description string, embed chromem.EmbeddingFunc) (*Set, error) {
	style, err := NewVector(ctx, "styling-index", DefaultStylingInstructions, embed)
	if err != nil {
		return nil, err
	}
	return &Set{
		Dataset: NewStatic(description),
		Style:   style,
	}, nil
}
