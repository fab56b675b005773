// Package render turns a finished analysis bundle into a standalone HTML
// report with embedded Plotly figures.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Deep Analysis Report</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2328; }
h1, h2 { border-bottom: 1px solid #d1d9e0; padding-bottom: .3rem; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; border-radius: 6px; }
.figure { margin: 1.5rem 0; }
</style>
</head>
<body>
<h1>Deep Analysis Report</h1>
<p><strong>Goal:</strong> {{.Goal}}</p>

<h2>Analytical Questions</h2>
<pre>{{.DeepQuestions}}</pre>

<h2>Execution Plan</h2>
<pre>{{.DeepPlan}}</pre>

<h2>Findings</h2>
{{range $i, $summary := .Summaries}}
<h3>Finding {{inc $i}}</h3>
<pre>{{$summary}}</pre>
{{end}}

{{if .Figures}}
<h2>Figures</h2>
{{range .Figures}}
<div class="figure" id="{{.ID}}"></div>
<script>Plotly.newPlot({{.ID}}, {{.Spec}}.data, {{.Spec}}.layout, {responsive: true});</script>
{{end}}
{{end}}

{{if .Code}}
<h2>Analysis Code</h2>
<pre>{{.Code}}</pre>
{{end}}

<h2>Synthesis</h2>
{{range .Synthesis}}
<pre>{{.}}</pre>
{{end}}

<h2>Conclusion</h2>
<pre>{{.FinalConclusion}}</pre>
</body>
</html>
`

var tmpl = template.Must(template.New("report").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(reportTemplate))

// figure is one embeddable Plotly figure: a stable element ID plus the
// validated figure JSON.
type figure struct {
	ID   string
	Spec template.JS
}

// reportData is the template's view of the bundle.
type reportData struct {
	*models.AnalysisBundle
	Figures []figure
}

// Report renders the bundle as a self-contained HTML document. Figure
// entries that are not valid JSON are skipped rather than breaking the
// page script.
func Report(bundle *models.AnalysisBundle) (string, error) {
	data := reportData{AnalysisBundle: bundle}
	for i, group := range bundle.PlotlyFigs {
		for j, spec := range group {
			if !json.Valid([]byte(spec)) {
				continue
			}
			data.Figures = append(data.Figures, figure{
				ID:   fmt.Sprintf("fig-%d-%d", i, j),
				Spec: template.JS(spec),
			})
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}
