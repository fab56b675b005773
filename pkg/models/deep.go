package models

// Deep-analysis pipeline step names, in execution order.
const (
	StepInitialization = "initialization"
	StepQuestions      = "questions"
	StepPlanning       = "planning"
	StepAnalysis       = "analysis"
	StepSynthesis      = "synthesis"
	StepConclusion     = "conclusion"
	StepReport         = "report"
	StepCompleted      = "completed"
	StepError          = "error"
)

// Stage status values carried in StageEvent.Status.
const (
	StageStatusStarting   = "starting"
	StageStatusProcessing = "processing"
	StageStatusCompleted  = "completed"
	StageStatusSuccess    = "success"
	StageStatusFailed     = "failed"
)

// AnalysisBundle is the full output of a deep-analysis run: everything
// needed to render the report.
type AnalysisBundle struct {
	Goal            string     `json:"goal"`
	DeepQuestions   string     `json:"deep_questions"`
	DeepPlan        string     `json:"deep_plan"`
	Summaries       []string   `json:"summaries"`
	Code            string     `json:"code"`
	PlotlyFigs      [][]string `json:"plotly_figs"`
	Synthesis       []string   `json:"synthesis"`
	FinalConclusion string     `json:"final_conclusion"`
}

// StageEvent is one frame of the deep-analysis progress stream.
// Progress is monotonically non-decreasing across the run.
type StageEvent struct {
	Step     string `json:"step"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Progress int    `json:"progress"`

	// Content carries the completed stage's output (questions text, plan
	// text, or the serialized analysis bundle).
	Content any `json:"content,omitempty"`

	// Analysis and HTMLReport are set on the terminal completed frame.
	Analysis   *AnalysisBundle `json:"analysis,omitempty"`
	HTMLReport string          `json:"html_report,omitempty"`
}
