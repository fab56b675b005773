package events

// StageStatusPayload is the payload for stage.status events. One is
// published for every stage transition of a deep-analysis run.
type StageStatusPayload struct {
	Type       string `json:"type"`        // always EventTypeStageStatus
	ReportUUID string `json:"report_uuid"` // owning report
	Step       string `json:"step"`        // initialization, questions, planning, ...
	Status     string `json:"status"`      // starting, processing, completed, failed
	Message    string `json:"message,omitempty"`
	Progress   int    `json:"progress"` // 0..100, monotonic per report
	Content    any    `json:"content,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// ReportCompletedPayload is the payload for report.completed events.
type ReportCompletedPayload struct {
	Type          string `json:"type"`        // always EventTypeReportCompleted
	ReportUUID    string `json:"report_uuid"` // owning report
	ReportSummary string `json:"report_summary,omitempty"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// ReportFailedPayload is the payload for report.failed events.
type ReportFailedPayload struct {
	Type       string `json:"type"`        // always EventTypeReportFailed
	ReportUUID string `json:"report_uuid"` // owning report
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// StreamFramePayload is the payload for stream.frame transient events.
// Published per agent output chunk during planned execution.
type StreamFramePayload struct {
	Type       string `json:"type"`        // always EventTypeStreamFrame
	ReportUUID string `json:"report_uuid"` // owning report (routing only)
	Agent      string `json:"agent"`
	Content    string `json:"content"`
	Status     string `json:"status"` // success or error
}
