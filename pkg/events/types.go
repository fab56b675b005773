// Package events provides real-time progress delivery for deep-analysis
// runs via PostgreSQL NOTIFY/LISTEN, so a report's progress stream can be
// resumed from any pod.
//
// Persistent events (stage transitions, terminal states) are written to
// the events table and broadcast in the same transaction; a reconnecting
// client replays missed events by ID before switching to live delivery.
// Transient events (per-agent stream frames) are NOTIFY-only and lost on
// disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeStageStatus marks a pipeline stage transition.
	EventTypeStageStatus = "stage.status"

	// Terminal report states.
	EventTypeReportCompleted = "report.completed"
	EventTypeReportFailed    = "report.failed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeStreamFrame carries one agent's incremental output during
	// interactive planned execution. High frequency, ephemeral.
	EventTypeStreamFrame = "stream.frame"
)

// ReportChannel returns the channel name for one report's progress events.
// Format: "report:{report_uuid}"
func ReportChannel(reportUUID string) string {
	return "report:" + reportUUID
}
