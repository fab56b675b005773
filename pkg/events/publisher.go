package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ProgressPublisher publishes deep-analysis progress events.
// Persistent events are stored in the events table then broadcast via
// NOTIFY; transient events (stream frames) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to
// the report's channel via persistAndNotify or notifyOnly.
type ProgressPublisher struct {
	db *sql.DB
}

// NewProgressPublisher creates a new ProgressPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewProgressPublisher(db *sql.DB) *ProgressPublisher {
	return &ProgressPublisher{db: db}
}

// PublishStageStatus persists and broadcasts a stage.status event.
func (p *ProgressPublisher) PublishStageStatus(ctx context.Context, reportUUID string, payload StageStatusPayload) error {
	payload.Type = EventTypeStageStatus
	payload.ReportUUID = reportUUID
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, reportUUID, ReportChannel(reportUUID), payloadJSON)
}

// PublishReportCompleted persists and broadcasts a report.completed event.
func (p *ProgressPublisher) PublishReportCompleted(ctx context.Context, reportUUID string, payload ReportCompletedPayload) error {
	payload.Type = EventTypeReportCompleted
	payload.ReportUUID = reportUUID
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ReportCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, reportUUID, ReportChannel(reportUUID), payloadJSON)
}

// PublishReportFailed persists and broadcasts a report.failed event.
func (p *ProgressPublisher) PublishReportFailed(ctx context.Context, reportUUID string, payload ReportFailedPayload) error {
	payload.Type = EventTypeReportFailed
	payload.ReportUUID = reportUUID
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ReportFailedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, reportUUID, ReportChannel(reportUUID), payloadJSON)
}

// PublishStreamFrame broadcasts a stream.frame transient event (no DB
// persistence). Used for per-agent output chunks — ephemeral, lost on
// disconnect.
func (p *ProgressPublisher) PublishStreamFrame(ctx context.Context, reportUUID string, payload StreamFramePayload) error {
	payload.Type = EventTypeStreamFrame
	payload.ReportUUID = reportUUID
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StreamFramePayload: %w", err)
	}
	return p.notifyOnly(ctx, ReportChannel(reportUUID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *ProgressPublisher) persistAndNotify(ctx context.Context, reportUUID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (report_uuid, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		reportUUID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to DB.
func (p *ProgressPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields the client
// needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		ReportUUID string `json:"report_uuid"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"report_uuid": routing.ReportUUID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
