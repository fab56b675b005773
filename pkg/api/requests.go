package api

import "github.com/autoanalyst/analyst/pkg/models"

// ChatRequest is the body of both chat endpoints. Agent selection for
// the individual path comes from the URL, not the body.
type ChatRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	UserID    *int   `json:"user_id,omitempty"`
	ChatID    *int   `json:"chat_id,omitempty"`
}

// DeepAnalysisRequest starts a deep-analysis run, streamed or queued.
type DeepAnalysisRequest struct {
	Goal      string `json:"goal" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	UserID    *int   `json:"user_id,omitempty"`
}

// DownloadReportRequest carries the analysis bundle to render. When
// ReportUUID is set the rendered HTML is also persisted onto the row.
type DownloadReportRequest struct {
	AnalysisData models.AnalysisBundle `json:"analysis_data" binding:"required"`
	ReportUUID   string                `json:"report_uuid,omitempty"`
}

// BindDatasetRequest attaches a dataset descriptor to a session.
type BindDatasetRequest struct {
	SessionID string         `json:"session_id" binding:"required"`
	Dataset   models.Dataset `json:"dataset" binding:"required"`
}

// GetOrCreateUserRequest resolves an account by email, creating it on
// first sight.
type GetOrCreateUserRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email" binding:"required"`
}

// BindUserRequest attaches user and chat identity to a session.
type BindUserRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	UserID    int    `json:"user_id" binding:"required"`
	ChatID    *int   `json:"chat_id,omitempty"`
}

// SetModelRequest replaces a session's model configuration.
type SetModelRequest struct {
	SessionID   string  `json:"session_id" binding:"required"`
	Provider    string  `json:"provider" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// ToggleTemplateRequest flips one user preference.
type ToggleTemplateRequest struct {
	UserID    int  `json:"user_id" binding:"required"`
	IsEnabled bool `json:"is_enabled"`
}

// ToggleEntry is one item of a bulk preference toggle.
type ToggleEntry struct {
	TemplateID int  `json:"template_id" binding:"required"`
	IsEnabled  bool `json:"is_enabled"`
}

// BulkToggleRequest applies several preference toggles at once.
type BulkToggleRequest struct {
	UserID  int           `json:"user_id" binding:"required"`
	Toggles []ToggleEntry `json:"toggles" binding:"required,min=1"`
}

// FeedbackRequest records a rating for one assistant message.
type FeedbackRequest struct {
	MessageID     int      `json:"message_id" binding:"required"`
	Rating        int      `json:"rating" binding:"required,min=1,max=5"`
	ModelName     string   `json:"model_name,omitempty"`
	ModelProvider string   `json:"model_provider,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty"`
}

// CreateChatRequest opens a new chat thread.
type CreateChatRequest struct {
	UserID *int `json:"user_id,omitempty"`
}

// NameChatRequest derives a title for a chat from its first query.
type NameChatRequest struct {
	Query string `json:"query" binding:"required"`
}
