package api

import "github.com/autoanalyst/analyst/pkg/models"

// IndividualChatResponse is the non-streaming response of the @agent
// path: one output entry per invoked agent, keyed by agent name.
type IndividualChatResponse struct {
	AgentName string                         `json:"agent_name"`
	Query     string                         `json:"query"`
	Response  map[string]*models.AgentOutput `json:"response"`
	SessionID string                         `json:"session_id"`
}

// deepFrame is the NDJSON wire form of one deep-analysis stage event.
type deepFrame struct {
	Step        string     `json:"step"`
	Status      string     `json:"status"`
	Message     string     `json:"message,omitempty"`
	Progress    int        `json:"progress"`
	Content     any        `json:"content,omitempty"`
	FinalResult *deepFinal `json:"final_result,omitempty"`
}

// deepFinal is attached to the terminal completed frame.
type deepFinal struct {
	Analysis   *models.AnalysisBundle `json:"analysis"`
	HTMLReport string                 `json:"html_report"`
}

func toDeepFrame(evt models.StageEvent) deepFrame {
	frame := deepFrame{
		Step:     evt.Step,
		Status:   evt.Status,
		Message:  evt.Message,
		Progress: evt.Progress,
		Content:  evt.Content,
	}
	if evt.Analysis != nil || evt.HTMLReport != "" {
		frame.FinalResult = &deepFinal{
			Analysis:   evt.Analysis,
			HTMLReport: evt.HTMLReport,
		}
	}
	return frame
}
