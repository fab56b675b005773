package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/ent/message"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/services"
	"github.com/autoanalyst/analyst/pkg/session"
)

// individualChatHandler handles POST /chat/:agent — direct invocation of
// one or more named agents (comma-separated), no planning involved.
// The response is a single JSON document, not a stream.
func (s *Server) individualChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	agentSpec := c.Param("agent")

	sess := s.sessions.Get(req.SessionID)
	if req.UserID != nil {
		sess.SetUser(*req.UserID, req.ChatID)
	}
	if !sess.HasDataset() {
		respondError(c, session.ErrNoDataset)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout())
	defer cancel()

	orch, err := s.orch(ctx, sess.ModelConfig(), sess.ChatID())
	if err != nil {
		respondError(c, err)
		return
	}

	query := s.withChatContext(ctx, sess.ChatID(), req.Query)
	events, err := orch.ExecuteIndividual(ctx, agentSpec, query, sess.Retrievers(), sess.UserID())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make(map[string]*models.AgentOutput)
	for evt := range events {
		response[evt.Agent] = evt.Output
	}
	if ctx.Err() == context.DeadlineExceeded {
		respondError(c, context.DeadlineExceeded)
		return
	}

	s.recordExchange(c.Request.Context(), sess.ChatID(), sess.UserID(),
		req.Query, responseTranscript(response), responseCode(response))

	c.JSON(http.StatusOK, IndividualChatResponse{
		AgentName: agentSpec,
		Query:     req.Query,
		Response:  response,
		SessionID: req.SessionID,
	})
}

// plannedChatHandler handles POST /chat — planner-driven execution
// streamed as NDJSON frames. The first frame is always the planner's
// own description; per-step frames follow in plan order.
func (s *Server) plannedChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := s.sessions.Get(req.SessionID)
	if req.UserID != nil {
		sess.SetUser(*req.UserID, req.ChatID)
	}
	if !sess.HasDataset() {
		respondError(c, session.ErrNoDataset)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout())
	defer cancel()

	orch, err := s.orch(ctx, sess.ModelConfig(), sess.ChatID())
	if err != nil {
		respondError(c, err)
		return
	}

	userID := 0
	if sess.UserID() != nil {
		userID = *sess.UserID()
	}

	query := s.withChatContext(ctx, sess.ChatID(), req.Query)
	plan, err := orch.GetPlan(ctx, query, sess.Retrievers(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	setStreamHeaders(c)

	// Nothing enabled: one planner frame carrying the remediation
	// message, no execution.
	if planner.IsNoAgentsPlan(plan) {
		_ = writeFrame(c, models.StreamFrame{
			Agent:   "planner",
			Content: planner.NoAgentsMessage,
			Status:  models.EventStatusError,
		})
		return
	}

	if err := writeFrame(c, models.StreamFrame{
		Agent:   "planner",
		Content: planDescription(plan),
		Status:  models.EventStatusSuccess,
	}); err != nil {
		return
	}

	var transcript, code strings.Builder
	for evt := range orch.ExecutePlan(ctx, plan, query, sess.Retrievers(), sess.UserID()) {
		content := outputText(evt.Output)
		fmt.Fprintf(&transcript, "[%s] %s\n", evt.Agent, content)
		if evt.Output != nil && evt.Output.Code != "" {
			fmt.Fprintf(&code, "# %s\n%s\n", evt.Agent, evt.Output.Code)
		}
		if err := writeFrame(c, models.StreamFrame{
			Agent:   evt.Agent,
			Content: content,
			Status:  evt.Status,
		}); err != nil {
			return
		}
	}

	if ctx.Err() == context.DeadlineExceeded {
		_ = writeFrame(c, models.StreamFrame{
			Agent:   "planner",
			Content: timeoutMessage,
			Status:  models.EventStatusError,
		})
		return
	}

	s.recordExchange(c.Request.Context(), sess.ChatID(), sess.UserID(),
		req.Query, transcript.String(), code.String())
}

// planDescription renders the first stream frame: what the planner
// decided before any agent runs.
func planDescription(plan *models.Plan) string {
	if plan.IsEmpty() {
		return "The planner could not produce an execution plan."
	}
	return fmt.Sprintf("Complexity: %s. Plan: %s", plan.Complexity, strings.Join(plan.Steps, " -> "))
}

// outputText flattens an agent output into the streamed content field.
func outputText(o *models.AgentOutput) string {
	switch {
	case o == nil:
		return ""
	case o.Error != "":
		return o.Error
	case o.Answer != "":
		return o.Answer
	}
	parts := make([]string, 0, 2)
	if o.Code != "" {
		parts = append(parts, o.Code)
	}
	if o.Summary != "" {
		parts = append(parts, o.Summary)
	}
	return strings.Join(parts, "\n\n")
}

// responseTranscript flattens the individual-mode response map for
// chat-history persistence.
func responseTranscript(response map[string]*models.AgentOutput) string {
	var b strings.Builder
	for name, out := range response {
		fmt.Fprintf(&b, "[%s] %s\n", name, outputText(out))
	}
	return b.String()
}

// responseCode collects generated code blocks for execution tracking.
func responseCode(response map[string]*models.AgentOutput) string {
	var b strings.Builder
	for name, out := range response {
		if out != nil && out.Code != "" {
			fmt.Fprintf(&b, "# %s\n%s\n", name, out.Code)
		}
	}
	return b.String()
}

// withChatContext folds recent chat history into the query so follow-up
// questions resolve against earlier turns. Best effort: history lookup
// failures fall back to the bare query.
func (s *Server) withChatContext(ctx context.Context, chatID *int, query string) string {
	if s.chats == nil || chatID == nil {
		return query
	}
	recent, err := s.chats.GetRecentMessages(ctx, *chatID, s.maxRecentMessages())
	if err != nil {
		slog.Warn("Failed to load chat context", "chat_id", *chatID, "error", err)
		return query
	}
	return services.FormatChatContext(query, recent)
}

// recordExchange persists the user query and the assistant response to
// the chat history, and tracks any generated code against the assistant
// message. Persistence failures never fail the request.
func (s *Server) recordExchange(ctx context.Context, chatID, userID *int, query, response, code string) {
	if s.chats == nil || chatID == nil || response == "" {
		return
	}
	if _, err := s.chats.AddMessage(ctx, *chatID, message.SenderUser, query); err != nil {
		slog.Warn("Failed to record user message", "chat_id", *chatID, "error", err)
		return
	}
	aiMsg, err := s.chats.AddMessage(ctx, *chatID, message.SenderAi, response)
	if err != nil {
		slog.Warn("Failed to record assistant message", "chat_id", *chatID, "error", err)
		return
	}
	if s.codeExec != nil && code != "" {
		if _, err := s.codeExec.RecordInitial(ctx, aiMsg.ID, userID, code); err != nil {
			slog.Warn("Failed to record generated code", "message_id", aiMsg.ID, "error", err)
		}
	}
}
