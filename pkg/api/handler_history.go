package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autoanalyst/analyst/pkg/llm"
)

// chatTitleSystemPrompt drives the small title-derivation call.
const chatTitleSystemPrompt = `You name chat conversations. Given the user's first query,
reply with a short descriptive title (at most six words). Reply with the
title only, no quotes and no punctuation at the end.`

// createChatHandler handles POST /chats.
func (s *Server) createChatHandler(c *gin.Context) {
	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := s.chats.CreateChat(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chat)
}

// listMessagesHandler handles GET /chats/:chat_id/messages.
func (s *Server) listMessagesHandler(c *gin.Context) {
	chatID, ok := pathInt(c, "chat_id")
	if !ok {
		return
	}

	messages, err := s.chats.GetRecentMessages(c.Request.Context(), chatID, s.maxRecentMessages())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "messages": messages})
}

// nameChatHandler handles POST /chats/:chat_id/name — derives a chat
// title from the first query with a small LM call and stores it.
func (s *Server) nameChatHandler(c *gin.Context) {
	chatID, ok := pathInt(c, "chat_id")
	if !ok {
		return
	}
	var req NameChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := s.deriveChatTitle(c, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.chats.UpdateChatTitle(c.Request.Context(), chatID, title); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "title": title})
}

// deriveChatTitle asks the default provider for a title. Falls back to
// a truncation of the query when no LM is configured or the call fails.
func (s *Server) deriveChatTitle(c *gin.Context, query string) (string, error) {
	fallback := query
	if len(fallback) > 60 {
		fallback = fallback[:60]
	}

	if s.llm == nil || s.cfg == nil || s.cfg.Defaults == nil {
		return fallback, nil
	}
	client, err := s.llm.ClientFor(c.Request.Context(), s.cfg.Defaults.LLMProvider)
	if err != nil {
		return fallback, nil
	}

	resp, err := client.Generate(c.Request.Context(), llm.Request{
		System:    chatTitleSystemPrompt,
		Prompt:    query,
		MaxTokens: 24,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return fallback, nil
	}
	return strings.TrimSpace(strings.Trim(resp.Text, "\"")), nil
}
