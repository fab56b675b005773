// Package session holds per-session state: the bound dataset and its
// retrievers, the user/chat binding, the model configuration, and the
// cached deep analyzer. Sessions are created lazily on first reference
// and live in memory.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/philippgille/chromem-go"

	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// ErrNoDataset is returned when an operation needs a dataset and the
// session has none bound.
var ErrNoDataset = errors.New("no dataset is bound to this session")

// Session is one conversation's state. All access goes through its
// methods; the zero value is not usable, use Manager.Get.
type Session struct {
	ID string

	mu                    sync.RWMutex
	userID                *int
	chatID                *int
	dataset               *models.Dataset
	retrievers            *retriever.Set
	modelCfg              models.ModelConfig
	currentDeepAnalysisID string

	// analyzer is cached per user; a user change invalidates it.
	analyzer       *deep.Analyzer
	analyzerUserID *int

	// embed, when set, backs the styling index with a vector store.
	embed chromem.EmbeddingFunc

	createdAt time.Time
	updatedAt time.Time
}

// UserID returns the bound user, or nil for anonymous sessions.
func (s *Session) UserID() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// ChatID returns the bound chat, if any.
func (s *Session) ChatID() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chatID
}

// Dataset returns the bound dataset, or nil.
func (s *Session) Dataset() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Retrievers returns the session's retriever set, or nil when no
// dataset is bound.
func (s *Session) Retrievers() *retriever.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.retrievers
}

// HasDataset reports whether a dataset is bound.
func (s *Session) HasDataset() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil
}

// ModelConfig returns the session's model configuration.
func (s *Session) ModelConfig() models.ModelConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modelCfg
}

// SetModelConfig replaces the model configuration. The cached analyzer
// is dropped so the next deep run uses the new model.
func (s *Session) SetModelConfig(cfg models.ModelConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelCfg = cfg
	s.analyzer = nil
	s.analyzerUserID = nil
	s.updatedAt = time.Now()
}

// UpdateDataset binds a dataset and rebuilds the retriever set from its
// descriptor. The cached analyzer is dropped because it holds the old
// retrievers.
func (s *Session) UpdateDataset(ds *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.retrievers = s.buildRetrievers(ds.Describe())
	s.analyzer = nil
	s.analyzerUserID = nil
	s.updatedAt = time.Now()
}

// buildRetrievers returns the session's retriever set: vector-backed
// styling when an embedding function is configured, static hints when
// not or when indexing fails.
func (s *Session) buildRetrievers(description string) *retriever.Set {
	if s.embed == nil {
		return retriever.NewSessionSet(description)
	}
	set, err := retriever.NewVectorSessionSet(context.Background(), description, s.embed)
	if err != nil {
		slog.Warn("Failed to build vector styling index, using static hints",
			"session_id", s.ID, "error", err)
		return retriever.NewSessionSet(description)
	}
	return set
}

// SetUser binds the session to a user and optionally a chat. A cached
// analyzer built for a different user is invalidated.
func (s *Session) SetUser(userID int, chatID *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analyzerUserID == nil || *s.analyzerUserID != userID {
		s.analyzer = nil
		s.analyzerUserID = nil
	}
	s.userID = &userID
	s.chatID = chatID
	s.updatedAt = time.Now()
}

// CurrentDeepAnalysis returns the UUID of the session's in-flight deep
// analysis, or "".
func (s *Session) CurrentDeepAnalysis() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDeepAnalysisID
}

// SetCurrentDeepAnalysis records the in-flight deep analysis. Reports
// are referenced weakly, by UUID only.
func (s *Session) SetCurrentDeepAnalysis(reportUUID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDeepAnalysisID = reportUUID
	s.updatedAt = time.Now()
}
