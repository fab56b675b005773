package session

import (
	"context"
	"sync"
	"time"

	"github.com/philippgille/chromem-go"

	"github.com/autoanalyst/analyst/pkg/deep"
	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// SignatureProvider supplies the agent signatures a deep analyzer runs
// on. The registry is the production implementation.
type SignatureProvider interface {
	PlannerForUser(ctx context.Context, userID int) []*models.AgentSignature
	CoreSignatures() []*models.AgentSignature
}

// AnalyzerFactory builds a deep analyzer for a set of agents. The
// manager stays free of provider and persistence wiring this way.
type AnalyzerFactory func(ctx context.Context, agents []*models.AgentSignature, cfg models.ModelConfig, rets *retriever.Set) (*deep.Analyzer, error)

// Manager owns all in-memory sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	signatures   SignatureProvider
	factory      AnalyzerFactory
	defaultModel models.ModelConfig
	embed        chromem.EmbeddingFunc
}

// NewManager creates a session manager.
func NewManager(signatures SignatureProvider, factory AnalyzerFactory, defaultModel models.ModelConfig) *Manager {
	return &Manager{
		sessions:     make(map[string]*Session),
		signatures:   signatures,
		factory:      factory,
		defaultModel: defaultModel,
	}
}

// SetEmbedding configures vector-backed styling retrieval for sessions
// created afterwards. Without it, sessions serve static styling hints.
func (m *Manager) SetEmbedding(embed chromem.EmbeddingFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embed = embed
}

// Get returns the session, creating it on first reference.
func (m *Manager) Get(sessionID string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		return s
	}
	now := time.Now()
	s = &Session{
		ID:        sessionID,
		modelCfg:  m.defaultModel,
		embed:     m.embed,
		createdAt: now,
		updatedAt: now,
	}
	m.sessions[sessionID] = s
	return s
}

// Clear removes a session and all its state.
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// GetDeepAnalyzer returns the session's analyzer, building one when none
// is cached or the cached one was built for a different user. Agents
// come from the user's planner preferences; anonymous sessions and users
// with nothing enabled run on the core four.
func (m *Manager) GetDeepAnalyzer(ctx context.Context, sessionID string) (*deep.Analyzer, error) {
	s := m.Get(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.retrievers == nil {
		return nil, ErrNoDataset
	}
	if s.analyzer != nil && intPtrEqual(s.analyzerUserID, s.userID) {
		return s.analyzer, nil
	}

	var agents []*models.AgentSignature
	if s.userID != nil {
		agents = m.signatures.PlannerForUser(ctx, *s.userID)
	}
	if len(agents) == 0 {
		agents = m.signatures.CoreSignatures()
	}

	analyzer, err := m.factory(ctx, agents, s.modelCfg, s.retrievers)
	if err != nil {
		return nil, err
	}
	s.analyzer = analyzer
	s.analyzerUserID = s.userID
	return analyzer, nil
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
