package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/codeexecution"
)

// CodeExecutionService tracks generated code and its execution outcome
// per message, so failed runs can be refined against the original.
type CodeExecutionService struct {
	client *ent.Client
}

// NewCodeExecutionService creates a new CodeExecutionService
func NewCodeExecutionService(client *ent.Client) *CodeExecutionService {
	return &CodeExecutionService{client: client}
}

// RecordInitial stores code as first generated for a message.
func (s *CodeExecutionService) RecordInitial(ctx context.Context, messageID int, userID *int, code string) (*ent.CodeExecution, error) {
	if code == "" {
		return nil, NewValidationError("code", "required")
	}
	create := s.client.CodeExecution.Create().
		SetMessageID(messageID).
		SetInitialCode(code).
		SetLatestCode(code).
		SetCreatedAt(time.Now())
	if userID != nil {
		create.SetUserID(*userID)
	}
	exec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record code for message %d: %w", messageID, err)
	}
	return exec, nil
}

// RecordOutcome updates the latest code and whether it ran cleanly,
// keeping per-agent error detail for refinement.
func (s *CodeExecutionService) RecordOutcome(ctx context.Context, messageID int, latestCode string, successful bool, failedAgents []string, errorMessages map[string]string) error {
	exec, err := s.getByMessage(ctx, messageID)
	if err != nil {
		return err
	}

	update := exec.Update().
		SetLatestCode(latestCode).
		SetIsSuccessful(successful).
		SetUpdatedAt(time.Now())
	if failedAgents != nil {
		update.SetFailedAgents(failedAgents)
	}
	if errorMessages != nil {
		update.SetErrorMessages(errorMessages)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record execution outcome for message %d: %w", messageID, err)
	}
	return nil
}

// GetLatestCode returns the most recent code for a message.
func (s *CodeExecutionService) GetLatestCode(ctx context.Context, messageID int) (string, error) {
	exec, err := s.getByMessage(ctx, messageID)
	if err != nil {
		return "", err
	}
	return exec.LatestCode, nil
}

func (s *CodeExecutionService) getByMessage(ctx context.Context, messageID int) (*ent.CodeExecution, error) {
	exec, err := s.client.CodeExecution.Query().
		Where(codeexecution.MessageIDEQ(messageID)).
		Order(ent.Desc(codeexecution.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get code execution for message %d: %w", messageID, err)
	}
	return exec, nil
}
