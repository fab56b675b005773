package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/messagefeedback"
)

// FeedbackService manages per-message ratings.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(client *ent.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// FeedbackInput is one rating submission.
type FeedbackInput struct {
	MessageID     int
	Rating        int
	ModelName     string
	ModelProvider string
	Temperature   *float64
	MaxTokens     *int
}

// Upsert records a rating for a message, overwriting any earlier rating.
// One feedback row per message.
func (s *FeedbackService) Upsert(ctx context.Context, in FeedbackInput) (*ent.MessageFeedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewValidationError("rating", "must be between 1 and 5")
	}

	existing, err := s.client.MessageFeedback.Query().
		Where(messagefeedback.MessageIDEQ(in.MessageID)).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().
			SetRating(in.Rating).
			SetUpdatedAt(time.Now())
		applyModelSnapshot(update.Mutation(), in)
		fb, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update feedback for message %d: %w", in.MessageID, err)
		}
		return fb, nil
	case ent.IsNotFound(err):
		create := s.client.MessageFeedback.Create().
			SetMessageID(in.MessageID).
			SetRating(in.Rating).
			SetCreatedAt(time.Now())
		applyModelSnapshot(create.Mutation(), in)
		fb, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create feedback for message %d: %w", in.MessageID, err)
		}
		return fb, nil
	default:
		return nil, fmt.Errorf("failed to query feedback for message %d: %w", in.MessageID, err)
	}
}

// GetByMessage returns the feedback row for a message.
func (s *FeedbackService) GetByMessage(ctx context.Context, messageID int) (*ent.MessageFeedback, error) {
	fb, err := s.client.MessageFeedback.Query().
		Where(messagefeedback.MessageIDEQ(messageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback for message %d: %w", messageID, err)
	}
	return fb, nil
}

func applyModelSnapshot(m *ent.MessageFeedbackMutation, in FeedbackInput) {
	if in.ModelName != "" {
		m.SetModelName(in.ModelName)
	}
	if in.ModelProvider != "" {
		m.SetModelProvider(in.ModelProvider)
	}
	if in.Temperature != nil {
		m.SetTemperature(*in.Temperature)
	}
	if in.MaxTokens != nil {
		m.SetMaxTokens(*in.MaxTokens)
	}
}
