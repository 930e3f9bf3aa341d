package chat

import "context"

// Repository stores conversation histories.
type Repository interface {
	Create(ctx context.Context, conv Conversation) error
	Append(ctx context.Context, conversationID string, msgs ...Message) error
	Get(ctx context.Context, conversationID string) (Conversation, bool, error)
}
