package conversation

import (
	"context"
	"fmt"
	"sync"

	"github.com/yanqian/kisan-advisor/internal/domain/chat"
)

// MemoryRepository keeps conversation histories in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	convs map[string][]chat.Message
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{convs: make(map[string][]chat.Message)}
}

// Create implements chat.Repository.
func (r *MemoryRepository) Create(_ context.Context, conv chat.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.convs[conv.ID]; exists {
		return fmt.Errorf("conversation %s already exists", conv.ID)
	}
	r.convs[conv.ID] = append([]chat.Message(nil), conv.Messages...)
	return nil
}

// Append implements chat.Repository.
func (r *MemoryRepository) Append(_ context.Context, conversationID string, msgs ...chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	history, ok := r.convs[conversationID]
	if !ok {
		return fmt.Errorf("conversation %s does not exist", conversationID)
	}
	r.convs[conversationID] = append(history, msgs...)
	return nil
}

// Get implements chat.Repository. The returned slice is a copy.
func (r *MemoryRepository) Get(_ context.Context, conversationID string) (chat.Conversation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history, ok := r.convs[conversationID]
	if !ok {
		return chat.Conversation{}, false, nil
	}
	return chat.Conversation{
		ID:       conversationID,
		Messages: append([]chat.Message(nil), history...),
	}, true, nil
}

var _ chat.Repository = (*MemoryRepository)(nil)
