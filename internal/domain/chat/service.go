package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/kisan-advisor/pkg/errors"
)

// Service runs chat turns against a stored conversation history.
type Service interface {
	Start(ctx context.Context) (Conversation, error)
	Send(ctx context.Context, conversationID, text string) (Turn, error)
	History(ctx context.Context, conversationID string) ([]Message, error)
	QuickActions() []QuickAction
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	sleep  func(time.Duration)
	newID  func() string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires up the chat domain.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		repo:     repo,
		logger:   logger.With("component", "chat.service"),
		now:      time.Now,
		sleep:    time.Sleep,
		newID:    newMessageID,
		inFlight: make(map[string]struct{}),
	}
}

func (s *service) Start(ctx context.Context) (Conversation, error) {
	conv := Conversation{
		ID: uuid.NewString(),
		Messages: []Message{{
			ID:        "welcome",
			Role:      RoleBot,
			Content:   welcomeMessage,
			Timestamp: s.now(),
		}},
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return Conversation{}, apperrors.Wrap("chat_error", "failed to create conversation", err)
	}
	s.logger.Info("conversation started", "conversation_id", conv.ID)
	return conv, nil
}

func (s *service) Send(ctx context.Context, conversationID, text string) (Turn, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return Turn{}, apperrors.Wrap(apperrors.CodeInvalidInput, "message cannot be empty", nil)
	}
	if _, found, err := s.repo.Get(ctx, conversationID); err != nil {
		return Turn{}, apperrors.Wrap("chat_error", "failed to load conversation", err)
	} else if !found {
		return Turn{}, apperrors.Wrap(apperrors.CodeNotFound, "conversation not found", nil)
	}
	if !s.acquire(conversationID) {
		return Turn{}, apperrors.Wrap(apperrors.CodeConversationBusy, "a reply is already being prepared", nil)
	}
	defer s.release(conversationID)

	userMsg := Message{ID: "user-" + s.newID(), Role: RoleUser, Content: content, Timestamp: s.now()}
	if err := s.repo.Append(ctx, conversationID, userMsg); err != nil {
		return Turn{}, apperrors.Wrap("chat_error", "failed to store message", err)
	}

	if s.cfg.ResponseDelay > 0 {
		s.sleep(s.cfg.ResponseDelay)
	}

	intent := Classify(content)
	botMsg := Message{ID: "bot-" + s.newID(), Role: RoleBot, Content: ResponseFor(intent), Timestamp: s.now()}
	if err := s.repo.Append(ctx, conversationID, botMsg); err != nil {
		return Turn{}, apperrors.Wrap("chat_error", "failed to store reply", err)
	}
	s.logger.Info("chat turn completed", "conversation_id", conversationID, "intent", intent)

	return Turn{Intent: intent, UserMessage: userMsg, BotMessage: botMsg}, nil
}

func (s *service) History(ctx context.Context, conversationID string) ([]Message, error) {
	conv, found, err := s.repo.Get(ctx, conversationID)
	if err != nil {
		return nil, apperrors.Wrap("chat_error", "failed to load conversation", err)
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "conversation not found", nil)
	}
	return conv.Messages, nil
}

func (s *service) QuickActions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

func (s *service) acquire(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[conversationID]; busy {
		return false
	}
	s.inFlight[conversationID] = struct{}{}
	return true
}

func (s *service) release(conversationID string) {
	s.mu.Lock()
	delete(s.inFlight, conversationID)
	s.mu.Unlock()
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
