package chat

import "time"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentWeather      Intent = "weather"
	IntentMarketPrice  Intent = "market_price"
	IntentCropPlanning Intent = "crop_planning"
	IntentSoilHealth   Intent = "soil_health"
	IntentPestDisease  Intent = "pest_disease"
	IntentFertilizer   Intent = "fertilizer"
	IntentUnknown      Intent = "unknown"
)

// Role identifies the author of a message.
type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// Message is a single immutable chat entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an ordered, append-only message history.
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// Turn is returned after a user message has been answered.
type Turn struct {
	Intent      Intent  `json:"intent"`
	UserMessage Message `json:"userMessage"`
	BotMessage  Message `json:"botMessage"`
}

// QuickAction is a preset prompt offered before the user types.
type QuickAction struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// Config wires runtime knobs for the conversation service.
type Config struct {
	// ResponseDelay is cosmetic latency applied before the bot answers.
	ResponseDelay time.Duration
}
