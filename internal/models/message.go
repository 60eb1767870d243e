package models

import "fmt"

// Chat roles accepted by the Ollama chat endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry in a conversation.
// A conversation is an ordered slice of messages, oldest first.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidRole reports whether role is one of the chat roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// ValidateMessages checks the constraints on a conversation before it is
// sent over the wire: at least one message, every role known, no empty content.
func ValidateMessages(messages []Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("conversation must contain at least one message")
	}
	for i, m := range messages {
		if !ValidRole(m.Role) {
			return fmt.Errorf("message %d: invalid role %q", i, m.Role)
		}
		if m.Content == "" {
			return fmt.Errorf("message %d: content is empty", i)
		}
	}
	return nil
}

// SystemMessage is a convenience constructor for a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage is a convenience constructor for a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage is a convenience constructor for an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
