package httpclient

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a plain value holder: constructed, read, discarded.
type ChatMessage struct {
	ID     string    `json:"id"`
	From   string    `json:"from"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// NewChatMessage assigns a fresh ID and timestamp.
func NewChatMessage(from, text string) ChatMessage {
	return ChatMessage{
		ID:     uuid.NewString(),
		From:   from,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
}

// ChatService is a pass-through over Client against a chat endpoint. It
// exists to show the call pattern, nothing more.
type ChatService struct {
	client *Client
}

func NewChatService(base string) *ChatService {
	return &ChatService{client: New(base)}
}

// Send posts a message and returns the server's echo of it.
func (s *ChatService) Send(ctx context.Context, from, text string) (ChatMessage, error) {
	msg := NewChatMessage(from, text)
	var stored ChatMessage
	if err := s.client.PostJSON(ctx, "/messages", msg, &stored); err != nil {
		return ChatMessage{}, err
	}
	return stored, nil
}

// History fetches the messages sent so far, optionally filtered by sender.
func (s *ChatService) History(ctx context.Context, from string) ([]ChatMessage, error) {
	path := "/messages"
	if from != "" {
		path += "?from=" + url.QueryEscape(from)
	}
	var msgs []ChatMessage
	if err := s.client.GetJSON(ctx, path, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
