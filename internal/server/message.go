package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/lox/pokerrank/poker"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type      MessageType     `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, requestID string, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		RequestID: requestID,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// EvaluateData is the payload of an evaluate request, shared with POST /evaluate.
type EvaluateData struct {
	Cards string `json:"cards"`
}

// ResultData describes a ranked hand.
type ResultData struct {
	Rank        int      `json:"rank"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Cards       []string `json:"cards"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps ErrorData for the HTTP surface.
type errorResponse struct {
	Error ErrorData `json:"error"`
}

// evaluate parses and ranks a hand.
func evaluate(req EvaluateData) (*ResultData, error) {
	hand, err := poker.ParseHand(req.Cards)
	if err != nil {
		return nil, err
	}

	rank := hand.Rank()
	cards := hand.Cards()
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}

	return &ResultData{
		Rank:        int(rank),
		Category:    rank.Category().String(),
		Description: rank.String(),
		Cards:       names,
	}, nil
}

// errorCode maps evaluation failures onto stable client-facing codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, poker.ErrWrongHandSize):
		return CodeWrongHandSize
	case errors.Is(err, poker.ErrDuplicateCard):
		return CodeDuplicateCard
	case errors.Is(err, poker.ErrInvalidCard):
		return CodeInvalidCard
	default:
		return CodeInvalidMessage
	}
}
