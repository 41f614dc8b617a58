package server

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server
	MessageTypeEvaluate MessageType = "evaluate"

	// Server to client
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes shared by the HTTP and WebSocket surfaces.
const (
	CodeInvalidCard        = "invalid_card"
	CodeWrongHandSize      = "wrong_hand_size"
	CodeDuplicateCard      = "duplicate_card"
	CodeInvalidMessage     = "invalid_message"
	CodeUnknownMessageType = "unknown_message_type"
)
