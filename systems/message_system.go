package systems

// MessageLog stores game messages. Each match owns its own log.
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	n = min(n, len(ml.Messages))

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
