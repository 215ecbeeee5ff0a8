package domain

// ChatMessage is an immutable direct message between two users.
type ChatMessage struct {
	ID          int64  `json:"id"`
	SenderID    int64  `json:"sender_id"`
	RecipientID int64  `json:"recipient_id"`
	Message     string `json:"message"`
}

// Involves reports whether the message was exchanged between a and b, in either direction.
func (m *ChatMessage) Involves(a, b int64) bool {
	return (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a)
}
