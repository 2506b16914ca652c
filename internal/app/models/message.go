package models

import "time"

// Message defines the model based on the 'messages' table
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	SentAt     time.Time `json:"sentAt" db:"sent_at"`
}

// MessageInput holds the caller-supplied fields of a new message.
type MessageInput struct {
	SenderID   int64
	ReceiverID int64
	Content    string
	IsRead     *bool
}

// NewMessageRecord builds the stored message row. IsRead defaults to false.
func NewMessageRecord(id int64, in MessageInput, now time.Time) *Message {
	return &Message{
		ID:         id,
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		IsRead:     flag(in.IsRead),
		SentAt:     now,
	}
}

func (m *Message) Clone() *Message {
	c := *m
	return &c
}
