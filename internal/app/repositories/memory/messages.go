package memory

import (
	"context"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

// GetMessagesByUser returns sent messages followed by received ones, matching
// the two-query order of the postgres backend.
func (r *Repository) GetMessagesByUser(_ context.Context, userID int64) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sent := r.messages.filter(func(m *models.Message) bool { return m.SenderID == userID })
	received := r.messages.filter(func(m *models.Message) bool {
		return m.ReceiverID == userID && m.SenderID != userID
	})
	return append(sent, received...), nil
}

func (r *Repository) CreateMessage(_ context.Context, in models.MessageInput) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := models.NewMessageRecord(r.messages.nextID(), in, r.now())
	return r.messages.insert(m.ID, m), nil
}

// MarkMessageAsRead flips is_read to true. Unknown ids are ignored.
func (r *Repository) MarkMessageAsRead(_ context.Context, messageID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.messages.get(messageID); ok {
		m.IsRead = true
	}
	return nil
}
