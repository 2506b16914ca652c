package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

var messageColumns = []string{
	"id", "sender_id", "receiver_id", "content", "COALESCE(is_read, FALSE) AS is_read", "sent_at",
}

func scanMessage(row scanner) (*models.Message, error) {
	var m models.Message
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.SentAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMessagesByUser runs two queries, sent then received. Messages a user
// sent to themselves are only returned with the sent half.
func (r *Repository) GetMessagesByUser(ctx context.Context, userID int64) ([]*models.Message, error) {
	sent, err := getMany(ctx, r, r.sb.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"sender_id": userID}).
		OrderBy("id ASC"), scanMessage)
	if err != nil {
		return nil, err
	}

	received, err := getMany(ctx, r, r.sb.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"receiver_id": userID}).
		Where(squirrel.NotEq{"sender_id": userID}).
		OrderBy("id ASC"), scanMessage)
	if err != nil {
		return nil, err
	}

	return append(sent, received...), nil
}

func (r *Repository) CreateMessage(ctx context.Context, in models.MessageInput) (*models.Message, error) {
	m := models.NewMessageRecord(0, in, timeZero)
	q := r.sb.Insert("messages").
		Columns("sender_id", "receiver_id", "content", "is_read").
		Values(m.SenderID, m.ReceiverID, m.Content, m.IsRead).
		Suffix("RETURNING " + joinColumns(messageColumns))
	return insertOne(ctx, r, q, scanMessage)
}

// MarkMessageAsRead sets is_read. Zero affected rows is not an error.
func (r *Repository) MarkMessageAsRead(ctx context.Context, messageID int64) error {
	sql, args, err := r.sb.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": messageID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
