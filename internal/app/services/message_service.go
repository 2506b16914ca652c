package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/models/dto"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/pkg/apperrors"
)

// MessageService covers direct messages between users
type MessageService interface {
	GetMessages(ctx context.Context, userID int64) ([]*models.Message, error)
	Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error)
	MarkAsRead(ctx context.Context, userID, messageID int64) error
}

// MessageNotifier is told about stored messages so connected clients can be
// updated. Implementations must not block.
type MessageNotifier interface {
	NotifyMessage(msg *models.Message)
	NotifyRead(msg *models.Message)
}

type noopNotifier struct{}

func (noopNotifier) NotifyMessage(*models.Message) {}
func (noopNotifier) NotifyRead(*models.Message)    {}

type messageServiceImpl struct {
	users    repositories.UserRepository
	messages repositories.MessageRepository
	notifier MessageNotifier
}

// NewMessageService creates a new MessageService. notifier may be nil.
func NewMessageService(users repositories.UserRepository, messages repositories.MessageRepository, notifier MessageNotifier) MessageService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &messageServiceImpl{users: users, messages: messages, notifier: notifier}
}

func (s *messageServiceImpl) GetMessages(ctx context.Context, userID int64) ([]*models.Message, error) {
	msgs, err := s.messages.GetMessagesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting messages: %w", err)
	}
	return msgs, nil
}

// Send stores a message from senderID. The receiver must exist.
func (s *messageServiceImpl) Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateID("receiver ID", req.ReceiverID); err != nil {
		return nil, err
	}

	receiver, err := s.users.GetUser(ctx, req.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("error getting receiver: %w", err)
	}
	if receiver == nil {
		return nil, apperrors.ErrUserNotFound
	}

	msg, err := s.messages.CreateMessage(ctx, models.MessageInput{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}
	s.notifier.NotifyMessage(msg)
	return msg, nil
}

// MarkAsRead marks a message the caller received as read
func (s *messageServiceImpl) MarkAsRead(ctx context.Context, userID, messageID int64) error {
	if err := validateID("message ID", messageID); err != nil {
		return err
	}

	msgs, err := s.messages.GetMessagesByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error getting messages: %w", err)
	}

	var target *models.Message
	for _, m := range msgs {
		if m.ID == messageID {
			target = m
			break
		}
	}
	if target == nil {
		return apperrors.ErrMessageNotFound
	}
	if target.ReceiverID != userID {
		return apperrors.NewForbiddenError("only the receiver can mark a message as read")
	}

	if err := s.messages.MarkMessageAsRead(ctx, messageID); err != nil {
		return fmt.Errorf("error marking message as read: %w", err)
	}
	target.IsRead = true
	s.notifier.NotifyRead(target)
	return nil
}
