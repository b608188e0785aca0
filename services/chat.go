package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"

	"chat-server/models"
)

const persistTimeout = 5 * time.Second

// Notifier is the slice of the delivery bus the chat service needs.
type Notifier interface {
	SendTo(connectionID, event string, payload interface{}) error
}

// ChatService keeps the per-pair conversation index consistent with the
// message store and notifies online recipients.
type ChatService struct {
	db       *gorm.DB
	presence *Presence
	bus      Notifier
}

func NewChatService(db *gorm.DB, presence *Presence, bus Notifier) *ChatService {
	return &ChatService{db: db, presence: presence, bus: bus}
}

// RecordMessage persists a message between sender and receiver, attaches it to
// the pair's conversation (creating the conversation on first contact), and
// pushes it to the receiver if they are online. The message and conversation
// writes commit atomically; the push is best effort and never fails the call.
func (s *ChatService) RecordMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	if senderID == "" || receiverID == "" {
		return nil, ErrInvalidParticipants
	}

	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return fmt.Errorf("%w: create message: %v", ErrPersistenceFailure, err)
		}

		participantA, participantB := models.SortedPair(senderID, receiverID)
		conversation := models.Conversation{}
		err := tx.Where(models.Conversation{PairKey: models.PairKeyFor(senderID, receiverID)}).
			Attrs(models.Conversation{ParticipantA: participantA, ParticipantB: participantB}).
			FirstOrCreate(&conversation).Error
		if err != nil {
			return fmt.Errorf("%w: find or create conversation: %v", ErrPersistenceFailure, err)
		}

		if err := conversation.AppendMessageID(message.ID); err != nil {
			return fmt.Errorf("%w: append message reference: %v", ErrPersistenceFailure, err)
		}
		if err := tx.Save(&conversation).Error; err != nil {
			return fmt.Errorf("%w: save conversation: %v", ErrPersistenceFailure, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyReceiver(&message)
	return &message, nil
}

// notifyReceiver pushes the message to the receiver's live connection, if any.
// Runs after the transaction has committed; faults are logged and swallowed.
func (s *ChatService) notifyReceiver(message *models.Message) {
	connectionID, online := s.presence.Lookup(message.ReceiverID)
	if !online {
		return
	}
	if err := s.bus.SendTo(connectionID, EventNewMessage, message); err != nil {
		log.Printf("Failed to push message %s to user %s: %v", message.ID, message.ReceiverID, err)
	}
}

// GetHistory returns the messages exchanged between two users, sorted
// ascending by creation time. Ties keep the conversation's append order. A
// pair with no conversation yields an empty slice, not an error.
func (s *ChatService) GetHistory(ctx context.Context, userA, userB string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	var conversation models.Conversation
	err := s.db.WithContext(ctx).
		Where("pair_key = ?", models.PairKeyFor(userA, userB)).
		First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find conversation: %v", ErrPersistenceFailure, err)
	}

	ids, err := conversation.MessageIDList()
	if err != nil {
		return nil, fmt.Errorf("%w: decode message references: %v", ErrPersistenceFailure, err)
	}
	if len(ids) == 0 {
		return []models.Message{}, nil
	}

	var records []models.Message
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: load messages: %v", ErrPersistenceFailure, err)
	}

	// Expand in append order first so the sort's tie-break follows the array.
	byID := make(map[string]models.Message, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}
	messages := make([]models.Message, 0, len(ids))
	for _, id := range ids {
		if record, ok := byID[id]; ok {
			messages = append(messages, record)
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}
