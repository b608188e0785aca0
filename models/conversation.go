package models

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversation links exactly two participants to the ordered list of message
// ids exchanged between them. Participants are stored in canonical order
// (ParticipantA < ParticipantB) and PairKey carries the uniqueness constraint,
// so at most one row can exist per unordered pair.
type Conversation struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ParticipantA string         `gorm:"type:varchar(36);index;not null" json:"participant_a"`
	ParticipantB string         `gorm:"type:varchar(36);index;not null" json:"participant_b"`
	PairKey      string         `gorm:"uniqueIndex;type:varchar(80);not null" json:"-"`
	MessageIDs   datatypes.JSON `gorm:"type:json" json:"message_ids"` // append order, not chronological
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// PairKeyFor returns the canonical key for an unordered participant pair.
func PairKeyFor(userA, userB string) string {
	a, b := userA, userB
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// SortedPair returns the two ids in canonical storage order.
func SortedPair(userA, userB string) (string, string) {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return ids[0], ids[1]
}

// MessageIDList decodes the stored message id array. A nil column decodes to
// an empty list.
func (c *Conversation) MessageIDList() ([]string, error) {
	if len(c.MessageIDs) == 0 {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(c.MessageIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// AppendMessageID adds a message reference at the end of the list.
func (c *Conversation) AppendMessageID(messageID string) error {
	ids, err := c.MessageIDList()
	if err != nil {
		return err
	}
	ids = append(ids, messageID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	c.MessageIDs = datatypes.JSON(raw)
	return nil
}
