package models

import (
	"time"

	"github.com/google/uuid"
)

// Badge classifies a scout thread.
type Badge string

const (
	BadgePriority Badge = "priority"
	BadgeStandard Badge = "standard"
)

// Label is the text shown on the badge.
func (b Badge) Label() string {
	switch b {
	case BadgePriority:
		return "Percify特別選考"
	case BadgeStandard:
		return "総合商社"
	default:
		return string(b)
	}
}

// Chat is a scout thread in the messaging inbox.
type Chat struct {
	ID             string     `json:"id" validate:"required"`
	CompanyName    string     `json:"companyName" validate:"required"`
	CompanyLogo    string     `json:"companyLogo"`
	Badge          *Badge     `json:"badge,omitempty" validate:"omitempty,oneof=priority standard"`
	MessagePreview string     `json:"messagePreview"`
	Timestamp      string     `json:"timestamp"`
	IsUnread       bool       `json:"isUnread"`
	IsPriority     bool       `json:"isPriority"`
	IsDeclined     bool       `json:"isDeclined"`
	DeclinedAt     *time.Time `json:"declinedDate,omitempty"`
}

// NewChat returns c with a freshly generated ID.
func NewChat(c Chat) Chat {
	c.ID = uuid.NewString()
	return c
}

// Clone returns a copy of c that shares no pointers with it.
func (c Chat) Clone() Chat {
	if c.Badge != nil {
		b := *c.Badge
		c.Badge = &b
	}
	if c.DeclinedAt != nil {
		at := *c.DeclinedAt
		c.DeclinedAt = &at
	}
	return c
}

// CloneChats deep-copies a chat list.
func CloneChats(chats []Chat) []Chat {
	if chats == nil {
		return nil
	}
	out := make([]Chat, len(chats))
	for i, c := range chats {
		out[i] = c.Clone()
	}
	return out
}

// BadgeOf is a helper for building chats with a badge.
func BadgeOf(b Badge) *Badge {
	return &b
}
