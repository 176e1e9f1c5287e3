package models

import "gorm.io/datatypes"

type Message struct {
	BaseModel

	Uuid     string                      `json:"uuid"`
	Content  string                      `json:"content"`
	IsPinned bool                        `json:"is_pinned"`
	Mentions datatypes.JSONSlice[string] `json:"mentions"`

	ChannelID uint    `json:"channel_id"`
	Channel   Channel `json:"channel,omitempty"`
	SenderID  uint    `json:"sender_id"`
	Sender    Account `json:"sender,omitempty"`

	// A message with a non-nil parent is a thread reply and never shows up
	// in top-level channel listings.
	ParentID *uint     `json:"parent_id"`
	Parent   *Message  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Replies  []Message `json:"replies,omitempty" gorm:"foreignKey:ParentID"`

	Reactions []Reaction `json:"reactions,omitempty"`
}

type Reaction struct {
	BaseModel

	Emoji string `json:"emoji"`

	MessageID uint    `json:"message_id"`
	Message   Message `json:"message,omitempty"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account,omitempty"`
}
