package models

type Channel struct {
	BaseModel

	Name        string  `json:"name" gorm:"uniqueIndex"`
	Description *string `json:"description"`

	AccountID *uint    `json:"account_id"`
	Account   *Account `json:"account,omitempty"`

	Messages []Message `json:"messages,omitempty"`
}
