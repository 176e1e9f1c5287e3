package models

type Account struct {
	BaseModel

	Email    string `json:"email" gorm:"uniqueIndex"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Avatar   string `json:"avatar"`

	PasswordHash string `json:"-"`

	Messages  []Message  `json:"messages,omitempty" gorm:"foreignKey:SenderID"`
	Reactions []Reaction `json:"reactions,omitempty" gorm:"foreignKey:AccountID"`
}
