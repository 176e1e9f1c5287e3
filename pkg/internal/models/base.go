package models

import "time"

// BaseModel holds the columns every collection shares. Deletes are hard,
// so there is no tombstone column.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
