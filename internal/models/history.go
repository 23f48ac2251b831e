package models

import (
	"time"
)

// History is a user's append-only activity log. Exactly one per user,
// created together with it.
type History struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Detail    string `gorm:"type:text;not null" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Append adds one entry as a new line at the end of the log.
func (h *History) Append(entry string) {
	if h.Detail == "" {
		h.Detail = entry
		return
	}
	h.Detail += "\n" + entry
}
