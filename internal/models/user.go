package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Derived views of owned rows; the foreign keys on Wallet and History
	// are the source of truth.
	Wallets []Wallet `gorm:"foreignKey:UserID" json:"wallets,omitempty"`
	History *History `gorm:"foreignKey:UserID" json:"history,omitempty"`
}

// Same reports whether both records are the same persisted user.
// A record without an assigned id is never the same as anything.
func (u *User) Same(other *User) bool {
	return u != nil && other != nil && u.ID != 0 && u.ID == other.ID
}
