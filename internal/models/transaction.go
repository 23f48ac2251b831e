package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of a completed asset transfer.
// Quantity is denominated in crypto units, not fiat.
type Transaction struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	Reference        string          `gorm:"uniqueIndex;size:36;not null" json:"reference"`
	SenderID         uint            `gorm:"index;not null" json:"sender_id"`
	ReceiverID       uint            `gorm:"index;not null" json:"receiver_id"`
	CryptocurrencyID uint            `gorm:"index;not null" json:"cryptocurrency_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"quantity"`
	CreatedAt        time.Time       `json:"created_at"`

	Sender         *User           `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver       *User           `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Cryptocurrency *Cryptocurrency `gorm:"foreignKey:CryptocurrencyID" json:"cryptocurrency,omitempty"`
}
