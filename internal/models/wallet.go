package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	FiatBalance decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"fiat_balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Derived view; Asset.WalletID is the source of truth.
	Assets []Asset `gorm:"foreignKey:WalletID" json:"assets,omitempty"`
}

// Same reports whether both records are the same persisted wallet.
func (w *Wallet) Same(other *Wallet) bool {
	return w != nil && other != nil && w.ID != 0 && w.ID == other.ID
}

// NetWorth is the wallet's fiat balance plus the fiat value of every
// asset position. Positions whose cryptocurrency has no configured price
// contribute zero. Assets and their cryptocurrencies must be loaded.
func (w *Wallet) NetWorth() decimal.Decimal {
	total := w.FiatBalance
	for _, asset := range w.Assets {
		total = total.Add(asset.FiatValue())
	}
	return total
}
