package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a wallet's position in one cryptocurrency. At most one row
// exists per (wallet, cryptocurrency) pair.
type Asset struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	WalletID         uint            `gorm:"uniqueIndex:idx_wallet_crypto;not null" json:"wallet_id"`
	CryptocurrencyID uint            `gorm:"uniqueIndex:idx_wallet_crypto;not null" json:"cryptocurrency_id"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"quantity"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Cryptocurrency *Cryptocurrency `gorm:"foreignKey:CryptocurrencyID" json:"cryptocurrency,omitempty"`
}

// FiatValue is quantity times the current price, zero when no price is
// configured. The cryptocurrency must be loaded.
func (a *Asset) FiatValue() decimal.Decimal {
	if a.Cryptocurrency == nil || !a.Cryptocurrency.HasPrice() {
		return decimal.Zero
	}
	return a.Quantity.Mul(a.Cryptocurrency.Price())
}
