package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cryptocurrency struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Symbol string `gorm:"uniqueIndex;size:12;not null" json:"symbol"`
	// Fiat per unit; unset until an operator configures one.
	CurrentPrice decimal.NullDecimal `gorm:"type:decimal(20,8)" json:"current_price"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// HasPrice reports whether a positive price is configured.
func (c *Cryptocurrency) HasPrice() bool {
	return c.CurrentPrice.Valid && c.CurrentPrice.Decimal.IsPositive()
}

// Price returns the configured price, or zero when unset.
func (c *Cryptocurrency) Price() decimal.Decimal {
	if !c.CurrentPrice.Valid {
		return decimal.Zero
	}
	return c.CurrentPrice.Decimal
}
