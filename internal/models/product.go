package models

import (
	"time"
)

// Product price is an integer amount; fractional currency is not supported.
type Product struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"category"`
	Price     int64     `gorm:"not null" json:"price"`
	Available bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
