package models

import "time"

// Vendor is a catalog entry. AvailableDays holds Monday-based weekday
// indices (0 = Monday ... 6 = Sunday).
type Vendor struct {
	Name          string    `gorm:"primaryKey;type:varchar(120)" json:"name" yaml:"name"`
	Service       string    `gorm:"type:varchar(120)" json:"service" yaml:"service"`
	Price         float64   `gorm:"not null;default:0" json:"price" yaml:"price"`
	AvailableDays []int     `gorm:"serializer:json;not null" json:"available_days" yaml:"available_days"`
	CreatedAt     time.Time `json:"-" yaml:"-"`
	UpdatedAt     time.Time `json:"-" yaml:"-"`
}
