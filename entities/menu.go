package entities

import (
	"github.com/shopspring/decimal"
)

type Menu struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Dishes []Dish `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"dishes,omitempty"`
	Timestamp
}

type Dish struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	MenuID       uint            `gorm:"not null;index" json:"menu"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PrepTime     uint            `json:"prep_time"` // minutes
	IsVegetarian bool            `gorm:"default:false" json:"is_vegetarian"`
	ImageURL     string          `json:"image,omitempty"`

	Menu *Menu `gorm:"foreignKey:MenuID" json:"-"`
	Timestamp
}
