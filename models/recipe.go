package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	UserID      uint            `json:"-" gorm:"not null;index"`
	User        *User           `json:"-" gorm:"foreignKey:UserID"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	TimeMinutes int             `json:"time_minutes" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(5,2)"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Tags        []Tag           `json:"tags" gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient    `json:"ingredients" gorm:"many2many:recipe_ingredients;"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}
