package models

import (
	"time"

	"gorm.io/gorm"
)

type Ingredient struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"not null;index:idx_ingredients_user_name"`
	UserID    uint           `json:"-" gorm:"not null;index:idx_ingredients_user_name"`
	User      *User          `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
