package models

import "gorm.io/gorm"

// Skill is a single tag on a user's portfolio.
type Skill struct {
	gorm.Model
	Label string `gorm:"not null;size:250"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
