package models

import "gorm.io/gorm"

// Project is one portfolio entry owned by a user.
type Project struct {
	gorm.Model
	Name        string `gorm:"not null;size:250"`
	Tools       string `gorm:"not null;size:250"`
	Description string `gorm:"not null;size:250"`
	GitHub      string `gorm:"size:250"`
	Link        string `gorm:"size:250"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
