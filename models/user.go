package models

import "gorm.io/gorm"

// User represents a registered account. Name doubles as the public
// portfolio lookup key, so it carries a unique index alongside Email.
type User struct {
	gorm.Model
	Name         string    `gorm:"uniqueIndex;not null;size:250"`
	Email        string    `gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string    `gorm:"not null;size:100" json:"-"`
	PublicID     string    `gorm:"size:100;uniqueIndex"`
	Profile      *Profile  `gorm:"foreignKey:UserID"`
	Projects     []Project `gorm:"foreignKey:UserID"`
	Skills       []Skill   `gorm:"foreignKey:UserID"`
}
