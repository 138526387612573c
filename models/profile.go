package models

import "gorm.io/gorm"

// Profile holds the resume fields filled in during the second wizard step.
// The unique index on UserID keeps the relation one-to-one: resubmitting the
// profile step updates the existing row instead of inserting a sibling.
type Profile struct {
	gorm.Model
	Role      string `gorm:"not null;size:250"`
	About     string `gorm:"not null;size:250"`
	ResumeURL string `gorm:"size:250"`
	GitHub    string `gorm:"size:250"`
	LinkedIn  string `gorm:"size:250"`

	UserID uint `gorm:"not null;uniqueIndex"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
