package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/adilet-b/folio/models"
	"gorm.io/gorm"
)

func (f profileForm) apply(profile *models.Profile) {
	profile.Role = f.Role
	profile.About = f.About
	profile.ResumeURL = f.Resume
	profile.GitHub = f.GitHub
	profile.LinkedIn = f.LinkedIn
}

// GET /make-portfolio?id=
func (db *DBHandler) ShowProfileForm(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}
	db.render(w, "make-cv.html", db.newFormPage(w, r, "Your Resume", fmt.Sprintf("/make-portfolio?id=%d", user.ID)))
}

// POST /make-portfolio?id=
//
// Second wizard step. The profile is one row per user; submitting the form
// again overwrites that row rather than inserting a sibling.
func (db *DBHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}

	form := parseProfileForm(r)
	page := db.newFormPage(w, r, "Your Resume", fmt.Sprintf("/make-portfolio?id=%d", user.ID))
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "make-cv.html", page)
		return
	}

	if err := db.saveProfile(user.ID, form); err != nil {
		log.Printf("SubmitProfile: failed to save profile for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/add-projects?id=%d", user.ID), http.StatusSeeOther)
}

func (db *DBHandler) saveProfile(userID uint, form profileForm) error {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.Profile{UserID: userID}
		form.apply(&profile)
		return db.Create(&profile).Error
	case err != nil:
		return err
	default:
		form.apply(&profile)
		return db.Save(&profile).Error
	}
}

// GET /edit/?id=
func (db *DBHandler) ShowEditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		setFlash(w, "Fill in your resume first.")
		http.Redirect(w, r, fmt.Sprintf("/make-portfolio?id=%d", user.ID), http.StatusSeeOther)
		return
	}

	page := db.newFormPage(w, r, "Edit Your Resume", fmt.Sprintf("/edit/?id=%d", user.ID))
	page.Form = map[string]string{
		"role":     profile.Role,
		"about":    profile.About,
		"resume":   profile.ResumeURL,
		"github":   profile.GitHub,
		"linkedin": profile.LinkedIn,
	}
	db.render(w, "make-cv.html", page)
}

// POST /edit/?id=
func (db *DBHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}

	form := parseProfileForm(r)
	page := db.newFormPage(w, r, "Edit Your Resume", fmt.Sprintf("/edit/?id=%d", user.ID))
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "make-cv.html", page)
		return
	}

	if err := db.saveProfile(user.ID, form); err != nil {
		log.Printf("EditProfile: failed to save profile for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, portfolioPath(user), http.StatusSeeOther)
}
