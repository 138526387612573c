package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/adilet-b/folio/models"
)

// GET /add-skills?id=
func (db *DBHandler) ShowSkillForm(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}
	db.render(w, "add-skills.html", db.newFormPage(w, r, "Add Skills", fmt.Sprintf("/add-skills?id=%d", user.ID)))
}

// POST /add-skills?id=
//
// Final wizard step; lands on the published portfolio.
func (db *DBHandler) SubmitSkill(w http.ResponseWriter, r *http.Request) {
	db.createSkill(w, r, "/add-skills")
}

// GET /add-new-skills?id=
func (db *DBHandler) ShowNewSkillForm(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}
	db.render(w, "add-skills.html", db.newFormPage(w, r, "Add Skills", fmt.Sprintf("/add-new-skills?id=%d", user.ID)))
}

// POST /add-new-skills?id=
func (db *DBHandler) SubmitNewSkill(w http.ResponseWriter, r *http.Request) {
	db.createSkill(w, r, "/add-new-skills")
}

func (db *DBHandler) createSkill(w http.ResponseWriter, r *http.Request, path string) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}

	form := parseSkillForm(r)
	page := db.newFormPage(w, r, "Add Skills", fmt.Sprintf("%s?id=%d", path, user.ID))
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "add-skills.html", page)
		return
	}

	skill := models.Skill{Label: form.Skill, UserID: user.ID}
	if err := db.Create(&skill).Error; err != nil {
		log.Printf("createSkill: failed to create skill for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to create skill", http.StatusInternalServerError)
		return
	}

	// Re-read the owner row so the redirect uses the stored display name.
	var owner models.User
	if err := db.First(&owner, user.ID).Error; err != nil {
		log.Printf("createSkill: failed to load userID=%d: %v", user.ID, err)
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, portfolioPath(&owner), http.StatusSeeOther)
}
