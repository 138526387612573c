package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
	"gorm.io/gorm"
)

// GET /pr/{name}
//
// The public portfolio view. No auth: anyone with the link can read it.
func (db *DBHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	var owner models.User
	if err := db.Where("name = ?", name).First(&owner).Error; err != nil {
		log.Printf("Portfolio: user not found for name=%s: %v", name, err)
		http.Error(w, fmt.Sprintf("No portfolio for %s", name), http.StatusNotFound)
		return
	}

	db.renderPortfolio(w, r, owner)
}

// GET /p/{publicID}
//
// Same view, reached through the share slug instead of the display name.
func (db *DBHandler) PortfolioByPublicID(w http.ResponseWriter, r *http.Request) {
	publicID := r.PathValue("publicID")
	if publicID == "" {
		http.Error(w, "ID is required", http.StatusBadRequest)
		return
	}

	var owner models.User
	if err := db.Where("public_id = ?", publicID).First(&owner).Error; err != nil {
		log.Printf("PortfolioByPublicID: user not found for publicID=%s: %v", publicID, err)
		http.Error(w, "Portfolio not found", http.StatusNotFound)
		return
	}

	db.renderPortfolio(w, r, owner)
}

func (db *DBHandler) renderPortfolio(w http.ResponseWriter, r *http.Request, owner models.User) {
	var profile models.Profile
	hasProfile := true
	if err := db.Where("user_id = ?", owner.ID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("renderPortfolio: failed to load profile for userID=%d: %v", owner.ID, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		hasProfile = false
	}

	var projects []models.Project
	if err := db.Where("user_id = ?", owner.ID).Order("id asc").Find(&projects).Error; err != nil {
		log.Printf("renderPortfolio: failed to load projects for userID=%d: %v", owner.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var skills []models.Skill
	if err := db.Where("user_id = ?", owner.ID).Order("id asc").Find(&skills).Error; err != nil {
		log.Printf("renderPortfolio: failed to load skills for userID=%d: %v", owner.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	current, _ := utils.CurrentUser(r)
	page := &portfolioPage{
		basePage: db.newBasePage(w, r, owner.Name, current),
		Owner:    owner,
		Projects: projects,
		Skills:   skills,
	}
	if hasProfile {
		page.Profile = &profile
	}
	db.render(w, "portfolio.html", page)
}
