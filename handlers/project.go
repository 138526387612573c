package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
)

func (f projectForm) apply(project *models.Project) {
	project.Name = f.Name
	project.Tools = f.Tools
	project.Description = f.Description
	project.GitHub = f.GitHub
	project.Link = f.Link
}

// GET /add-projects?id=
func (db *DBHandler) ShowProjectForm(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}
	db.render(w, "add-projects.html", db.newFormPage(w, r, "Add a Project", fmt.Sprintf("/add-projects?id=%d", user.ID)))
}

// POST /add-projects?id=
//
// Third wizard step; continues to the skills step.
func (db *DBHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	db.createProject(w, r, "/add-projects", func(user *models.User) string {
		return fmt.Sprintf("/add-skills?id=%d", user.ID)
	})
}

// GET /add-new-project?id=
func (db *DBHandler) ShowNewProjectForm(w http.ResponseWriter, r *http.Request) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}
	db.render(w, "add-projects.html", db.newFormPage(w, r, "Add a Project", fmt.Sprintf("/add-new-project?id=%d", user.ID)))
}

// POST /add-new-project?id=
//
// Standalone addition after onboarding; returns to the portfolio.
func (db *DBHandler) SubmitNewProject(w http.ResponseWriter, r *http.Request) {
	db.createProject(w, r, "/add-new-project", portfolioPath)
}

func (db *DBHandler) createProject(w http.ResponseWriter, r *http.Request, path string, next func(*models.User) string) {
	user, ok := db.wizardUser(w, r)
	if !ok {
		return
	}

	form := parseProjectForm(r)
	page := db.newFormPage(w, r, "Add a Project", fmt.Sprintf("%s?id=%d", path, user.ID))
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "add-projects.html", page)
		return
	}

	project := models.Project{UserID: user.ID}
	form.apply(&project)
	if err := db.Create(&project).Error; err != nil {
		log.Printf("createProject: failed to create project for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, next(user), http.StatusSeeOther)
}

// ownProject loads a project by the ?id= query parameter and verifies the
// session user owns it. A valid id alone is not enough to touch the row.
func (db *DBHandler) ownProject(w http.ResponseWriter, r *http.Request) (*models.Project, *models.User, bool) {
	current, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, nil, false
	}

	raw := r.URL.Query().Get("id")
	if raw == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return nil, nil, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return nil, nil, false
	}

	var project models.Project
	if err := db.First(&project, uint(id)).Error; err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return nil, nil, false
	}

	if project.UserID != current.ID {
		log.Printf("ownProject: user %d attempted to access project %d owned by %d", current.ID, project.ID, project.UserID)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, nil, false
	}

	return &project, current, true
}

// GET /edit-project/?id=
func (db *DBHandler) ShowEditProject(w http.ResponseWriter, r *http.Request) {
	project, _, ok := db.ownProject(w, r)
	if !ok {
		return
	}

	page := db.newFormPage(w, r, "Edit Project", fmt.Sprintf("/edit-project/?id=%d", project.ID))
	page.Form = map[string]string{
		"project_name": project.Name,
		"tools":        project.Tools,
		"description":  project.Description,
		"github":       project.GitHub,
		"link":         project.Link,
	}
	db.render(w, "edit-project.html", page)
}

// POST /edit-project/?id=
func (db *DBHandler) EditProject(w http.ResponseWriter, r *http.Request) {
	project, user, ok := db.ownProject(w, r)
	if !ok {
		return
	}

	form := parseProjectForm(r)
	page := db.newFormPage(w, r, "Edit Project", fmt.Sprintf("/edit-project/?id=%d", project.ID))
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "edit-project.html", page)
		return
	}

	form.apply(project)
	if err := db.Save(project).Error; err != nil {
		log.Printf("EditProject: failed to update projectID=%d: %v", project.ID, err)
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, portfolioPath(user), http.StatusSeeOther)
}

// GET /delete-project?id=
func (db *DBHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	project, user, ok := db.ownProject(w, r)
	if !ok {
		return
	}

	if err := db.Delete(project).Error; err != nil {
		log.Printf("DeleteProject: failed to delete projectID=%d: %v", project.ID, err)
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	log.Printf("DeleteProject: deleted projectID=%d for userID=%d", project.ID, user.ID)
	http.Redirect(w, r, portfolioPath(user), http.StatusSeeOther)
}
