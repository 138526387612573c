package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type basePage struct {
	Title       string
	Flash       string
	CurrentUser *models.User
}

// formPage backs every form template. Form carries the submitted (or
// prefilled) values so a failed validation re-renders what the user typed;
// Errors is keyed by field name.
type formPage struct {
	basePage
	Action string
	Form   map[string]string
	Errors map[string]string
}

type portfolioPage struct {
	basePage
	Owner    models.User
	Profile  *models.Profile
	Projects []models.Project
	Skills   []models.Skill
}

func (db *DBHandler) newBasePage(w http.ResponseWriter, r *http.Request, title string, user *models.User) basePage {
	return basePage{
		Title:       title,
		Flash:       popFlash(w, r),
		CurrentUser: user,
	}
}

func (db *DBHandler) newFormPage(w http.ResponseWriter, r *http.Request, title, action string) *formPage {
	user, _ := utils.CurrentUser(r)
	return &formPage{
		basePage: db.newBasePage(w, r, title, user),
		Action:   action,
		Form:     map[string]string{},
		Errors:   map[string]string{},
	}
}

func (db *DBHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render: template %s: %v", name, err)
	}
}
