package handlers

import (
	"fmt"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/adilet-b/folio/auth"
	"github.com/adilet-b/folio/models"
)

func (db *DBHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	db.render(w, "register.html", db.newFormPage(w, r, "Sign Up", "/register"))
}

func (db *DBHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := parseRegisterForm(r)
	page := db.newFormPage(w, r, "Sign Up", "/register")
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "register.html", page)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		log.Printf("Register: email %s already registered", form.Email)
		setFlash(w, "That email is already registered, use it to log in instead.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		log.Printf("Register: failed to hash password: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		log.Printf("Register: failed to generate public ID: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
		PublicID:     publicID,
	}
	if err := db.Create(&user).Error; err != nil {
		// The email was free a moment ago, so the unique index that fired
		// is almost certainly the one on name.
		log.Printf("Register: failed to create user: %v", err)
		page.Errors["name"] = "that name is already taken"
		db.render(w, "register.html", page)
		return
	}

	if err := db.setSession(w, user.ID); err != nil {
		log.Printf("Register: failed to create session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Printf("Register: created user %s (id=%d)", user.Name, user.ID)
	http.Redirect(w, r, fmt.Sprintf("/make-portfolio?id=%d", user.ID), http.StatusSeeOther)
}

func (db *DBHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	db.render(w, "login.html", db.newFormPage(w, r, "Log In", "/login"))
}

func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := parseLoginForm(r)
	page := db.newFormPage(w, r, "Log In", "/login")
	page.Form = form.values()

	if errs := form.validate(); len(errs) > 0 {
		page.Errors = errs
		db.render(w, "login.html", page)
		return
	}

	var user models.User
	if err := db.Where("email = ?", form.Email).First(&user).Error; err != nil {
		page.Errors["email"] = "no account with that email"
		db.render(w, "login.html", page)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, form.Password); err != nil {
		page.Errors["password"] = "wrong password"
		db.render(w, "login.html", page)
		return
	}

	if err := db.setSession(w, user.ID); err != nil {
		log.Printf("Login: failed to create session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "You were successfully logged in.")
	http.Redirect(w, r, portfolioPath(&user), http.StatusSeeOther)
}

func (db *DBHandler) Logout(w http.ResponseWriter, r *http.Request) {
	db.clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
