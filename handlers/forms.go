package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

// Validation mirrors the form rules: required text fields, and link fields
// that are optional but must be http(s) URLs when present. Nothing is
// persisted while any field fails.

func isURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func requireField(errors map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = message
	}
}

func requireURL(errors map[string]string, field, value string) {
	if value != "" && !isURL(value) {
		errors[field] = "must be a valid URL"
	}
}

type registerForm struct {
	Name     string
	Email    string
	Password string
}

func parseRegisterForm(r *http.Request) registerForm {
	return registerForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
}

func (f registerForm) validate() map[string]string {
	errors := map[string]string{}
	requireField(errors, "name", f.Name, "name is required")
	requireField(errors, "email", f.Email, "email is required")
	requireField(errors, "password", f.Password, "password is required")
	return errors
}

func (f registerForm) values() map[string]string {
	return map[string]string{"name": f.Name, "email": f.Email}
}

type loginForm struct {
	Email    string
	Password string
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
}

func (f loginForm) validate() map[string]string {
	errors := map[string]string{}
	requireField(errors, "email", f.Email, "email is required")
	requireField(errors, "password", f.Password, "password is required")
	return errors
}

func (f loginForm) values() map[string]string {
	return map[string]string{"email": f.Email}
}

type profileForm struct {
	Role     string
	About    string
	Resume   string
	GitHub   string
	LinkedIn string
}

func parseProfileForm(r *http.Request) profileForm {
	return profileForm{
		Role:     strings.TrimSpace(r.FormValue("role")),
		About:    strings.TrimSpace(r.FormValue("about")),
		Resume:   strings.TrimSpace(r.FormValue("resume")),
		GitHub:   strings.TrimSpace(r.FormValue("github")),
		LinkedIn: strings.TrimSpace(r.FormValue("linkedin")),
	}
}

func (f profileForm) validate() map[string]string {
	errors := map[string]string{}
	requireField(errors, "role", f.Role, "role is required")
	requireField(errors, "about", f.About, "tell us something about yourself")
	requireURL(errors, "resume", f.Resume)
	requireURL(errors, "github", f.GitHub)
	requireURL(errors, "linkedin", f.LinkedIn)
	return errors
}

func (f profileForm) values() map[string]string {
	return map[string]string{
		"role":     f.Role,
		"about":    f.About,
		"resume":   f.Resume,
		"github":   f.GitHub,
		"linkedin": f.LinkedIn,
	}
}

type projectForm struct {
	Name        string
	Tools       string
	Description string
	GitHub      string
	Link        string
}

func parseProjectForm(r *http.Request) projectForm {
	return projectForm{
		Name:        strings.TrimSpace(r.FormValue("project_name")),
		Tools:       strings.TrimSpace(r.FormValue("tools")),
		Description: strings.TrimSpace(r.FormValue("description")),
		GitHub:      strings.TrimSpace(r.FormValue("github")),
		Link:        strings.TrimSpace(r.FormValue("link")),
	}
}

func (f projectForm) validate() map[string]string {
	errors := map[string]string{}
	requireField(errors, "project_name", f.Name, "project name is required")
	requireField(errors, "tools", f.Tools, "tools are required")
	requireField(errors, "description", f.Description, "description is required")
	requireURL(errors, "github", f.GitHub)
	requireURL(errors, "link", f.Link)
	return errors
}

func (f projectForm) values() map[string]string {
	return map[string]string{
		"project_name": f.Name,
		"tools":        f.Tools,
		"description":  f.Description,
		"github":       f.GitHub,
		"link":         f.Link,
	}
}

type skillForm struct {
	Skill string
}

func parseSkillForm(r *http.Request) skillForm {
	return skillForm{Skill: strings.TrimSpace(r.FormValue("skill"))}
}

func (f skillForm) validate() map[string]string {
	errors := map[string]string{}
	requireField(errors, "skill", f.Skill, "skill is required")
	return errors
}

func (f skillForm) values() map[string]string {
	return map[string]string{"skill": f.Skill}
}
