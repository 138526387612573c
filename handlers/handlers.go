package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/adilet-b/folio/auth"
	"github.com/adilet-b/folio/config"
	"github.com/adilet-b/folio/middleware"
	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	Secret       []byte
	CookieDomain string
	CookieSecure bool
}

func New(db *gorm.DB, cfg config.Config) *DBHandler {
	return &DBHandler{
		DB:           db,
		Secret:       []byte(cfg.JWTSecret),
		CookieDomain: cfg.CookieDomain,
		CookieSecure: cfg.CookieSecure(),
	}
}

// RegisterRoutes wires every route onto mux. The mux still needs to be
// wrapped in middleware.LoadUser so sessions resolve.
func (db *DBHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", db.Home)

	mux.HandleFunc("GET /register", db.ShowRegister)
	mux.HandleFunc("POST /register", db.Register)
	mux.HandleFunc("GET /login", db.ShowLogin)
	mux.HandleFunc("POST /login", db.Login)
	mux.HandleFunc("GET /logout", db.Logout)

	// Onboarding wizard, in order
	mux.HandleFunc("GET /make-portfolio", middleware.RequireUser(db.ShowProfileForm))
	mux.HandleFunc("POST /make-portfolio", middleware.RequireUser(db.SubmitProfile))
	mux.HandleFunc("GET /add-projects", middleware.RequireUser(db.ShowProjectForm))
	mux.HandleFunc("POST /add-projects", middleware.RequireUser(db.SubmitProject))
	mux.HandleFunc("GET /add-skills", middleware.RequireUser(db.ShowSkillForm))
	mux.HandleFunc("POST /add-skills", middleware.RequireUser(db.SubmitSkill))

	// Standalone additions after onboarding
	mux.HandleFunc("GET /add-new-project", middleware.RequireUser(db.ShowNewProjectForm))
	mux.HandleFunc("POST /add-new-project", middleware.RequireUser(db.SubmitNewProject))
	mux.HandleFunc("GET /add-new-skills", middleware.RequireUser(db.ShowNewSkillForm))
	mux.HandleFunc("POST /add-new-skills", middleware.RequireUser(db.SubmitNewSkill))

	// Edits and deletes, owner only
	mux.HandleFunc("GET /edit/{$}", middleware.RequireUser(db.ShowEditProfile))
	mux.HandleFunc("POST /edit/{$}", middleware.RequireUser(db.EditProfile))
	mux.HandleFunc("GET /edit-project/{$}", middleware.RequireUser(db.ShowEditProject))
	mux.HandleFunc("POST /edit-project/{$}", middleware.RequireUser(db.EditProject))
	mux.HandleFunc("GET /delete-project", middleware.RequireUser(db.DeleteProject))

	// Public portfolio, by display name or share slug
	mux.HandleFunc("GET /pr/{name}", db.Portfolio)
	mux.HandleFunc("GET /p/{publicID}", db.PortfolioByPublicID)
}

func (db *DBHandler) Home(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)
	db.render(w, "index.html", &formPage{basePage: db.newBasePage(w, r, "Portfolio Builder", user)})
}

// setSession issues the login cookie for a user.
func (db *DBHandler) setSession(w http.ResponseWriter, userID uint) error {
	token, err := auth.CreateToken(userID, db.Secret, auth.SessionTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   db.CookieDomain,
		HttpOnly: true,
		Secure:   db.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionTTL / time.Second),
	})
	return nil
}

func (db *DBHandler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   db.CookieDomain,
		HttpOnly: true,
		Secure:   db.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

const flashCookie = "flash"

// setFlash queues a one-shot message for the next rendered page.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the queued flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

// portfolioPath builds the public portfolio URL for a user.
func portfolioPath(user *models.User) string {
	return "/pr/" + url.PathEscape(user.Name)
}
