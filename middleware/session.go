package middleware

import (
	"net/http"

	"github.com/adilet-b/folio/auth"
	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
	"gorm.io/gorm"
)

// SessionCookie is the cookie that carries the signed session token.
const SessionCookie = "auth_token"

// LoadUser resolves the session cookie into a User and attaches it to the
// request context. Requests without a valid session pass through anonymous.
func LoadUser(db *gorm.DB, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := auth.VerifyToken(cookie.Value, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			var user models.User
			if err := db.First(&user, userID).Error; err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), &user)))
		})
	}
}

// RequireUser redirects anonymous callers to the login form. Mutating routes
// sit behind this so every write can verify ownership against the session.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.CurrentUser(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
