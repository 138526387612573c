package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adilet-b/folio/auth"
	"github.com/adilet-b/folio/middleware"
	"github.com/adilet-b/folio/models"
)

var testDBCounter atomic.Int64

// newTestServer builds a handler over a fresh in-memory database and returns
// it with the fully wired HTTP stack (routes plus session middleware).
func newTestServer(t *testing.T) (*DBHandler, http.Handler) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Project{}, &models.Skill{}))

	handler := &DBHandler{DB: db, Secret: []byte("test-secret")}
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return handler, middleware.LoadUser(db, handler.Secret)(mux)
}

func seedUser(t *testing.T, db *DBHandler, name, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PublicID:     "pid-" + name,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func sessionCookie(t *testing.T, db *DBHandler, userID uint) *http.Cookie {
	t.Helper()

	token, err := auth.CreateToken(userID, db.Secret, auth.SessionTTL)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doGet(srv http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func doPost(srv http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func profileFormValues() url.Values {
	return url.Values{
		"role":   {"eng"},
		"about":  {"bio"},
		"github": {"https://github.com/alice"},
	}
}

func projectFormValues(name string) url.Values {
	return url.Values{
		"project_name": {name},
		"tools":        {"x"},
		"description":  {"d"},
	}
}
