package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adilet-b/folio/middleware"
	"github.com/adilet-b/folio/models"
)

func TestWizard_EndToEnd(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)

	// register -> profile -> project -> skill -> published portfolio
	rr := doPost(srv, "/register", registerValues("Alice", "a@x.com", "pw1"))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	cookie := responseCookie(rr, middleware.SessionCookie)
	require.NotNil(t, cookie)

	var user models.User
	require.NoError(t, db.Where("name = ?", "Alice").First(&user).Error)
	wizard := fmt.Sprintf("?id=%d", user.ID)

	rr = doPost(srv, "/make-portfolio"+wizard, profileFormValues(), cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/add-projects"+wizard, rr.Header().Get("Location"))

	rr = doPost(srv, "/add-projects"+wizard, projectFormValues("P1"), cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/add-skills"+wizard, rr.Header().Get("Location"))

	rr = doPost(srv, "/add-skills"+wizard, url.Values{"skill": {"Go"}}, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/pr/Alice", rr.Header().Get("Location"))

	rr = doGet(srv, "/pr/Alice")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "Alice")
	require.Contains(t, body, "eng")
	require.Contains(t, body, "P1")
	require.Contains(t, body, "Go")

	var profiles, projects, skills int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Project{}).Where("user_id = ?", user.ID).Count(&projects).Error)
	require.NoError(t, db.Model(&models.Skill{}).Where("user_id = ?", user.ID).Count(&skills).Error)
	require.EqualValues(t, 1, profiles)
	require.EqualValues(t, 1, projects)
	require.EqualValues(t, 1, skills)
}

func TestSubmitProfile_RejectsBadURL(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)
	user := seedUser(t, db, "Alice", "a@x.com")
	cookie := sessionCookie(t, db, user.ID)

	form := url.Values{
		"role":   {"eng"},
		"about":  {"bio"},
		"github": {"not a url"},
	}
	rr := doPost(srv, fmt.Sprintf("/make-portfolio?id=%d", user.ID), form, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "must be a valid URL")

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSubmitProfile_TwiceKeepsSingleRow(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)
	user := seedUser(t, db, "Alice", "a@x.com")
	cookie := sessionCookie(t, db, user.ID)
	path := fmt.Sprintf("/make-portfolio?id=%d", user.ID)

	rr := doPost(srv, path, profileFormValues(), cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	second := url.Values{"role": {"manager"}, "about": {"new bio"}}
	rr = doPost(srv, path, second, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	var profiles []models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	require.Equal(t, "manager", profiles[0].Role)
	require.Equal(t, "new bio", profiles[0].About)
}

func TestWizard_ForbiddenForOtherUser(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)
	alice := seedUser(t, db, "Alice", "a@x.com")
	bob := seedUser(t, db, "Bob", "b@x.com")
	bobCookie := sessionCookie(t, db, bob.ID)

	rr := doPost(srv, fmt.Sprintf("/make-portfolio?id=%d", alice.ID), profileFormValues(), bobCookie)
	require.Equal(t, http.StatusForbidden, rr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestWizard_AnonymousRedirectsToLogin(t *testing.T) {
	t.Parallel()
	_, srv := newTestServer(t)

	rr := doPost(srv, "/make-portfolio?id=1", profileFormValues())
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestEditProfile_OverwritesFields(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)
	user := seedUser(t, db, "Alice", "a@x.com")
	cookie := sessionCookie(t, db, user.ID)
	require.NoError(t, db.Create(&models.Profile{Role: "eng", About: "bio", UserID: user.ID}).Error)

	form := url.Values{
		"role":     {"principal eng"},
		"about":    {"longer bio"},
		"linkedin": {"https://linkedin.com/in/alice"},
	}
	rr := doPost(srv, fmt.Sprintf("/edit/?id=%d", user.ID), form, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/pr/Alice", rr.Header().Get("Location"))

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, "principal eng", profile.Role)
	require.Equal(t, "longer bio", profile.About)
	require.Equal(t, "https://linkedin.com/in/alice", profile.LinkedIn)
}

func TestShowEditProfile_WithoutProfileRedirectsToWizard(t *testing.T) {
	t.Parallel()
	db, srv := newTestServer(t)
	user := seedUser(t, db, "Alice", "a@x.com")

	rr := doGet(srv, fmt.Sprintf("/edit/?id=%d", user.ID), sessionCookie(t, db, user.ID))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, fmt.Sprintf("/make-portfolio?id=%d", user.ID), rr.Header().Get("Location"))
}
