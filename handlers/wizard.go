package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/adilet-b/folio/models"
	"github.com/adilet-b/folio/utils"
)

// wizardUser resolves the ?id= query parameter and verifies it names the
// authenticated caller. The wizard carries the target user id between steps,
// but no step may write rows for anyone but the session's own user.
func (db *DBHandler) wizardUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	current, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	raw := r.URL.Query().Get("id")
	if raw == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return nil, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return nil, false
	}

	if uint(id) != current.ID {
		log.Printf("wizardUser: user %d attempted to act as user %d", current.ID, id)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}

	return current, true
}
