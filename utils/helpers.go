package utils

import (
	"context"
	"net/http"

	"github.com/adilet-b/folio/models"
)

type contextKey string

const userKey contextKey = "user"

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser resolves the authenticated caller from the request context.
// The second return is false for anonymous requests.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
