package identity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// AuthUser is the authenticated identity attached to a request. The identity
// provider is external; only the opaque subject and the email cross into this
// system.
type AuthUser struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

func (u AuthUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user", u.UserID),
		slog.String("email", u.Email),
	)
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "bookkeep context value " + k.name
}

var (
	AuthUserKey = &contextKey{"AuthUser"}
)

// FromContext returns the AuthUser attached to the request context, if any
func FromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(AuthUserKey).(*AuthUser)
	return user, ok
}

// AuthUserMiddleware extracts the verified JWT claims into an AuthUser and
// attaches it to the request context. It must run after jwtauth.Verifier.
func AuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("missing or invalid JWT: %v", err), http.StatusUnauthorized)
			return
		}

		authUser := &AuthUser{}
		if sub, ok := claims["sub"].(string); ok {
			authUser.UserID = sub
		}
		if email, ok := claims["email"].(string); ok {
			authUser.Email = email
		}
		if authUser.UserID == "" {
			slog.Error("JWT claims missing subject")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AuthUserKey, authUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
