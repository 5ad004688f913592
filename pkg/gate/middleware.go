package gate

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bookkeephq/bookkeep/pkg/identity"
	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

// RequireRole is the server-side counterpart of the client gate: it checks the
// authenticated user's stored role before letting the request through.
// Unlike the client gate, enforcement here fails closed; a lookup failure
// denies the request rather than letting a write through unchecked.
func RequireRole(lookup RoleLookup, required userrole.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authUser, ok := identity.FromContext(r.Context())
			if !ok {
				slog.Error("Failed to get authenticated user from context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role, err := lookup.GetRole(r.Context(), authUser.UserID)
			if err != nil {
				if errors.Is(err, userrole.ErrAssignmentNotFound) {
					http.Error(w, "Forbidden: no role assigned", http.StatusForbidden)
					return
				}
				slog.Error("Role lookup failed", "userId", authUser.UserID, "err", err)
				http.Error(w, "Server error occurred", http.StatusInternalServerError)
				return
			}

			if role != required {
				slog.Warn("User attempted to access resource without required role",
					"userId", authUser.UserID,
					"role", role,
					"required", required)
				http.Error(w, "Forbidden: "+string(required)+" role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
