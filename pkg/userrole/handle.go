package userrole

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	bkerrors "github.com/bookkeephq/bookkeep/pkg/errors"
)

// Handle handles HTTP requests for role assignment
type Handle struct {
	assignmentService *AssignmentService
}

// NewHandle creates a new role assignment handler
func NewHandle(assignmentService *AssignmentService) *Handle {
	return &Handle{
		assignmentService: assignmentService,
	}
}

// SetRoleRequest is the request body for claiming a role
type SetRoleRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RoleResponse is the response body for role operations
type RoleResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Role        Role   `json:"role,omitempty"`
	CurrentRole Role   `json:"currentRole,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// RegisterRoutes registers the role assignment routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/set-role", h.SetRole)
		r.Get("/get-role/{userId}", h.GetRole)
	})
}

// SetRole handles the request to claim a role for an identity
func (h *Handle) SetRole(w http.ResponseWriter, r *http.Request) {
	var req SetRoleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, RoleResponse{Success: false, Message: "Invalid request body"})
		return
	}

	assignment, err := h.assignmentService.AssignRole(r.Context(), req.UserID, req.Email, Role(req.Role))
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, RoleResponse{
				Success:     false,
				Message:     "User already exists with a role assigned",
				CurrentRole: conflict.Existing.Role,
				UserID:      conflict.Existing.UserID,
			})
			return
		}

		var apiErr *bkerrors.Error
		if errors.As(err, &apiErr) {
			render.Status(r, apiErr.HTTPStatusCode())
			render.JSON(w, r, RoleResponse{Success: false, Message: apiErr.Message})
			return
		}

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, RoleResponse{Success: false, Message: "Server error occurred"})
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RoleResponse{
		Success: true,
		Message: "Role assigned successfully",
		Role:    assignment.Role,
	})
}

// GetRole handles the request to look up an identity's role
func (h *Handle) GetRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	role, err := h.assignmentService.GetRole(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, RoleResponse{Success: false, Message: "User not found"})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, RoleResponse{Success: false, Message: "Server error occurred"})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RoleResponse{Success: true, Role: role})
}
