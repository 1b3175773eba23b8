// HTTP handlers for the users module.
package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

// Handlers wraps the users Service with HTTP handlers.
type Handlers struct {
	service Service
}

// NewHandlers creates a users Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the user endpoints with per-route auth middleware.
func (h *Handlers) RegisterRoutes(router chi.Router, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	router.With(optionalAuth).Get("/", h.HandleList())
	router.With(requireAuth).Put("/", h.HandleUpdateProfile())
	router.With(optionalAuth).Get("/{username}", h.HandleGetProfile())
}

// HandleList godoc
// @Summary List users
// @Description Discovery listing, 8 users per page, newest accounts first,
// @Description excluding the viewer.
// @Tags Users
// @Produce json
// @Param page query int false "1-indexed page"
// @Success 200 {object} auth.Response "Users page"
// @Router /users [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := auth.ViewerFromContext(r.Context())
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		items, meta, err := h.service.List(r.Context(), auth.ViewerID(viewer), page)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccessMeta(w, http.StatusOK, items, meta)
	}
}

// HandleGetProfile godoc
// @Summary Get a user profile
// @Description Profile page with counts, follow state, and the user's
// @Description tweets decorated for the viewer.
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} auth.Response "Profile"
// @Failure 404 {object} auth.Response "User not found"
// @Router /users/{username} [get]
func (h *Handlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := auth.ViewerFromContext(r.Context())
		username := chi.URLParam(r, "username")

		profile, err := h.service.GetProfile(r.Context(), username, auth.ViewerID(viewer))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "", profile)
	}
}

// HandleUpdateProfile godoc
// @Summary Update the viewer's profile
// @Description Partial update of name and image URL. Username cannot change.
// @Tags Users
// @Accept json
// @Produce json
// @Param updateBody body users.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} auth.Response "Updated user"
// @Failure 400 {object} auth.Response "Invalid input"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Security BearerAuth
// @Router /users [put]
func (h *Handlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := auth.ValidateStruct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		updated, err := h.service.UpdateProfile(r.Context(), viewer.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "profile updated", updated)
	}
}
