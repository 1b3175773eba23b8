package follows

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

// Handler exposes the follow endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a follow Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the follow endpoints. The router passed in must
// already require authentication.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/{followingID}/follow", h.HandleFollow())
	router.Delete("/{followingID}/follow", h.HandleUnfollow())
}

func followingIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "followingID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("invalid user id", err)
	}
	return id, nil
}

// HandleFollow godoc
// @Summary Follow a user
// @Tags Users
// @Produce json
// @Param followingID path int true "ID of the user to follow"
// @Success 201 {object} auth.Response "Follow created"
// @Failure 400 {object} auth.Response "Self-follow or invalid id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 404 {object} auth.Response "User not found"
// @Failure 409 {object} auth.Response "Already following"
// @Security BearerAuth
// @Router /users/{followingID}/follow [post]
func (h *Handler) HandleFollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		followingID, err := followingIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		follow, err := h.service.Follow(r.Context(), viewer.ID, followingID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusCreated, "user followed", follow)
	}
}

// HandleUnfollow godoc
// @Summary Unfollow a user
// @Tags Users
// @Produce json
// @Param followingID path int true "ID of the user to unfollow"
// @Success 200 {object} auth.Response "Follow removed"
// @Failure 400 {object} auth.Response "Invalid id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 404 {object} auth.Response "Not following this user"
// @Security BearerAuth
// @Router /users/{followingID}/follow [delete]
func (h *Handler) HandleUnfollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		followingID, err := followingIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Unfollow(r.Context(), viewer.ID, followingID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "user unfollowed", nil)
	}
}
