package likes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

// Handler exposes the like endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a like Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the like endpoints. The router passed in must
// already require authentication.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/{tweetID}/like", h.HandleLike())
	router.Delete("/{tweetID}/like", h.HandleUnlike())
}

func tweetIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tweetID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("invalid tweet id", err)
	}
	return id, nil
}

// HandleLike godoc
// @Summary Like a tweet
// @Tags Tweets
// @Produce json
// @Param tweetID path int true "Tweet ID"
// @Success 201 {object} auth.Response "Like created"
// @Failure 400 {object} auth.Response "Invalid id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 404 {object} auth.Response "Tweet not found"
// @Failure 409 {object} auth.Response "Already liked"
// @Security BearerAuth
// @Router /tweets/{tweetID}/like [post]
func (h *Handler) HandleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		tweetID, err := tweetIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		like, err := h.service.Like(r.Context(), viewer.ID, tweetID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusCreated, "tweet liked", like)
	}
}

// HandleUnlike godoc
// @Summary Remove a like from a tweet
// @Tags Tweets
// @Produce json
// @Param tweetID path int true "Tweet ID"
// @Success 200 {object} auth.Response "Like removed"
// @Failure 400 {object} auth.Response "Invalid id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 404 {object} auth.Response "Like not found"
// @Security BearerAuth
// @Router /tweets/{tweetID}/like [delete]
func (h *Handler) HandleUnlike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		tweetID, err := tweetIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Unlike(r.Context(), viewer.ID, tweetID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "tweet unliked", nil)
	}
}
