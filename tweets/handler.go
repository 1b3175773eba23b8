package tweets

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

// Handler exposes the tweet endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a tweet Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the tweet endpoints with per-route auth middleware.
func (h *Handler) RegisterRoutes(router chi.Router, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	router.With(requireAuth).Post("/", h.HandleCreate())
	router.With(optionalAuth).Get("/", h.HandleList())
	router.With(requireAuth).Delete("/{tweetID}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Post a tweet
// @Tags Tweets
// @Accept json
// @Produce json
// @Param tweetBody body tweets.CreateTweetRequest true "Tweet content, 1-280 characters"
// @Success 201 {object} auth.Response "Tweet created"
// @Failure 400 {object} auth.Response "Invalid content"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Security BearerAuth
// @Router /tweets [post]
func (h *Handler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		var req CreateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := auth.ValidateStruct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		view, err := h.service.Create(r.Context(), viewer.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusCreated, "tweet created", view)
	}
}

// HandleList godoc
// @Summary List tweets
// @Description Lists a timeline. ?username= selects one user's tweets,
// @Description ?type=global the global timeline; with neither, the
// @Description authenticated viewer's home feed is returned.
// @Tags Tweets
// @Produce json
// @Param username query string false "Profile timeline for this username"
// @Param type query string false "Set to 'global' for the global timeline"
// @Param page query int false "1-indexed page, 10 tweets per page"
// @Success 200 {object} auth.Response "Timeline page"
// @Failure 401 {object} auth.Response "Home feed requested without authentication"
// @Failure 404 {object} auth.Response "Username not found"
// @Router /tweets [get]
func (h *Handler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := auth.ViewerFromContext(r.Context())

		// A non-numeric page falls back to the first page rather than 400.
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		q := ListQuery{
			Username: r.URL.Query().Get("username"),
			Type:     r.URL.Query().Get("type"),
			Page:     page,
		}

		views, meta, err := h.service.List(r.Context(), auth.ViewerID(viewer), q)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccessMeta(w, http.StatusOK, views, meta)
	}
}

// HandleDelete godoc
// @Summary Delete a tweet
// @Description Deletes one of the viewer's own tweets along with its likes
// @Description and comments.
// @Tags Tweets
// @Produce json
// @Param tweetID path int true "Tweet ID"
// @Success 200 {object} auth.Response "Tweet deleted"
// @Failure 400 {object} auth.Response "Invalid id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 403 {object} auth.Response "Not the author"
// @Failure 404 {object} auth.Response "Tweet not found"
// @Security BearerAuth
// @Router /tweets/{tweetID} [delete]
func (h *Handler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := auth.ViewerFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		tweetID, err := strconv.ParseInt(chi.URLParam(r, "tweetID"), 10, 64)
		if err != nil || tweetID <= 0 {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid tweet id", err))
			return
		}

		deleted, err := h.service.Delete(r.Context(), tweetID, viewer.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "tweet deleted", deleted)
	}
}
