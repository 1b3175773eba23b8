package comments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

// Handler exposes the comment endpoints.
type Handler struct {
	service Service
}

// NewHandler creates a comment Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the comment endpoints with per-route auth
// middleware: posting requires a viewer, reading does not.
func (h *Handler) RegisterRoutes(router chi.Router, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	router.With(requireAuth).Post("/{tweetID}/comments", h.HandleCreate())
	router.With(optionalAuth).Get("/{tweetID}/comments", h.HandleList())
}

func tweetIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tweetID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("invalid tweet id", err)
	}
	return id, nil
}

// HandleCreate godoc
// @Summary Comment on a tweet
// @Tags Comments
// @Accept json
// @Produce json
// @Param tweetID path int true "Tweet ID"
// @Param commentBody body comments.CreateCommentRequest true "Comment content, 1-280 characters"
// @Success 201 {object} auth.Response "Comment created"
// @Failure 400 {object} auth.Response "Invalid content or id"
// @Failure 401 {object} auth.Response "Not authenticated"
// @Failure 404 {object} auth.Response "Tweet not found"
// @Security BearerAuth
// @Router /tweets/{tweetID}/comments [post]
func (h *Handler) HandleCreate() http.HandlerFunc {
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

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := auth.ValidateStruct(req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		view, err := h.service.Add(r.Context(), viewer.ID, tweetID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusCreated, "comment created", view)
	}
}

// HandleList godoc
// @Summary List a tweet's comments
// @Description Returns comments oldest first. Unknown tweet ids yield an
// @Description empty list.
// @Tags Comments
// @Produce json
// @Param tweetID path int true "Tweet ID"
// @Success 200 {object} auth.Response "Comments"
// @Failure 400 {object} auth.Response "Invalid id"
// @Router /tweets/{tweetID}/comments [get]
func (h *Handler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweetID, err := tweetIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		views, err := h.service.ListForTweet(r.Context(), tweetID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteSuccess(w, http.StatusOK, "", views)
	}
}
