package likes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
)

type mockService struct {
	mock.Mock
}

var _ Service = (*mockService)(nil)

func (m *mockService) Like(ctx context.Context, viewerID, tweetID int64) (*Like, error) {
	args := m.Called(ctx, viewerID, tweetID)
	if v := args.Get(0); v != nil {
		return v.(*Like), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Unlike(ctx context.Context, viewerID, tweetID int64) error {
	return m.Called(ctx, viewerID, tweetID).Error(0)
}

func (m *mockService) LikeStatus(ctx context.Context, viewerID *int64, tweetIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, viewerID, tweetIDs)
	if v := args.Get(0); v != nil {
		return v.(map[int64]bool), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) CountsFor(ctx context.Context, tweetIDs []int64) (map[int64]Counts, error) {
	args := m.Called(ctx, tweetIDs)
	if v := args.Get(0); v != nil {
		return v.(map[int64]Counts), args.Error(1)
	}
	return nil, args.Error(1)
}

func likeRequest(t *testing.T, method, tweetID string, viewerID int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, "/tweets/"+tweetID+"/like", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("tweetID", tweetID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	if viewerID > 0 {
		req = req.WithContext(auth.NewContextWithViewer(req.Context(), &auth.Viewer{ID: viewerID, Username: "tester"}))
	}
	return req
}

func TestHandleLike(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Like", mock.Anything, int64(1), int64(10)).
		Return(&Like{ID: 3, UserID: 1, TweetID: 10}, nil)

	rec := httptest.NewRecorder()
	h.HandleLike()(rec, likeRequest(t, http.MethodPost, "10", 1))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleLikeDuplicate(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Like", mock.Anything, int64(1), int64(10)).
		Return(nil, apperror.NewConflictError("you have already liked this tweet", nil))

	rec := httptest.NewRecorder()
	h.HandleLike()(rec, likeRequest(t, http.MethodPost, "10", 1))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp auth.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
}

func TestHandleLikeUnknownTweet(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Like", mock.Anything, int64(1), int64(99)).
		Return(nil, apperror.NewNotFoundError("tweet not found", nil))

	rec := httptest.NewRecorder()
	h.HandleLike()(rec, likeRequest(t, http.MethodPost, "99", 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUnlikeMissingLike(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Unlike", mock.Anything, int64(1), int64(10)).
		Return(apperror.NewNotFoundError("like not found", nil))

	rec := httptest.NewRecorder()
	h.HandleUnlike()(rec, likeRequest(t, http.MethodDelete, "10", 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLikeInvalidID(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	rec := httptest.NewRecorder()
	h.HandleLike()(rec, likeRequest(t, http.MethodPost, "abc", 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Like")
}
