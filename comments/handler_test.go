package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
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

func (m *mockService) Add(ctx context.Context, viewerID, tweetID int64, req CreateCommentRequest) (*CommentView, error) {
	args := m.Called(ctx, viewerID, tweetID, req)
	if v := args.Get(0); v != nil {
		return v.(*CommentView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListForTweet(ctx context.Context, tweetID int64) ([]CommentView, error) {
	args := m.Called(ctx, tweetID)
	if v := args.Get(0); v != nil {
		return v.([]CommentView), args.Error(1)
	}
	return nil, args.Error(1)
}

func commentRequest(t *testing.T, method, tweetID string, viewerID int64, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, "/tweets/"+tweetID+"/comments", body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("tweetID", tweetID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	if viewerID > 0 {
		req = req.WithContext(auth.NewContextWithViewer(req.Context(), &auth.Viewer{ID: viewerID, Username: "tester"}))
	}
	return req
}

func TestHandleCreateComment(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Add", mock.Anything, int64(1), int64(10), CreateCommentRequest{Content: "nice"}).
		Return(&CommentView{ID: 5, TweetID: 10, UserID: 1, Content: "nice"}, nil)

	body := bytes.NewBufferString(`{"content":"nice"}`)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, commentRequest(t, http.MethodPost, "10", 1, body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleCreateCommentUnknownTweet(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Add", mock.Anything, int64(1), int64(99), CreateCommentRequest{Content: "nice"}).
		Return(nil, apperror.NewNotFoundError("tweet not found", nil))

	body := bytes.NewBufferString(`{"content":"nice"}`)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, commentRequest(t, http.MethodPost, "99", 1, body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCreateCommentEmptyContent(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	body := bytes.NewBufferString(`{"content":""}`)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, commentRequest(t, http.MethodPost, "10", 1, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Add")
}

func TestHandleListComments(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("ListForTweet", mock.Anything, int64(10)).
		Return([]CommentView{{ID: 1}, {ID: 2}}, nil)

	rec := httptest.NewRecorder()
	h.HandleList()(rec, commentRequest(t, http.MethodGet, "10", 0, nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp auth.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}

func TestHandleListCommentsUnknownTweetIsEmpty(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("ListForTweet", mock.Anything, int64(99)).
		Return([]CommentView{}, nil)

	rec := httptest.NewRecorder()
	h.HandleList()(rec, commentRequest(t, http.MethodGet, "99", 0, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
