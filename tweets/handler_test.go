package tweets

import (
	"bytes"
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

func (m *mockService) Create(ctx context.Context, authorID int64, req CreateTweetRequest) (*TweetView, error) {
	args := m.Called(ctx, authorID, req)
	if v := args.Get(0); v != nil {
		return v.(*TweetView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) List(ctx context.Context, viewerID *int64, q ListQuery) ([]TweetView, *auth.Meta, error) {
	args := m.Called(ctx, viewerID, q)
	var views []TweetView
	if v := args.Get(0); v != nil {
		views = v.([]TweetView)
	}
	var meta *auth.Meta
	if v := args.Get(1); v != nil {
		meta = v.(*auth.Meta)
	}
	return views, meta, args.Error(2)
}

func (m *mockService) Delete(ctx context.Context, tweetID, requesterID int64) (*DeletedTweet, error) {
	args := m.Called(ctx, tweetID, requesterID)
	if v := args.Get(0); v != nil {
		return v.(*DeletedTweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]TweetView, error) {
	args := m.Called(ctx, authorID, viewerID)
	if v := args.Get(0); v != nil {
		return v.([]TweetView), args.Error(1)
	}
	return nil, args.Error(1)
}

func withViewer(req *http.Request, id int64) *http.Request {
	return req.WithContext(auth.NewContextWithViewer(req.Context(), &auth.Viewer{ID: id, Username: "tester"}))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) auth.Response {
	t.Helper()
	var resp auth.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleCreate(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Create", mock.Anything, int64(1), CreateTweetRequest{Content: "hello"}).
		Return(&TweetView{ID: 10, UserID: 1, Content: "hello"}, nil)

	body := bytes.NewBufferString(`{"content":"hello"}`)
	req := withViewer(httptest.NewRequest(http.MethodPost, "/tweets", body), 1)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestHandleCreateWithoutViewer(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	body := bytes.NewBufferString(`{"content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/tweets", body)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestHandleCreateEmptyContent(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	body := bytes.NewBufferString(`{"content":""}`)
	req := withViewer(httptest.NewRequest(http.MethodPost, "/tweets", body), 1)
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestHandleListPassesQuery(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	meta := &auth.Meta{Page: 2, Limit: FeedPageSize}
	svc.On("List", mock.Anything, (*int64)(nil), ListQuery{Username: "ada", Page: 2}).
		Return([]TweetView{{ID: 1}}, meta, nil)

	req := httptest.NewRequest(http.MethodGet, "/tweets?username=ada&page=2", nil)
	rec := httptest.NewRecorder()
	h.HandleList()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, FeedPageSize, resp.Meta.Limit)
	svc.AssertExpectations(t)
}

func TestHandleListNonNumericPageFallsBack(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("List", mock.Anything, (*int64)(nil), ListQuery{Type: "global", Page: 0}).
		Return([]TweetView{}, &auth.Meta{Page: 1, Limit: FeedPageSize}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tweets?type=global&page=abc", nil)
	rec := httptest.NewRecorder()
	h.HandleList()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleListHomeFeedUnauthenticated(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("List", mock.Anything, (*int64)(nil), ListQuery{}).
		Return(nil, nil, apperror.NewAuthError("authentication required for the home feed", nil))

	req := httptest.NewRequest(http.MethodGet, "/tweets", nil)
	rec := httptest.NewRecorder()
	h.HandleList()(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListUnknownUsername(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("List", mock.Anything, (*int64)(nil), ListQuery{Username: "ghost"}).
		Return(nil, nil, apperror.NewNotFoundError("user not found", nil))

	req := httptest.NewRequest(http.MethodGet, "/tweets?username=ghost", nil)
	rec := httptest.NewRecorder()
	h.HandleList()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func newDeleteRequest(t *testing.T, tweetID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/tweets/"+tweetID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("tweetID", tweetID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleDelete(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Delete", mock.Anything, int64(10), int64(1)).
		Return(&DeletedTweet{ID: 10}, nil)

	req := withViewer(newDeleteRequest(t, "10"), 1)
	rec := httptest.NewRecorder()
	h.HandleDelete()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleDeleteForbidden(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	svc.On("Delete", mock.Anything, int64(10), int64(2)).
		Return(nil, apperror.NewForbiddenError("you can only delete your own tweets", nil))

	req := withViewer(newDeleteRequest(t, "10"), 2)
	rec := httptest.NewRecorder()
	h.HandleDelete()(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleDeleteInvalidID(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc)

	req := withViewer(newDeleteRequest(t, "abc"), 1)
	rec := httptest.NewRecorder()
	h.HandleDelete()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Delete")
}
