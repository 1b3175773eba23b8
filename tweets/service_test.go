package tweets

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/growtwitter-go/apperror"
)

// Validation runs before any query, so a nil pool is fine here.
func newValidationOnlyService(t *testing.T) Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(nil, nil, nil, log)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	svc := newValidationOnlyService(t)

	_, err := svc.Create(context.Background(), 1, CreateTweetRequest{Content: "   "})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestCreateRejectsOverlongContent(t *testing.T) {
	svc := newValidationOnlyService(t)

	_, err := svc.Create(context.Background(), 1, CreateTweetRequest{Content: strings.Repeat("a", 281)})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestCreateCountsRunesNotBytes(t *testing.T) {
	svc := newValidationOnlyService(t)

	// 281 multibyte runes exceed the limit; the byte count alone already
	// does at 280, so a byte-based check would pass the wrong boundary.
	_, err := svc.Create(context.Background(), 1, CreateTweetRequest{Content: strings.Repeat("é", 281)})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestListHomeRequiresViewer(t *testing.T) {
	svc := newValidationOnlyService(t)

	_, _, err := svc.List(context.Background(), nil, ListQuery{})

	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}
