package comments

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/growtwitter-go/apperror"
)

// Content validation runs before the parent-tweet check, so a nil pool is
// fine for these.
func newValidationOnlyService(t *testing.T) Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(nil, log)
}

func TestAddRejectsEmptyContent(t *testing.T) {
	svc := newValidationOnlyService(t)

	_, err := svc.Add(context.Background(), 1, 1, CreateCommentRequest{Content: " \t "})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestAddRejectsOverlongContent(t *testing.T) {
	svc := newValidationOnlyService(t)

	_, err := svc.Add(context.Background(), 1, 1, CreateCommentRequest{Content: strings.Repeat("a", 281)})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}
