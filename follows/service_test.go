package follows

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/growtwitter-go/apperror"
)

// The nil pool proves these paths decide before touching the database.

func TestFollowSelfIsRejectedBeforeDB(t *testing.T) {
	s := NewService(nil, logrus.New())

	_, err := s.Follow(context.Background(), 5, 5)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequestError, appErr.Type)
}

func TestIsFollowingAnonymousViewer(t *testing.T) {
	s := NewService(nil, logrus.New())

	following, err := s.IsFollowing(context.Background(), nil, 7)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestIsFollowingSelf(t *testing.T) {
	s := NewService(nil, logrus.New())

	id := int64(7)
	following, err := s.IsFollowing(context.Background(), &id, 7)
	require.NoError(t, err)
	assert.False(t, following)
}
