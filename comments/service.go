// Package comments stores replies to tweets. Comments are flat: a comment
// always belongs to a tweet, never to another comment.
package comments

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
)

// Service exposes comment reads and writes.
type Service interface {
	// Add replies to a tweet. The parent tweet must exist.
	Add(ctx context.Context, viewerID, tweetID int64, req CreateCommentRequest) (*CommentView, error)
	// ListForTweet returns a tweet's comments oldest first. A tweet with no
	// comments, or an unknown tweet id, yields an empty slice.
	ListForTweet(ctx context.Context, tweetID int64) ([]CommentView, error)
}

type serviceImpl struct {
	dbPool *pgxpool.Pool
	log    *logrus.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates the comment service.
func NewService(dbPool *pgxpool.Pool, log *logrus.Logger) Service {
	return &serviceImpl{dbPool: dbPool, log: log}
}

func (s *serviceImpl) Add(ctx context.Context, viewerID, tweetID int64, req CreateCommentRequest) (*CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" || len([]rune(content)) > 280 {
		return nil, apperror.NewValidationError("content must be between 1 and 280 characters", nil)
	}

	var tweetExists bool
	if err := s.dbPool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tweets WHERE id = $1)`, tweetID).Scan(&tweetExists); err != nil {
		return nil, apperror.NewDatabaseError("failed to check tweet", err)
	}
	if !tweetExists {
		return nil, apperror.NewNotFoundError("tweet not found", nil)
	}

	view := &CommentView{TweetID: tweetID, UserID: viewerID, Content: content}
	query := `
		WITH inserted AS (
			INSERT INTO comments (tweet_id, user_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		)
		SELECT i.id, i.created_at, u.id, u.username, u.name, u.image_url
		FROM inserted i
		JOIN users u ON u.id = $2`
	err := s.dbPool.QueryRow(ctx, query, tweetID, viewerID, content).Scan(
		&view.ID, &view.CreatedAt,
		&view.User.ID, &view.User.Username, &view.User.Name, &view.User.ImageURL,
	)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create comment", err)
	}

	s.log.WithFields(logrus.Fields{
		"comment_id": view.ID,
		"tweet_id":   tweetID,
		"user_id":    viewerID,
	}).Debug("comment created")
	return view, nil
}

func (s *serviceImpl) ListForTweet(ctx context.Context, tweetID int64) ([]CommentView, error) {
	query := `
		SELECT c.id, c.tweet_id, c.user_id, c.content, c.created_at,
		       u.id, u.username, u.name, u.image_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.tweet_id = $1
		ORDER BY c.created_at ASC, c.id ASC`
	rows, err := s.dbPool.Query(ctx, query, tweetID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list comments", err)
	}
	defer rows.Close()

	views := make([]CommentView, 0)
	for rows.Next() {
		var v CommentView
		if err := rows.Scan(
			&v.ID, &v.TweetID, &v.UserID, &v.Content, &v.CreatedAt,
			&v.User.ID, &v.User.Username, &v.User.Name, &v.User.ImageURL,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan comment", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read comments", err)
	}
	return views, nil
}
