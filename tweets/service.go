// Package tweets owns tweet storage and the timeline composer: every list of
// tweets the API returns is selected, paginated, and decorated here for the
// viewer making the request.
package tweets

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
	"github.com/user/growtwitter-go/follows"
	"github.com/user/growtwitter-go/likes"
)

// Service exposes tweet writes and viewer-relative reads.
type Service interface {
	// Create posts a tweet and returns it as its author sees it.
	Create(ctx context.Context, authorID int64, req CreateTweetRequest) (*TweetView, error)
	// List composes a timeline. Username selects a profile timeline, type
	// "global" the firehose, and neither the viewer's home feed, which
	// requires authentication.
	List(ctx context.Context, viewerID *int64, q ListQuery) ([]TweetView, *auth.Meta, error)
	// Delete removes a tweet. Only the author may delete it; likes and
	// comments go with it.
	Delete(ctx context.Context, tweetID, requesterID int64) (*DeletedTweet, error)
	// ListByAuthor returns all of one author's tweets, newest first,
	// decorated for the viewer. Used by the profile composer.
	ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]TweetView, error)
}

type serviceImpl struct {
	dbPool     *pgxpool.Pool
	followsSvc follows.Service
	likesSvc   likes.Service
	log        *logrus.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates the tweet service.
func NewService(dbPool *pgxpool.Pool, followsSvc follows.Service, likesSvc likes.Service, log *logrus.Logger) Service {
	return &serviceImpl{
		dbPool:     dbPool,
		followsSvc: followsSvc,
		likesSvc:   likesSvc,
		log:        log,
	}
}

func (s *serviceImpl) Create(ctx context.Context, authorID int64, req CreateTweetRequest) (*TweetView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" || len([]rune(content)) > 280 {
		return nil, apperror.NewValidationError("content must be between 1 and 280 characters", nil)
	}

	view := &TweetView{UserID: authorID, Content: content}
	query := `
		WITH inserted AS (
			INSERT INTO tweets (user_id, content)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		)
		SELECT i.id, i.created_at, i.updated_at, u.id, u.username, u.name, u.image_url
		FROM inserted i
		JOIN users u ON u.id = $1`
	err := s.dbPool.QueryRow(ctx, query, authorID, content).Scan(
		&view.ID, &view.CreatedAt, &view.UpdatedAt,
		&view.User.ID, &view.User.Username, &view.User.Name, &view.User.ImageURL,
	)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create tweet", err)
	}

	// Fresh tweets have no engagement yet.
	view.LikesCount = 0
	view.RepliesCount = 0
	view.IsLikedByMe = false
	return view, nil
}

func (s *serviceImpl) List(ctx context.Context, viewerID *int64, q ListQuery) ([]TweetView, *auth.Meta, error) {
	var authorFilter []int64

	switch {
	case q.Username != "":
		authorID, err := s.resolveUsername(ctx, q.Username)
		if err != nil {
			return nil, nil, err
		}
		authorFilter = []int64{authorID}
	case q.Type == "global":
		authorFilter = nil
	default:
		if viewerID == nil {
			return nil, nil, apperror.NewAuthError("authentication required for the home feed", nil)
		}
		followingIDs, err := s.followsSvc.FollowingIDs(ctx, *viewerID)
		if err != nil {
			return nil, nil, err
		}
		authorFilter = HomeFilter(*viewerID, followingIDs)
	}

	offset, page := PageWindow(q.Page, FeedPageSize)
	views, err := s.fetchViews(ctx, authorFilter, viewerID, FeedPageSize, offset)
	if err != nil {
		return nil, nil, err
	}

	return views, &auth.Meta{Page: page, Limit: FeedPageSize}, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tweetID, requesterID int64) (*DeletedTweet, error) {
	var authorID int64
	err := s.dbPool.QueryRow(ctx, `SELECT user_id FROM tweets WHERE id = $1`, tweetID).Scan(&authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("tweet not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to check tweet", err)
	}
	if authorID != requesterID {
		return nil, apperror.NewForbiddenError("you can only delete your own tweets", nil)
	}

	// Likes and comments are removed by the FK cascade.
	if _, err := s.dbPool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, tweetID); err != nil {
		return nil, apperror.NewDatabaseError("failed to delete tweet", err)
	}

	s.log.WithFields(logrus.Fields{
		"tweet_id": tweetID,
		"user_id":  requesterID,
	}).Debug("tweet deleted")
	return &DeletedTweet{ID: tweetID}, nil
}

// ListByAuthor decorates through the batch engagement lookups rather than
// the embedded-aggregate query fetchViews uses; both paths must produce the
// same TweetView shape.
func (s *serviceImpl) ListByAuthor(ctx context.Context, authorID int64, viewerID *int64) ([]TweetView, error) {
	query := `
		SELECT t.id, t.user_id, t.content, t.created_at, t.updated_at,
		       u.id, u.username, u.name, u.image_url
		FROM tweets t
		JOIN users u ON u.id = t.user_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC`
	rows, err := s.dbPool.Query(ctx, query, authorID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list tweets by author", err)
	}
	defer rows.Close()

	views := make([]TweetView, 0)
	for rows.Next() {
		var v TweetView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Content, &v.CreatedAt, &v.UpdatedAt,
			&v.User.ID, &v.User.Username, &v.User.Name, &v.User.ImageURL,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan tweet", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read tweets", err)
	}

	ids := make([]int64, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	counts, err := s.likesSvc.CountsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.likesSvc.LikeStatus(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	for i := range views {
		c := counts[views[i].ID]
		views[i].LikesCount = c.Likes
		views[i].RepliesCount = c.Replies
		views[i].IsLikedByMe = liked[views[i].ID]
	}
	return views, nil
}

func (s *serviceImpl) resolveUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.dbPool.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFoundError("user not found", nil)
		}
		return 0, apperror.NewDatabaseError("failed to resolve username", err)
	}
	return id, nil
}

// fetchViews runs the timeline query with counts and the viewer's like flag
// computed in SQL. authorFilter nil means no author restriction. A NULL
// viewer id makes the liked-by-me EXISTS check false for every row.
func (s *serviceImpl) fetchViews(ctx context.Context, authorFilter []int64, viewerID *int64, limit, offset int) ([]TweetView, error) {
	query := `
		SELECT t.id, t.user_id, t.content, t.created_at, t.updated_at,
		       u.id, u.username, u.name, u.image_url,
		       COALESCE(lc.like_count, 0)  AS likes_count,
		       COALESCE(cc.reply_count, 0) AS replies_count,
		       EXISTS (
		           SELECT 1 FROM likes ml
		           WHERE ml.tweet_id = t.id AND ml.user_id = $1
		       ) AS is_liked_by_me
		FROM tweets t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN (
			SELECT tweet_id, COUNT(*) AS like_count FROM likes GROUP BY tweet_id
		) lc ON lc.tweet_id = t.id
		LEFT JOIN (
			SELECT tweet_id, COUNT(*) AS reply_count FROM comments GROUP BY tweet_id
		) cc ON cc.tweet_id = t.id
		WHERE ($2::bigint[] IS NULL OR t.user_id = ANY($2))
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.dbPool.Query(ctx, query, viewerID, authorFilter, limit, offset)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch timeline", err)
	}
	defer rows.Close()

	views := make([]TweetView, 0, limit)
	for rows.Next() {
		var v TweetView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Content, &v.CreatedAt, &v.UpdatedAt,
			&v.User.ID, &v.User.Username, &v.User.Name, &v.User.ImageURL,
			&v.LikesCount, &v.RepliesCount, &v.IsLikedByMe,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan timeline row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read timeline", err)
	}
	return views, nil
}
