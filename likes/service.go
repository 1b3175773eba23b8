// Package likes records tweet likes and serves the batch engagement lookups
// used to decorate tweets for a viewer.
package likes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
)

const pgUniqueViolation = "23505"

// Service exposes like writes and the batch reads the composers use.
type Service interface {
	// Like records viewerID liking tweetID.
	Like(ctx context.Context, viewerID, tweetID int64) (*Like, error)
	// Unlike removes viewerID's like on tweetID.
	Unlike(ctx context.Context, viewerID, tweetID int64) error
	// LikeStatus reports, per tweet id, whether the viewer liked it. Every
	// requested id appears in the result; an anonymous viewer gets all false.
	LikeStatus(ctx context.Context, viewerID *int64, tweetIDs []int64) (map[int64]bool, error)
	// CountsFor returns like and reply counts per tweet id. Every requested
	// id appears in the result, absent ones with zero counts.
	CountsFor(ctx context.Context, tweetIDs []int64) (map[int64]Counts, error)
}

type serviceImpl struct {
	dbPool *pgxpool.Pool
	log    *logrus.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates the like service.
func NewService(dbPool *pgxpool.Pool, log *logrus.Logger) Service {
	return &serviceImpl{dbPool: dbPool, log: log}
}

func (s *serviceImpl) Like(ctx context.Context, viewerID, tweetID int64) (*Like, error) {
	var tweetExists bool
	if err := s.dbPool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tweets WHERE id = $1)`, tweetID).Scan(&tweetExists); err != nil {
		return nil, apperror.NewDatabaseError("failed to check tweet", err)
	}
	if !tweetExists {
		return nil, apperror.NewNotFoundError("tweet not found", nil)
	}

	like := &Like{UserID: viewerID, TweetID: tweetID}
	query := `INSERT INTO likes (user_id, tweet_id)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	err := s.dbPool.QueryRow(ctx, query, viewerID, tweetID).Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("you have already liked this tweet", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create like", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  viewerID,
		"tweet_id": tweetID,
	}).Debug("like created")
	return like, nil
}

func (s *serviceImpl) Unlike(ctx context.Context, viewerID, tweetID int64) error {
	tag, err := s.dbPool.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND tweet_id = $2`, viewerID, tweetID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete like", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("like not found", nil)
	}
	return nil
}

func (s *serviceImpl) LikeStatus(ctx context.Context, viewerID *int64, tweetIDs []int64) (map[int64]bool, error) {
	status := make(map[int64]bool, len(tweetIDs))
	for _, id := range tweetIDs {
		status[id] = false
	}
	if viewerID == nil || len(tweetIDs) == 0 {
		return status, nil
	}

	query := `SELECT tweet_id FROM likes WHERE user_id = $1 AND tweet_id = ANY($2)`
	rows, err := s.dbPool.Query(ctx, query, *viewerID, tweetIDs)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch like status", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tweetID int64
		if err := rows.Scan(&tweetID); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan like status", err)
		}
		status[tweetID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read like status", err)
	}
	return status, nil
}

func (s *serviceImpl) CountsFor(ctx context.Context, tweetIDs []int64) (map[int64]Counts, error) {
	counts := make(map[int64]Counts, len(tweetIDs))
	for _, id := range tweetIDs {
		counts[id] = Counts{}
	}
	if len(tweetIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT t.id,
		       COALESCE(l.like_count, 0)  AS like_count,
		       COALESCE(c.reply_count, 0) AS reply_count
		FROM tweets t
		LEFT JOIN (
			SELECT tweet_id, COUNT(*) AS like_count FROM likes
			WHERE tweet_id = ANY($1) GROUP BY tweet_id
		) l ON l.tweet_id = t.id
		LEFT JOIN (
			SELECT tweet_id, COUNT(*) AS reply_count FROM comments
			WHERE tweet_id = ANY($1) GROUP BY tweet_id
		) c ON c.tweet_id = t.id
		WHERE t.id = ANY($1)`
	rows, err := s.dbPool.Query(ctx, query, tweetIDs)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch engagement counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tweetID int64
		var c Counts
		if err := rows.Scan(&tweetID, &c.Likes, &c.Replies); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan engagement counts", err)
		}
		counts[tweetID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read engagement counts", err)
	}
	return counts, nil
}
