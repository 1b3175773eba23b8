// Package follows maintains the directed follow graph and answers the
// relationship queries the feed and profile composers depend on.
package follows

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
)

const pgUniqueViolation = "23505"

// Service exposes follow-graph reads and writes.
type Service interface {
	// IsFollowing reports whether viewer follows target. Anonymous viewers
	// and self-lookups are false without touching the database.
	IsFollowing(ctx context.Context, viewerID *int64, targetID int64) (bool, error)
	// FollowingIDs returns the ids of everyone viewerID follows. An unknown
	// viewer yields an empty slice.
	FollowingIDs(ctx context.Context, viewerID int64) ([]int64, error)
	// Follow creates the edge follower -> following.
	Follow(ctx context.Context, followerID, followingID int64) (*Follow, error)
	// Unfollow removes the edge follower -> following.
	Unfollow(ctx context.Context, followerID, followingID int64) error
}

type serviceImpl struct {
	dbPool *pgxpool.Pool
	log    *logrus.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates the follow-graph service.
func NewService(dbPool *pgxpool.Pool, log *logrus.Logger) Service {
	return &serviceImpl{dbPool: dbPool, log: log}
}

func (s *serviceImpl) IsFollowing(ctx context.Context, viewerID *int64, targetID int64) (bool, error) {
	if viewerID == nil || *viewerID == targetID {
		return false, nil
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	if err := s.dbPool.QueryRow(ctx, query, *viewerID, targetID).Scan(&exists); err != nil {
		return false, apperror.NewDatabaseError("failed to check follow relationship", err)
	}
	return exists, nil
}

func (s *serviceImpl) FollowingIDs(ctx context.Context, viewerID int64) ([]int64, error) {
	query := `SELECT following_id FROM follows WHERE follower_id = $1`
	rows, err := s.dbPool.Query(ctx, query, viewerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list followed users", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan followed user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read followed users", err)
	}
	return ids, nil
}

func (s *serviceImpl) Follow(ctx context.Context, followerID, followingID int64) (*Follow, error) {
	if followerID == followingID {
		return nil, apperror.NewBadRequestError("you cannot follow yourself", nil)
	}

	var targetExists bool
	if err := s.dbPool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, followingID).Scan(&targetExists); err != nil {
		return nil, apperror.NewDatabaseError("failed to check user", err)
	}
	if !targetExists {
		return nil, apperror.NewNotFoundError("user to follow not found", nil)
	}

	follow := &Follow{FollowerID: followerID, FollowingID: followingID}
	query := `INSERT INTO follows (follower_id, following_id)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	err := s.dbPool.QueryRow(ctx, query, followerID, followingID).Scan(&follow.ID, &follow.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("you are already following this user", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create follow", err)
	}

	s.log.WithFields(logrus.Fields{
		"follower_id":  followerID,
		"following_id": followingID,
	}).Debug("follow created")
	return follow, nil
}

func (s *serviceImpl) Unfollow(ctx context.Context, followerID, followingID int64) error {
	tag, err := s.dbPool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete follow", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("you are not following this user", nil)
	}
	return nil
}
