// Package users composes profile pages and the user discovery listing, and
// handles profile updates.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/auth"
	"github.com/user/growtwitter-go/follows"
	"github.com/user/growtwitter-go/tweets"
)

// UsersPageSize is the fixed page size of the user discovery listing.
const UsersPageSize = 8

// Service exposes profile composition, discovery, and updates.
type Service interface {
	// GetProfile composes a user's page for the viewer. The tweet list is
	// complete, not paginated.
	GetProfile(ctx context.Context, username string, viewerID *int64) (*Profile, error)
	// List returns a page of users for discovery, newest accounts first,
	// excluding the viewer.
	List(ctx context.Context, viewerID *int64, page int) ([]UserListItem, *auth.Meta, error)
	// UpdateProfile applies a partial update to the viewer's own profile.
	UpdateProfile(ctx context.Context, viewerID int64, req UpdateProfileRequest) (*UpdatedUser, error)
}

type serviceImpl struct {
	dbPool     *pgxpool.Pool
	followsSvc follows.Service
	tweetsSvc  tweets.Service
	log        *logrus.Logger
}

var _ Service = (*serviceImpl)(nil)

// NewService creates the users service.
func NewService(dbPool *pgxpool.Pool, followsSvc follows.Service, tweetsSvc tweets.Service, log *logrus.Logger) Service {
	return &serviceImpl{
		dbPool:     dbPool,
		followsSvc: followsSvc,
		tweetsSvc:  tweetsSvc,
		log:        log,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, username string, viewerID *int64) (*Profile, error) {
	var p Profile
	// followers count edges pointing at the profile owner, following counts
	// edges leaving them.
	query := `
		SELECT u.id, u.name, u.username, u.image_url, u.created_at, u.updated_at,
		       (SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS followers_count,
		       (SELECT COUNT(*) FROM follows WHERE follower_id  = u.id) AS following_count,
		       (SELECT COUNT(*) FROM tweets  WHERE user_id      = u.id) AS tweets_count
		FROM users u
		WHERE u.username = $1`
	err := s.dbPool.QueryRow(ctx, query, username).Scan(
		&p.ID, &p.Name, &p.Username, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		&p.FollowersCount, &p.FollowingCount, &p.TweetsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to fetch profile", err)
	}

	if viewerID == nil || *viewerID != p.ID {
		following, err := s.followsSvc.IsFollowing(ctx, viewerID, p.ID)
		if err != nil {
			return nil, err
		}
		p.IsFollowing = &following
	}

	tweetViews, err := s.tweetsSvc.ListByAuthor(ctx, p.ID, viewerID)
	if err != nil {
		return nil, err
	}
	p.Tweets = tweetViews

	return &p, nil
}

func (s *serviceImpl) List(ctx context.Context, viewerID *int64, page int) ([]UserListItem, *auth.Meta, error) {
	offset, normalized := tweets.PageWindow(page, UsersPageSize)

	query := `
		SELECT u.id, u.name, u.username, u.image_url, u.created_at,
		       (SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS followers_count,
		       EXISTS (
		           SELECT 1 FROM follows
		           WHERE follower_id = $1 AND following_id = u.id
		       ) AS is_following,
		       lt.content, lt.created_at
		FROM users u
		LEFT JOIN LATERAL (
			SELECT content, created_at FROM tweets
			WHERE user_id = u.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) lt ON true
		WHERE ($1::bigint IS NULL OR u.id <> $1)
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.dbPool.Query(ctx, query, viewerID, UsersPageSize, offset)
	if err != nil {
		return nil, nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	items := make([]UserListItem, 0, UsersPageSize)
	for rows.Next() {
		var item UserListItem
		var latestContent *string
		var latestCreatedAt *time.Time
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Username, &item.ImageURL, &item.CreatedAt,
			&item.FollowersCount, &item.IsFollowing,
			&latestContent, &latestCreatedAt,
		); err != nil {
			return nil, nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		if latestContent != nil && latestCreatedAt != nil {
			item.LatestTweet = &LatestTweet{Content: *latestContent, CreatedAt: *latestCreatedAt}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperror.NewDatabaseError("failed to read users", err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM users WHERE ($1::bigint IS NULL OR id <> $1)`
	if err := s.dbPool.QueryRow(ctx, countQuery, viewerID).Scan(&total); err != nil {
		return nil, nil, apperror.NewDatabaseError("failed to count users", err)
	}

	meta := &auth.Meta{Page: normalized, Limit: UsersPageSize, Total: &total}
	return items, meta, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, viewerID int64, req UpdateProfileRequest) (*UpdatedUser, error) {
	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)
	argPos := 1

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.NewValidationError("name must not be blank", nil)
		}
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argPos))
		args = append(args, name)
		argPos++
	}
	if req.ImageURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_url = $%d", argPos))
		args = append(args, *req.ImageURL)
		argPos++
	}

	if len(setClauses) == 0 {
		return nil, apperror.NewBadRequestError("no fields to update", nil)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, viewerID)

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING id, name, username, image_url`,
		strings.Join(setClauses, ", "), argPos,
	)

	var updated UpdatedUser
	err := s.dbPool.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.Name, &updated.Username, &updated.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update profile", err)
	}

	s.log.WithField("user_id", viewerID).Debug("profile updated")
	return &updated, nil
}
