// Request and response payloads for the users module.
package users

import (
	"time"

	"github.com/user/growtwitter-go/tweets"
)

// Profile is a user page as one specific viewer sees it: the account's
// public fields, relationship-corrected counts, the viewer's follow state,
// and the account's decorated tweets.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// IsFollowing is omitted when viewing your own profile.
	IsFollowing    *bool              `json:"isFollowing,omitempty"`
	FollowersCount int64              `json:"followersCount"`
	FollowingCount int64              `json:"followingCount"`
	TweetsCount    int64              `json:"tweetsCount"`
	Tweets         []tweets.TweetView `json:"tweets"`
}

// LatestTweet is the newest-tweet preview on a user listing entry.
type LatestTweet struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListItem is one entry of the user discovery listing.
type UserListItem struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Username       string       `json:"username"`
	ImageURL       *string      `json:"imageUrl"`
	CreatedAt      time.Time    `json:"createdAt"`
	FollowersCount int64        `json:"followersCount"`
	IsFollowing    bool         `json:"isFollowing"`
	LatestTweet    *LatestTweet `json:"latestTweet"`
}

// UpdateProfileRequest carries a partial update of the viewer's own profile.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// UpdatedUser is the payload returned after a profile update.
type UpdatedUser struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	ImageURL *string `json:"imageUrl"`
}
