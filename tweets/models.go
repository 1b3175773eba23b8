package tweets

import "time"

// Tweet is the storage-shaped row, before viewer decoration.
type Tweet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorSummary is the embedded author block on every surfaced tweet.
type AuthorSummary struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// TweetView is a tweet as one specific viewer sees it: the row plus the
// author summary, engagement counts, and the viewer's own like flag. This is
// the only tweet shape that crosses the API boundary.
type TweetView struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"userId"`
	Content      string        `json:"content"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	User         AuthorSummary `json:"user"`
	LikesCount   int64         `json:"likesCount"`
	RepliesCount int64         `json:"repliesCount"`
	IsLikedByMe  bool          `json:"isLikedByMe"`
}
