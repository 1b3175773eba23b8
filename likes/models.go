package likes

import "time"

// Like marks that a user liked a tweet. The (UserID, TweetID) pair is unique.
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TweetID   int64     `json:"tweetId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Counts aggregates per-tweet engagement totals.
type Counts struct {
	Likes   int64
	Replies int64
}
