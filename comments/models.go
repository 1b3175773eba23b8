package comments

import (
	"time"

	"github.com/user/growtwitter-go/tweets"
)

// CommentView is a comment with its author summary, the shape returned by
// the API.
type CommentView struct {
	ID        int64                `json:"id"`
	TweetID   int64                `json:"tweetId"`
	UserID    int64                `json:"userId"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	User      tweets.AuthorSummary `json:"user"`
}

// CreateCommentRequest is the payload for replying to a tweet. Content
// length is checked after trimming.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=280" example:"nice tweet"`
}
