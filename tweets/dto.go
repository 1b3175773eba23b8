package tweets

// CreateTweetRequest is the payload for posting a tweet. Content length is
// checked after trimming.
type CreateTweetRequest struct {
	Content string `json:"content" validate:"required,max=280" example:"hello world"`
}

// ListQuery selects which timeline a GET /tweets call composes.
// Username wins over Type; with neither set the viewer's home feed is built.
type ListQuery struct {
	Username string
	Type     string
	Page     int
}

// DeletedTweet is the payload returned after a successful delete.
type DeletedTweet struct {
	ID int64 `json:"id"`
}
