package follows

import "time"

// Follow is a directed edge: follower follows following.
type Follow struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"followerId"`
	FollowingID int64     `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
