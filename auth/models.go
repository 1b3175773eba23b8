package auth

import "time"

// User represents an account row. HashedPassword never leaves the server.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	ImageURL       *string   `json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Viewer identifies the authenticated caller of a request.
type Viewer struct {
	ID       int64
	Username string
}

// ViewerID returns the viewer's id as a nullable pointer, the shape the
// read-side services take so anonymous and authenticated calls share one path.
func ViewerID(v *Viewer) *int64 {
	if v == nil {
		return nil
	}
	return &v.ID
}
