package core

import "time"

type Credentials struct {
	Username string
	Password string
}

// Identity is the authenticated principal carried by the session token.
type Identity struct {
	UserID   uint
	Username string
}

type TaskRecord struct {
	ID        uint
	Content   string
	Completed bool
	Created   time.Time
}
