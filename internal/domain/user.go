package domain

// User is a participant of workout sessions.
// ID is assigned by storage; 0 means the user has not been persisted yet.
type User struct {
	ID       int64
	Name     string
	Selected bool
}

// IsPersisted reports whether storage has assigned an id to u.
func (u User) IsPersisted() bool { return u.ID != 0 }
