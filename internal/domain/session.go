package domain

import "time"

// SessionRecord is one completed workout, shared by every participating user.
type SessionRecord struct {
	ID        int64
	Timestamp time.Time
	Duration  time.Duration
	UsersIDs  []int64
}

// HasParticipants reports whether at least one user took part in the session.
func (r SessionRecord) HasParticipants() bool { return len(r.UsersIDs) > 0 }
