package mapper

import (
	"time"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

// SessionToEntities fans a record out into one row per participant, in UsersIDs order.
// Row ids are left to storage.
func SessionToEntities(r domain.SessionRecord) []entity.Session {
	rows := make([]entity.Session, 0, len(r.UsersIDs))
	for _, userID := range r.UsersIDs {
		rows = append(rows, entity.Session{
			UserID:      userID,
			TimestampMs: r.Timestamp.UnixMilli(),
			DurationMs:  r.Duration.Milliseconds(),
		})
	}
	return rows
}

// SessionToDomain converts one row into a record whose only participant is the row's user.
func SessionToDomain(e entity.Session) domain.SessionRecord {
	return domain.SessionRecord{
		ID:        e.ID,
		Timestamp: time.UnixMilli(e.TimestampMs).UTC(),
		Duration:  time.Duration(e.DurationMs) * time.Millisecond,
		UsersIDs:  []int64{e.UserID},
	}
}

// SessionsToDomain converts rows one to one, preserving order.
func SessionsToDomain(rows []entity.Session) []domain.SessionRecord {
	records := make([]domain.SessionRecord, len(rows))
	for i, row := range rows {
		records[i] = SessionToDomain(row)
	}
	return records
}
