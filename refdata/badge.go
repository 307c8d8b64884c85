package refdata

import (
	"io/fs"
)

const (
	MinBadgeID int = 16000000
	MaxBadgeID int = 16000179
)

// BadgeDetails represents a clan badge.
type BadgeDetails struct {
	ID int `json:"id"`
}

// BadgeByID returns a clan badge by its id.
func (t *Tables) BadgeByID(id int) (BadgeDetails, bool) {
	badge, ok := t.badgesByID[id]
	return badge, ok
}

func (t *Tables) loadBadges(_ fs.FS) error {
	t.badgesByID = make(map[int]BadgeDetails, MaxBadgeID-MinBadgeID+1)

	for id := MinBadgeID; id <= MaxBadgeID; id++ {
		t.badgesByID[id] = BadgeDetails{ID: id}
	}

	return nil
}
