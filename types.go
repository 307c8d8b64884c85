package royale

import (
	"strconv"
)

// LocationID identifies a location (e.g. 57000094), GlobalLocation standing for
// the worldwide rankings.
type LocationID int

const (
	GlobalLocation LocationID = 0
)

func (id LocationID) String() string {
	if id == GlobalLocation {
		return "global"
	}

	return strconv.Itoa(int(id))
}

type RankingType string

const (
	RankingTypeClans    RankingType = "clans"
	RankingTypeClanWars RankingType = "clanwars"
	RankingTypePlayers  RankingType = "players"
)

const (
	DefaultBaseURL string = "https://api.clashroyale.com/v1/"

	// MaxConcurrentRequests bounds the requests sent at once by batch operations.
	MaxConcurrentRequests int = 5
)
