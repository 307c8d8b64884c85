package refdata

import (
	"io/fs"
	"sort"
)

type arenaJSON struct {
	Name                   string `json:"name"`
	TID                    string `json:"TID"`
	SubtitleTID            string `json:"subtitleTID"`
	SCID                   int    `json:"scid"`
	Arena                  *int   `json:"arena"`
	TrainingCamp           bool   `json:"trainingCamp"`
	TrophyLimit            *int   `json:"trophyLimit"`
	DemoteTrophyLimit      *int   `json:"demoteTrophyLimit"`
	SeasonTrophyReset      *int   `json:"seasonTrophyReset"`
	RequestSize            int    `json:"requestSize"`
	MaxDonationCountCommon int    `json:"maxDonationCountCommon"`
	MaxDonationCountRare   int    `json:"maxDonationCountRare"`
	MaxDonationCountEpic   int    `json:"maxDonationCountEpic"`
}

// ArenaDetails represents the static details of an arena or league.
type ArenaDetails struct {
	// ID is the game's arena id (e.g. 54000000).
	ID  int    `json:"id"`
	Key string `json:"key"`

	// Name is the league name (e.g. Arena 11, League 1).
	Name Text `json:"name"`
	// Subtitle is the arena name (e.g. Hog Mountain, Challenger III).
	Subtitle Text `json:"subtitle"`

	// Number is the PvP arena number, nil for the training camp.
	Number *int `json:"arena,omitempty"`

	TrophiesRequired int `json:"trophiesRequired"`
	// SeasonTrophyReset only exists on higher leagues.
	SeasonTrophyReset *int `json:"seasonTrophyReset,omitempty"`
	DemoteTrophyLimit *int `json:"demoteTrophyLimit,omitempty"`

	RequestSize            int `json:"requestSize"`
	MaxDonationCountCommon int `json:"maxDonationCountCommon"`
	MaxDonationCountRare   int `json:"maxDonationCountRare"`
	MaxDonationCountEpic   int `json:"maxDonationCountEpic"`
}

// ArenaByID returns an arena by its id.
func (t *Tables) ArenaByID(id int) (ArenaDetails, bool) {
	arena, ok := t.arenasByID[id]
	return arena, ok
}

// ArenaByNumber returns an arena by its PvP arena number (not its id).
func (t *Tables) ArenaByNumber(number int) (ArenaDetails, bool) {
	arena, ok := t.arenasByNumber[number]
	return arena, ok
}

// ArenaByKey returns an arena by its internal key (e.g. TrainingCamp, Arena1, Arena_L).
func (t *Tables) ArenaByKey(key string) (ArenaDetails, bool) {
	arena, ok := t.arenasByKey[key]
	return arena, ok
}

// Arenas returns all arenas ordered by id.
func (t *Tables) Arenas() []ArenaDetails {
	arenas := make([]ArenaDetails, 0, len(t.arenaIDs))
	for _, id := range t.arenaIDs {
		arenas = append(arenas, t.arenasByID[id])
	}

	return arenas
}

func (t *Tables) loadArenas(fsys fs.FS) error {
	var arenas []arenaJSON
	if err := readJSON(fsys, arenasFile, &arenas); err != nil {
		return err
	}

	t.arenasByID = make(map[int]ArenaDetails, len(arenas))
	t.arenasByNumber = make(map[int]ArenaDetails, len(arenas))
	t.arenasByKey = make(map[string]ArenaDetails, len(arenas))
	t.arenaIDs = make([]int, 0, len(arenas))

	for _, a := range arenas {
		name, err := t.mustText(a.TID)
		if err != nil {
			return err
		}
		subtitle, err := t.mustText(a.SubtitleTID)
		if err != nil {
			return err
		}

		arena := ArenaDetails{
			ID:                     a.SCID,
			Key:                    a.Name,
			Name:                   name,
			Subtitle:               subtitle,
			Number:                 a.Arena,
			SeasonTrophyReset:      a.SeasonTrophyReset,
			DemoteTrophyLimit:      a.DemoteTrophyLimit,
			RequestSize:            a.RequestSize,
			MaxDonationCountCommon: a.MaxDonationCountCommon,
			MaxDonationCountRare:   a.MaxDonationCountRare,
			MaxDonationCountEpic:   a.MaxDonationCountEpic,
		}
		if a.TrophyLimit != nil {
			arena.TrophiesRequired = *a.TrophyLimit
		}

		if _, ok := t.arenasByID[arena.ID]; !ok {
			t.arenaIDs = append(t.arenaIDs, arena.ID)
		}
		t.arenasByID[arena.ID] = arena
		t.arenasByKey[arena.Key] = arena
		if arena.Number != nil {
			t.arenasByNumber[*arena.Number] = arena
		}
	}

	sort.Ints(t.arenaIDs)

	return nil
}
