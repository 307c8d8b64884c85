package model

import (
	"github.com/m0t0k1ch1/royale-go/refdata"
)

// UpcomingChest is a chest of the chest cycle of a player, Index 0 being the next one.
type UpcomingChest struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Details returns the static details of the chest, looked up by its english name.
func (c UpcomingChest) Details(t *refdata.Tables) (refdata.ChestDetails, bool) {
	return t.ChestByName(c.Name, refdata.LocaleEN)
}

type UpcomingChests struct {
	Items []UpcomingChest `json:"items"`
}

// RegularChests returns the chests of the regular cycle. Chests missing from the
// reference data are considered regular.
func (cs UpcomingChests) RegularChests(t *refdata.Tables) []UpcomingChest {
	return cs.filter(t, false)
}

// SpecialChests returns the chests outside of the regular cycle.
func (cs UpcomingChests) SpecialChests(t *refdata.Tables) []UpcomingChest {
	return cs.filter(t, true)
}

func (cs UpcomingChests) filter(t *refdata.Tables, isSpecial bool) []UpcomingChest {
	chests := []UpcomingChest{}
	for _, chest := range cs.Items {
		details, _ := chest.Details(t)
		if details.IsSpecial == isSpecial {
			chests = append(chests, chest)
		}
	}

	return chests
}
