// Package model contains the typed results returned by the API client. Cards are
// referenced by id and tags are stored normalized, without the leading '#'.
package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/m0t0k1ch1/royale-go/hashtag"
	"github.com/m0t0k1ch1/royale-go/refdata"
)

// Card is the smallest representation of a card.
type Card struct {
	ID int `json:"id"`
}

// Details returns the static details of the card.
func (c Card) Details(t *refdata.Tables) (refdata.CardDetails, error) {
	return t.CardByID(c.ID)
}

// BattleCard is a card played in a battle.
type BattleCard struct {
	ID    int `json:"id"`
	Level int `json:"level"`
}

func (c BattleCard) Details(t *refdata.Tables) (refdata.CardDetails, error) {
	return t.CardByID(c.ID)
}

type Cards struct {
	Items []Card `json:"items"`
}

type Clan struct {
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	BadgeID int    `json:"badgeId"`
}

// ClanID returns the id encoded in the clan tag.
func (c Clan) ClanID() hashtag.HiLo {
	return hashtag.Decode(c.Tag)
}

type Arena struct {
	ID int `json:"id"`
}

func (a Arena) Details(t *refdata.Tables) (refdata.ArenaDetails, bool) {
	return t.ArenaByID(a.ID)
}

type GameMode struct {
	ID int `json:"id"`
}

type Location struct {
	ID int `json:"id"`
}

func (l Location) Details(t *refdata.Tables) (refdata.LocationDetails, bool) {
	return t.LocationByID(l.ID)
}

type Locations struct {
	Items []Location `json:"items"`
}

// Countries returns the locations which are countries.
func (ls Locations) Countries(t *refdata.Tables) []Location {
	return ls.filter(t, true)
}

// Regions returns the locations which are not countries.
func (ls Locations) Regions(t *refdata.Tables) []Location {
	return ls.filter(t, false)
}

func (ls Locations) filter(t *refdata.Tables, isCountry bool) []Location {
	locations := []Location{}
	for _, location := range ls.Items {
		details, ok := location.Details(t)
		if ok && details.IsCountry == isCountry {
			locations = append(locations, location)
		}
	}

	return locations
}

// normalizeName decomposes a name and lower-cases it so it can be used for searching.
func normalizeName(name string) string {
	return strings.ToLower(norm.NFD.String(name))
}
