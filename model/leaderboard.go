package model

import (
	"time"
)

type PlayerRanking struct {
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	ExpLevel     int    `json:"expLevel"`
	Trophies     int    `json:"trophies"`
	Rank         int    `json:"rank"`
	PreviousRank int    `json:"previousRank"`
	Clan         *Clan  `json:"clan,omitempty"`
	Arena        Arena  `json:"arena"`
}

type PlayerLeaderboard struct {
	Items     []PlayerRanking `json:"items"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

type ClanRanking struct {
	Tag          string   `json:"tag"`
	Name         string   `json:"name"`
	Rank         int      `json:"rank"`
	PreviousRank int      `json:"previousRank"`
	Location     Location `json:"location"`
	BadgeID      int      `json:"badgeId"`
	ClanScore    int      `json:"clanScore"`
	MemberCount  int      `json:"memberCount"`
}

type ClanLeaderboard struct {
	Items     []ClanRanking `json:"items"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// ClanWarLeaderboard ranks clans by their clan war score.
type ClanWarLeaderboard struct {
	Items     []ClanRanking `json:"items"`
	FetchedAt time.Time     `json:"fetchedAt"`
}
