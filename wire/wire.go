// Package wire holds the response payloads of the statistics API as they are sent
// over the wire. Cards are identified by name and tags carry their leading '#'.
package wire

type Paging struct {
	Cursors struct {
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"cursors"`
}

type IconURLs struct {
	Medium string `json:"medium,omitempty"`
}

type Card struct {
	Name     string   `json:"name"`
	ID       int      `json:"id,omitempty"`
	MaxLevel int      `json:"maxLevel,omitempty"`
	IconURLs IconURLs `json:"iconUrls"`
}

type Cards struct {
	Items  []Card `json:"items"`
	Paging Paging `json:"paging"`
}

type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsCountry   bool   `json:"isCountry"`
	CountryCode string `json:"countryCode,omitempty"`
}

type Locations struct {
	Items  []Location `json:"items"`
	Paging Paging     `json:"paging"`
}

type Clan struct {
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	BadgeID int    `json:"badgeId"`
}

type Arena struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GameMode struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

type PlayerCard struct {
	Name     string   `json:"name"`
	ID       int      `json:"id,omitempty"`
	Level    int      `json:"level"`
	MaxLevel int      `json:"maxLevel,omitempty"`
	Count    int      `json:"count"`
	IconURLs IconURLs `json:"iconUrls"`
}

type Season struct {
	ID           string `json:"id,omitempty"`
	Rank         int    `json:"rank,omitempty"`
	Trophies     int    `json:"trophies"`
	BestTrophies int    `json:"bestTrophies,omitempty"`
}

type LeagueStatistics struct {
	CurrentSeason  *Season `json:"currentSeason,omitempty"`
	PreviousSeason *Season `json:"previousSeason,omitempty"`
	BestSeason     *Season `json:"bestSeason,omitempty"`
}

type Achievement struct {
	Name   string `json:"name"`
	Stars  int    `json:"stars"`
	Value  int    `json:"value"`
	Target int    `json:"target"`
	Info   string `json:"info"`
}

type PlayerProfile struct {
	Tag                   string            `json:"tag"`
	Name                  string            `json:"name"`
	ExpLevel              int               `json:"expLevel"`
	Trophies              int               `json:"trophies"`
	BestTrophies          int               `json:"bestTrophies"`
	Wins                  int               `json:"wins"`
	Losses                int               `json:"losses"`
	BattleCount           int               `json:"battleCount"`
	ThreeCrownWins        int               `json:"threeCrownWins"`
	ChallengeCardsWon     int               `json:"challengeCardsWon"`
	ChallengeMaxWins      int               `json:"challengeMaxWins"`
	TournamentCardsWon    int               `json:"tournamentCardsWon"`
	TournamentBattleCount int               `json:"tournamentBattleCount"`
	Role                  string            `json:"role,omitempty"`
	Donations             int               `json:"donations"`
	DonationsReceived     int               `json:"donationsReceived"`
	TotalDonations        int               `json:"totalDonations"`
	Clan                  *Clan             `json:"clan,omitempty"`
	Arena                 Arena             `json:"arena"`
	LeagueStatistics      *LeagueStatistics `json:"leagueStatistics,omitempty"`
	Achievements          []Achievement     `json:"achievements"`
	Cards                 []PlayerCard      `json:"cards"`
	CurrentDeck           []PlayerCard      `json:"currentDeck"`
	CurrentFavouriteCard  *Card             `json:"currentFavouriteCard,omitempty"`
}

type UpcomingChest struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type UpcomingChests struct {
	Items []UpcomingChest `json:"items"`
}

type BattleCard struct {
	Name     string   `json:"name"`
	ID       int      `json:"id,omitempty"`
	Level    int      `json:"level"`
	MaxLevel int      `json:"maxLevel,omitempty"`
	IconURLs IconURLs `json:"iconUrls"`
}

type BattleParticipant struct {
	Tag              string       `json:"tag"`
	Name             string       `json:"name"`
	StartingTrophies *int         `json:"startingTrophies,omitempty"`
	TrophyChange     *int         `json:"trophyChange,omitempty"`
	Crowns           int          `json:"crowns"`
	Clan             *Clan        `json:"clan,omitempty"`
	Cards            []BattleCard `json:"cards"`
}

type BattleLog struct {
	Type                    string              `json:"type"`
	BattleTime              string              `json:"battleTime"`
	Arena                   Arena               `json:"arena"`
	GameMode                GameMode            `json:"gameMode"`
	DeckSelection           string              `json:"deckSelection"`
	ChallengeID             *int                `json:"challengeId,omitempty"`
	ChallengeWinCountBefore *int                `json:"challengeWinCountBefore,omitempty"`
	Team                    []BattleParticipant `json:"team"`
	Opponent                []BattleParticipant `json:"opponent"`
}

type ClanMember struct {
	Tag               string `json:"tag"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	ExpLevel          int    `json:"expLevel"`
	Trophies          int    `json:"trophies"`
	Arena             Arena  `json:"arena"`
	ClanRank          int    `json:"clanRank"`
	PreviousClanRank  int    `json:"previousClanRank"`
	Donations         int    `json:"donations"`
	DonationsReceived int    `json:"donationsReceived"`
	ClanChestPoints   *int   `json:"clanChestPoints,omitempty"`
}

type ClanProfile struct {
	Tag               string       `json:"tag"`
	Name              string       `json:"name"`
	Type              string       `json:"type"`
	Description       string       `json:"description"`
	BadgeID           int          `json:"badgeId"`
	ClanScore         int          `json:"clanScore"`
	Location          Location     `json:"location"`
	RequiredTrophies  int          `json:"requiredTrophies"`
	DonationsPerWeek  int          `json:"donationsPerWeek"`
	ClanChestStatus   string       `json:"clanChestStatus"`
	ClanChestPoints   int          `json:"clanChestPoints"`
	ClanChestLevel    int          `json:"clanChestLevel"`
	ClanChestMaxLevel int          `json:"clanChestMaxLevel"`
	Members           int          `json:"members"`
	MemberList        []ClanMember `json:"memberList"`
}

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
	Items  []PlayerRanking `json:"items"`
	Paging Paging          `json:"paging"`
}

type ClanRanking struct {
	Tag          string   `json:"tag"`
	Name         string   `json:"name"`
	Rank         int      `json:"rank"`
	PreviousRank int      `json:"previousRank"`
	Location     Location `json:"location"`
	BadgeID      int      `json:"badgeId"`
	ClanScore    int      `json:"clanScore"`
	Members      int      `json:"members"`
}

type ClanLeaderboard struct {
	Items  []ClanRanking `json:"items"`
	Paging Paging        `json:"paging"`
}

type ClanWarLeaderboard struct {
	Items  []ClanRanking `json:"items"`
	Paging Paging        `json:"paging"`
}

// ClientError is the body the API sends with a non-2xx status.
type ClientError struct {
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
}
