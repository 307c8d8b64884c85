package model

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/m0t0k1ch1/royale-go/hashtag"
	"github.com/m0t0k1ch1/royale-go/refdata"
)

type CurrentSeason struct {
	Trophies     int `json:"trophies"`
	BestTrophies int `json:"bestTrophies"`
}

type PreviousSeason struct {
	ID           string `json:"id"`
	Rank         int    `json:"rank"`
	Trophies     int    `json:"trophies"`
	BestTrophies int    `json:"bestTrophies"`
}

type BestSeason struct {
	ID       string `json:"id"`
	Rank     int    `json:"rank"`
	Trophies int    `json:"trophies"`
}

type LeagueStatistics struct {
	CurrentSeason  *CurrentSeason  `json:"currentSeason,omitempty"`
	PreviousSeason *PreviousSeason `json:"previousSeason,omitempty"`
	BestSeason     *BestSeason     `json:"bestSeason,omitempty"`
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
	Role                  Role              `json:"role,omitempty"`
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

// AccountID returns the id encoded in the player tag.
func (p PlayerProfile) AccountID() hashtag.HiLo {
	return hashtag.Decode(p.Tag)
}

// NameNormalized returns the decomposed, lower case player name.
func (p PlayerProfile) NameNormalized() string {
	return normalizeName(p.Name)
}

// CardsDetails returns the cards of the player along with their static details.
func (p PlayerProfile) CardsDetails(t *refdata.Tables) ([]PlayerCardDetails, error) {
	details := make([]PlayerCardDetails, 0, len(p.Cards))
	for _, card := range p.Cards {
		d, err := card.Details(t)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get the card details")
		}
		details = append(details, d)
	}

	return details, nil
}

// ToBeFoundCards returns the cards the player has not found yet.
func (p PlayerProfile) ToBeFoundCards(t *refdata.Tables) []refdata.CardDetails {
	ids := make([]int, 0, len(p.Cards))
	for _, card := range p.Cards {
		ids = append(ids, card.ID)
	}

	return t.ToBeFoundCards(ids)
}

func (p PlayerProfile) MarshalJSON() ([]byte, error) {
	type profile PlayerProfile

	return json.Marshal(struct {
		profile
		AccountID      hashtag.HiLo `json:"accountId"`
		NameNormalized string       `json:"nameNormalized"`
	}{
		profile:        profile(p),
		AccountID:      p.AccountID(),
		NameNormalized: p.NameNormalized(),
	})
}

// PlayerCard is a card in the collection of a player.
type PlayerCard struct {
	ID    int `json:"id"`
	Level int `json:"level"`
	Count int `json:"count"`
}

// PlayerCardDetails is a collected card enriched with its static details.
type PlayerCardDetails struct {
	Card    PlayerCard          `json:"card"`
	Details refdata.CardDetails `json:"details"`

	// UpgradeCount is the number of cards needed for the next level, 0 when maxed.
	UpgradeCount int  `json:"cardUpgradeCount"`
	IsMaxed      bool `json:"isMaxed"`
}

func (c PlayerCard) Details(t *refdata.Tables) (PlayerCardDetails, error) {
	card, err := t.CardByID(c.ID)
	if err != nil {
		return PlayerCardDetails{}, err
	}

	upgradeCount, _ := t.CardUpgradeCount(card.Rarity, c.Level)

	return PlayerCardDetails{
		Card:         c,
		Details:      card,
		UpgradeCount: upgradeCount,
		IsMaxed:      c.Level == card.MaxLevel,
	}, nil
}

// MaxUpgradeableLevel returns the level the card reaches after spending all
// collected copies on upgrades.
func (c PlayerCard) MaxUpgradeableLevel(t *refdata.Tables) (int, error) {
	card, err := t.CardByID(c.ID)
	if err != nil {
		return 0, err
	}

	available := c.Count
	level := c.Level

	for level < card.MaxLevel {
		needed, ok := t.CardUpgradeCount(card.Rarity, level)
		if !ok || needed < 0 || available < needed {
			break
		}

		available -= needed
		level++
	}

	return level, nil
}
