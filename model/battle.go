package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type BattleParticipant struct {
	Tag              string       `json:"tag"`
	Name             string       `json:"name"`
	StartingTrophies *int         `json:"startingTrophies,omitempty"`
	TrophyChange     *int         `json:"trophyChange,omitempty"`
	Crowns           int          `json:"crowns"`
	Clan             *Clan        `json:"clan,omitempty"`
	Cards            []BattleCard `json:"cards"`
}

type PlayerBattleLog struct {
	BattleType              BattleType          `json:"type"`
	BattleTime              time.Time           `json:"battleTime"`
	Arena                   Arena               `json:"arena"`
	GameMode                GameMode            `json:"gameMode"`
	ChallengeID             *int                `json:"challengeId,omitempty"`
	ChallengeWinCountBefore *int                `json:"challengeWinCountBefore,omitempty"`
	DeckSelection           DeckSelection       `json:"deckSelection"`
	Team                    []BattleParticipant `json:"team"`
	Opponent                []BattleParticipant `json:"opponent"`
}

// TeamCrowns returns the crowns won by the team side (max. 3).
func (bl PlayerBattleLog) TeamCrowns() int {
	return crowns(bl.Team)
}

// OpponentCrowns returns the crowns won by the opponent side (max. 3).
func (bl PlayerBattleLog) OpponentCrowns() int {
	return crowns(bl.Opponent)
}

// TeamDeck returns all cards played on the team side, ordered by id.
func (bl PlayerBattleLog) TeamDeck() []BattleCard {
	return deck(bl.Team)
}

// OpponentDeck returns all cards played on the opponent side, ordered by id.
func (bl PlayerBattleLog) OpponentDeck() []BattleCard {
	return deck(bl.Opponent)
}

// TeamDeckString returns the comma separated card ids of the team deck.
func (bl PlayerBattleLog) TeamDeckString() string {
	return deckString(bl.TeamDeck())
}

// OpponentDeckString returns the comma separated card ids of the opponent deck.
func (bl PlayerBattleLog) OpponentDeckString() string {
	return deckString(bl.OpponentDeck())
}

// every participant of a side shares the same crowns
func crowns(participants []BattleParticipant) int {
	if len(participants) == 0 {
		return 0
	}

	return participants[0].Crowns
}

func deck(participants []BattleParticipant) []BattleCard {
	cards := []BattleCard{}
	for _, participant := range participants {
		cards = append(cards, participant.Cards...)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].ID < cards[j].ID
	})

	return cards
}

func deckString(cards []BattleCard) string {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, strconv.Itoa(card.ID))
	}

	return strings.Join(ids, ",")
}
