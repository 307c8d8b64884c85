package refdata

import (
	"io/fs"
)

// Rarity is a card rarity.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityHero      Rarity = "Hero"
)

var tournamentLevelCaps = map[Rarity]int{
	RarityCommon:    9,
	RarityRare:      7,
	RarityEpic:      4,
	RarityLegendary: 1,
}

type rarityJSON struct {
	Name                 string `json:"name"`
	LevelCount           int    `json:"levelCount"`
	RelativeLevel        int    `json:"relativeLevel"`
	DonateCapacity       int    `json:"donateCapacity"`
	DonateReward         int    `json:"donateReward"`
	DonateXP             int    `json:"donateXP"`
	GoldConversionValue  int    `json:"goldConversionValue"`
	UpgradeExp           []int  `json:"upgradeExp"`
	UpgradeMaterialCount []int  `json:"upgradeMaterialCount"`
	SortOrder            int    `json:"sortOrder"`
	TID                  string `json:"TID"`
}

// RarityDetails represents the details of a card rarity.
type RarityDetails struct {
	Rarity Rarity `json:"rarity"`
	Name   Text   `json:"name"`

	// LevelCount is the max card level, counted from 1.
	LevelCount           int   `json:"levelCount"`
	TournamentLevelCount int   `json:"tournamentLevelCount,omitempty"`
	RelativeLevel        int   `json:"relativeLevel"`
	DonateCapacity       int   `json:"donateCapacity"`
	DonateReward         int   `json:"donateReward"`
	DonateXP             int   `json:"donateXP"`
	GoldConversionValue  int   `json:"goldConversionValue"`
	UpgradeExp           []int `json:"upgradeExp"`
	UpgradeMaterialCount []int `json:"upgradeMaterialCount"`
	SortOrder            int   `json:"sortOrder"`
}

// RarityByName returns the details of a rarity.
func (t *Tables) RarityByName(rarity Rarity) (RarityDetails, bool) {
	details, ok := t.rarities[rarity]
	return details, ok
}

// CardUpgradeCount returns the number of cards needed to upgrade a card of the
// given rarity from level to level+1.
func (t *Tables) CardUpgradeCount(rarity Rarity, level int) (int, bool) {
	details, ok := t.rarities[rarity]
	if !ok {
		return 0, false
	}

	// levels are not zero indexed
	i := level - 1
	if i < 0 || i >= len(details.UpgradeMaterialCount) {
		return 0, false
	}

	return details.UpgradeMaterialCount[i], true
}

func (t *Tables) loadRarities(fsys fs.FS) error {
	var rarities []rarityJSON
	if err := readJSON(fsys, raritiesFile, &rarities); err != nil {
		return err
	}

	t.rarities = make(map[Rarity]RarityDetails, len(rarities))

	for _, r := range rarities {
		name, err := t.mustText(r.TID)
		if err != nil {
			return err
		}

		rarity := Rarity(r.Name)

		t.rarities[rarity] = RarityDetails{
			Rarity:               rarity,
			Name:                 name,
			LevelCount:           r.LevelCount,
			TournamentLevelCount: tournamentLevelCaps[Rarity(name.EN())],
			RelativeLevel:        r.RelativeLevel,
			DonateCapacity:       r.DonateCapacity,
			DonateReward:         r.DonateReward,
			DonateXP:             r.DonateXP,
			GoldConversionValue:  r.GoldConversionValue,
			UpgradeExp:           r.UpgradeExp,
			UpgradeMaterialCount: r.UpgradeMaterialCount,
			SortOrder:            r.SortOrder,
		}
	}

	return nil
}
